package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingContext is returned when a builder, archetype or universe
	// cannot be resolved. Nothing is constructed.
	ErrMissingContext = errors.New("missing construction context")

	// ErrUnknownComponentKey is returned when the component registry has no
	// type for a key.
	ErrUnknownComponentKey = errors.New("unknown component key")

	// ErrDuplicateComponent is returned by component storages when a key is
	// attached twice.
	ErrDuplicateComponent = errors.New("duplicate component key")

	// ErrNilComponent is returned when a component constructor produced nothing.
	ErrNilComponent = errors.New("constructor returned no component")
)

// MissingContextError names the piece of context that could not be resolved.
type MissingContextError struct {
	What string // "builder", "archetype" or "universe"
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("xbam: %v: no %s", ErrMissingContext, e.What)
}

func (e *MissingContextError) Unwrap() error { return ErrMissingContext }

// ComponentKeyError reports a component registry miss.
type ComponentKeyError struct {
	Key string
}

func (e *ComponentKeyError) Error() string {
	return fmt.Sprintf("xbam: %v: %q", ErrUnknownComponentKey, e.Key)
}

func (e *ComponentKeyError) Unwrap() error { return ErrUnknownComponentKey }
