package params

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Add when the key is already present.
	ErrDuplicateKey = errors.New("duplicate parameter key")

	// ErrKeyNotFound is returned by Get and Lookup when the key is absent.
	ErrKeyNotFound = errors.New("parameter key not found")

	// ErrInvalidCast is returned when a stored value does not have the
	// requested type.
	ErrInvalidCast = errors.New("invalid cast")
)

// KeyError reports a key level failure. It unwraps to ErrDuplicateKey or
// ErrKeyNotFound.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string { return fmt.Sprintf("params: %q: %v", e.Key, e.Err) }

func (e *KeyError) Unwrap() error { return e.Err }

// CastError reports a value that could not be converted to the expected type.
// It unwraps to ErrInvalidCast.
type CastError struct {
	Key      string
	Expected string
	Actual   string
}

func (e *CastError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%v: expected %s, got %s", ErrInvalidCast, e.Expected, e.Actual)
	}
	return fmt.Sprintf("params: %q: %v: expected %s, got %s", e.Key, ErrInvalidCast, e.Expected, e.Actual)
}

func (e *CastError) Unwrap() error { return ErrInvalidCast }
