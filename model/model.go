package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hupe1980/xbam/core"
)

// ErrIDImmutable is returned when an already assigned id would change.
var ErrIDImmutable = errors.New("model id is immutable")

// Base gives a model a unique, immutable id.
type Base struct {
	id string
}

// ID returns the id, empty before initialization.
func (b *Base) ID() string { return b.id }

// InitializeID assigns id. An empty id keeps the current one or generates a
// new UUID.
func (b *Base) InitializeID(id string) error {
	switch {
	case id == "":
		if b.id == "" {
			b.id = uuid.NewString()
		}
	case b.id == "":
		b.id = id
	case b.id != id:
		return fmt.Errorf("%w: %q cannot become %q", ErrIDImmutable, b.id, id)
	}
	return nil
}

// ComponentSet is an insertion-ordered component storage.
type ComponentSet struct {
	keys  []string
	byKey map[string]core.Component
}

// AddComponent attaches c under c.Key(). A key can be attached once.
func (s *ComponentSet) AddComponent(c core.Component) error {
	if c == nil {
		return core.ErrNilComponent
	}
	key := c.Key()
	if _, exists := s.byKey[key]; exists {
		return fmt.Errorf("%w: %q", core.ErrDuplicateComponent, key)
	}
	if s.byKey == nil {
		s.byKey = make(map[string]core.Component)
	}
	s.keys = append(s.keys, key)
	s.byKey[key] = c
	return nil
}

// Component returns the component attached under key.
func (s *ComponentSet) Component(key string) (core.Component, bool) {
	c, ok := s.byKey[key]
	return c, ok
}

// Components returns the attached components in attachment order.
func (s *ComponentSet) Components() []core.Component {
	out := make([]core.Component, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.byKey[k])
	}
	return out
}

// ComponentKeys returns the attached keys in attachment order.
func (s *ComponentSet) ComponentKeys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// BaseComponent is an embeddable component that records its key and the
// model it was built for.
type BaseComponent struct {
	key    string
	parent core.Model
}

// NewBaseComponent returns a component base for key. The parent is taken
// from the component builder.
func NewBaseComponent(key string, b *core.Builder) BaseComponent {
	bc := BaseComponent{key: key}
	if b != nil {
		bc.parent = b.Parent()
	}
	return bc
}

// Key returns the component key.
func (c *BaseComponent) Key() string { return c.key }

// Parent returns the owning model. It is a back reference only.
func (c *BaseComponent) Parent() core.Model { return c.parent }
