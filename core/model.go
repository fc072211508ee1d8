package core

import (
	"reflect"

	"github.com/hupe1980/xbam/params"
)

// IDKey is the builder parameter holding a model's unique id.
const IDKey = "Id"

// IDParam is the typed descriptor for IDKey.
var IDParam = params.NewParam[string](IDKey)

// Model is the object under construction. The pipeline is agnostic to its
// concrete type; capabilities are discovered through the optional interfaces
// below.
type Model interface{}

// Unique is implemented by models with an immutable identity.
type Unique interface {
	ID() string
	// InitializeID assigns the id in place. An empty id asks the model to
	// generate its own. Once set, the id must not change.
	InitializeID(id string) error
}

// Initializer is the model hook run first when an existing model is
// re-initialized.
type Initializer interface {
	OnInitialized(a Archetype, u *Universe, b *Builder) (Model, error)
}

// Finalizer is the model level hook run at the end of the configure phase,
// before the archetype's own finalize hook.
type Finalizer interface {
	OnFinalized(b *Builder) (Model, error)
}

// Component is a keyed sub-object attached to a model.
type Component interface {
	Key() string
}

// ComponentStorage is implemented by models that can hold components.
// Models without it silently ignore their archetype's component declarations.
type ComponentStorage interface {
	AddComponent(c Component) error
	Component(key string) (Component, bool)
	Components() []Component
}

// absent reports whether m is nil, including typed nil pointers returned
// through an interface.
func absent(m any) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
