package core

import (
	"iter"
	"time"

	"github.com/hupe1980/xbam/params"
)

// BuilderOptions configures NewBuilder.
type BuilderOptions struct {
	// Universe defaults to the archetype's universe.
	Universe *Universe
	// Params seeds the builder in order.
	Params []params.Entry
}

// WithUniverse overrides the builder's universe.
func WithUniverse(u *Universe) func(o *BuilderOptions) {
	return func(o *BuilderOptions) { o.Universe = u }
}

// WithParam seeds a single parameter.
func WithParam(key string, value any) func(o *BuilderOptions) {
	return func(o *BuilderOptions) { o.Params = append(o.Params, params.Entry{Key: key, Value: value}) }
}

// WithParams seeds a copy of every entry of p, in order.
func WithParams(p *params.Params) func(o *BuilderOptions) {
	return func(o *BuilderOptions) { o.Params = append(o.Params, p.Entries()...) }
}

// Builder is a transient parameter container bound to an archetype and a
// universe. Both references are fixed for the builder's lifetime; parameters
// can be added but never removed.
//
// A component builder shares its parent's parameter container and records the
// parent model.
type Builder struct {
	archetype Archetype
	universe  *Universe
	params    *params.Params
	parent    Model
}

// NewBuilder creates a builder for a. It fails only if the seed parameters
// contain a duplicate key.
func NewBuilder(a Archetype, optFns ...func(o *BuilderOptions)) (*Builder, error) {
	opts := BuilderOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	u := opts.Universe
	if u == nil && a != nil {
		u = a.Universe()
	}
	b := newBuilder(a, u)
	for _, e := range opts.Params {
		if err := b.params.Add(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func newBuilder(a Archetype, u *Universe) *Builder {
	return &Builder{archetype: a, universe: u, params: params.New()}
}

// Archetype returns the archetype, nil for registry-built component builders.
func (b *Builder) Archetype() Archetype { return b.archetype }

// Universe returns the universe.
func (b *Builder) Universe() *Universe { return b.universe }

// Parent returns the model a component builder belongs to, nil otherwise.
func (b *Builder) Parent() Model { return b.parent }

// Params exposes the parameter container. Component builders share it with
// their parent.
func (b *Builder) Params() *params.Params {
	if b == nil {
		return nil
	}
	return b.params
}

// Add inserts a parameter. A duplicate key fails with params.ErrDuplicateKey.
func (b *Builder) Add(key string, value any) error {
	if b.params == nil {
		b.params = params.New()
	}
	return b.params.Add(key, value)
}

// Get returns a parameter or fails with params.ErrKeyNotFound.
func (b *Builder) Get(key string) (any, error) { return b.Params().Get(key) }

// TryGet returns a parameter and whether it was present.
func (b *Builder) TryGet(key string) (any, bool) { return b.Params().TryGet(key) }

// Has reports whether key is present.
func (b *Builder) Has(key string) bool { return b.Params().Has(key) }

// HasParam reports whether the descriptor's key is present.
func HasParam[T any](b *Builder, p params.Param[T]) bool { return p.In(b.Params()) }

// Len returns the number of parameters.
func (b *Builder) Len() int { return b.Params().Len() }

// Keys returns the parameter keys in insertion order.
func (b *Builder) Keys() []string { return b.Params().Keys() }

// Values returns the parameter values in insertion order.
func (b *Builder) Values() []any { return b.Params().Values() }

// All iterates over the parameters in insertion order.
func (b *Builder) All() iter.Seq2[string, any] { return b.Params().All() }

// Lookup reads a typed parameter from b.
func Lookup[T any](b *Builder, p params.Param[T]) (T, error) { return params.Lookup(b.Params(), p) }

// Make runs the model lifecycle for this builder. Components declared by the
// archetype are attached during the configure phase when the model implements
// ComponentStorage, and a ModelLog entry is recorded once the model is
// finalized. A nil model with a nil error means the pipeline built nothing.
func (b *Builder) Make() (Model, error) {
	m := &maker{start: time.Now()}
	return InitializeModel(b, func(o *LifecycleOptions) {
		o.OnConfigured = m.configure
		o.OnFinalized = m.finalize
	})
}

// Make builds a model and casts it to T. A model that is not a T fails with a
// *params.CastError; no model at all yields the zero T and no error.
func Make[T any](b *Builder) (T, error) {
	var zero T
	m, err := b.Make()
	if err != nil {
		return zero, err
	}
	if absent(m) {
		return zero, nil
	}
	return params.Cast[T](m)
}
