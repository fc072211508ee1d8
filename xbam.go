// Package xbam provides a high-level façade over the core construction
// pipeline. Most applications interact with this package by:
//  1. Creating an XBam via New() (optionally overriding the default in‑memory registry and logs)
//  2. Registering component factories by key
//  3. Declaring archetypes bound to the XBam universe
//  4. Building models through core.Builder.Make or the generic Build helper
//
// All defaults are safe for local development and testing.
package xbam

import (
	"github.com/hupe1980/xbam/config"
	"github.com/hupe1980/xbam/core"
	"github.com/hupe1980/xbam/logging"
	"github.com/hupe1980/xbam/modellog"
	"github.com/hupe1980/xbam/params"
	"github.com/hupe1980/xbam/registry"
)

// Options configures the XBam instance.
type Options struct {
	// Universe key (defaults to "default")
	Universe string

	// Registry holds component factories (defaults to an empty in-memory registry)
	Registry *registry.InMemoryStore

	// ModelLog receives construction records (defaults to a LoggerSink over Logger)
	ModelLog core.ModelLog

	// AutoBuilder reports auto-builder steps per archetype (optional)
	AutoBuilder core.AutoBuilderConfig

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// XBam aggregates a universe with its component registry.
type XBam struct {
	opts     Options
	universe *core.Universe
}

// New creates a new XBam instance with optional overrides.
func New(optFns ...func(o *Options)) *XBam {
	opts := Options{
		Universe: "default",
		Registry: registry.NewInMemoryStore(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Registry == nil {
		opts.Registry = registry.NewInMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.ModelLog == nil {
		opts.ModelLog = modellog.NewLoggerSink(opts.Logger)
	}

	u := core.NewUniverse(opts.Universe, func(o *core.UniverseOptions) {
		o.Components = opts.Registry
		o.ModelLog = opts.ModelLog
		o.AutoBuilder = opts.AutoBuilder
		o.Logger = opts.Logger
	})

	return &XBam{opts: opts, universe: u}
}

// NewFromConfig creates an XBam from a loaded configuration. optFns are
// applied after the configuration.
func NewFromConfig(cfg config.Config, optFns ...func(o *Options)) *XBam {
	return New(append([]func(o *Options){func(o *Options) {
		o.Universe = cfg.Universe
		o.Logger = cfg.Log.Logger()
		o.AutoBuilder = cfg.AutoBuilderConfig()
	}}, optFns...)...)
}

// Universe returns the universe every archetype of this instance lives in.
func (x *XBam) Universe() *core.Universe { return x.universe }

// Registry returns the component registry.
func (x *XBam) Registry() *registry.InMemoryStore { return x.opts.Registry }

// RegisterComponent adds a default component factory under key.
func (x *XBam) RegisterComponent(key string, fn func(b *core.Builder) (core.Component, error)) error {
	return x.opts.Registry.RegisterFunc(key, fn)
}

// Archetype declares an archetype bound to this instance's universe.
func (x *XBam) Archetype(key string, construct func(b *core.Builder) (core.Model, error), unlinked ...core.ComponentDeclaration) *core.BaseArchetype {
	return &core.BaseArchetype{
		ArchetypeKey: key,
		Home:         x.universe,
		Construct:    construct,
		Unlinked:     unlinked,
	}
}

// Builder returns a builder for a seeded with entries.
func (x *XBam) Builder(a core.Archetype, entries ...params.Entry) (*core.Builder, error) {
	return core.NewBuilder(a, core.WithUniverse(x.universe), func(o *core.BuilderOptions) {
		o.Params = append(o.Params, entries...)
	})
}

// Build creates a builder for a, seeds it with entries and makes a T.
func Build[T any](a core.Archetype, entries ...params.Entry) (T, error) {
	b, err := core.NewBuilder(a, func(o *core.BuilderOptions) {
		o.Params = append(o.Params, entries...)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return core.Make[T](b)
}
