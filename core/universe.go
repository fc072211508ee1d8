package core

import (
	"time"

	"github.com/hupe1980/xbam/logging"
)

// ComponentType identifies a registered component type.
type ComponentType struct {
	Key  string
	Name string
}

// ComponentFactory builds components of one type.
type ComponentFactory interface {
	// NewBuilder returns a fresh, empty component builder.
	NewBuilder(u *Universe) *Builder
	// Make builds a component from a component builder.
	Make(b *Builder) (Component, error)
}

// ComponentFunc adapts a constructor to ComponentFactory.
type ComponentFunc func(b *Builder) (Component, error)

// NewBuilder returns an empty builder bound to u.
func (f ComponentFunc) NewBuilder(u *Universe) *Builder { return newBuilder(nil, u) }

// Make calls f.
func (f ComponentFunc) Make(b *Builder) (Component, error) { return f(b) }

// ComponentRegistry resolves component keys to types and types to factories.
// A miss fails with an error wrapping ErrUnknownComponentKey.
type ComponentRegistry interface {
	Resolve(key string) (ComponentType, error)
	FactoryFor(t ComponentType) (ComponentFactory, error)
}

// ActionType classifies a model log entry.
type ActionType string

// ActionBuilt marks a freshly constructed model.
const ActionBuilt ActionType = "Built"

// MetadataAutoBuilderUsed is the metadata key recording whether an
// auto-builder configuration exists for the model's archetype.
const MetadataAutoBuilderUsed = "autoBuilderUsed"

// ModelLogEntry is handed to the ModelLog once a model is finalized.
type ModelLogEntry struct {
	Action    ActionType
	Archetype string
	Model     Model
	Builder   *Builder
	Metadata  map[string]any
	Timestamp time.Time
	Elapsed   time.Duration
}

// ModelLog receives construction records. Errors are reported as warnings and
// never abort construction.
type ModelLog interface {
	Log(entry ModelLogEntry) error
}

// AutoBuilderConfig reports whether an archetype has auto-builder steps.
type AutoBuilderConfig interface {
	HasAutoBuilderSteps(a Archetype) bool
}

// UniverseOptions configures a Universe.
type UniverseOptions struct {
	// Components resolves component keys. Every lookup misses if nil.
	Components ComponentRegistry
	// ModelLog receives construction records. Nothing is recorded if nil.
	ModelLog ModelLog
	// AutoBuilder is consulted for the autoBuilderUsed metadata field.
	AutoBuilder AutoBuilderConfig
	// Logger defaults to logging.NoOpLogger.
	Logger logging.Logger
}

// Universe is the shared construction context. It is never mutated by the
// pipeline.
type Universe struct {
	key  string
	opts UniverseOptions
	log  *loggerAdapter
}

// NewUniverse creates a universe identified by key.
func NewUniverse(key string, optFns ...func(o *UniverseOptions)) *Universe {
	opts := UniverseOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Components == nil {
		opts.Components = emptyRegistry{}
	}
	return &Universe{key: key, opts: opts, log: newLoggerAdapter(opts.Logger)}
}

// Key returns the universe key.
func (u *Universe) Key() string { return u.key }

// Components returns the component registry.
func (u *Universe) Components() ComponentRegistry { return u.opts.Components }

// ModelLog returns the model log collaborator, possibly nil.
func (u *Universe) ModelLog() ModelLog { return u.opts.ModelLog }

// AutoBuilder returns the auto-builder configuration, possibly nil.
func (u *Universe) AutoBuilder() AutoBuilderConfig { return u.opts.AutoBuilder }

// Logger returns the diagnostic logger.
func (u *Universe) Logger() logging.Logger { return u.log.Logger() }

func (u *Universe) hasAutoBuilderSteps(a Archetype) bool {
	return u.opts.AutoBuilder != nil && u.opts.AutoBuilder.HasAutoBuilderSteps(a)
}

type emptyRegistry struct{}

func (emptyRegistry) Resolve(key string) (ComponentType, error) {
	return ComponentType{}, &ComponentKeyError{Key: key}
}

func (emptyRegistry) FactoryFor(t ComponentType) (ComponentFactory, error) {
	return nil, &ComponentKeyError{Key: t.Key}
}
