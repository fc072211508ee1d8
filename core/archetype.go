package core

import "errors"

// ErrNoConstructor is returned by BaseArchetype.NewModel when no Construct
// function was configured.
var ErrNoConstructor = errors.New("archetype has no model constructor")

// Archetype identifies a model type, constructs raw instances and declares the
// components attached to them. Archetypes are read-only during construction.
type Archetype interface {
	// Key identifies the archetype within its universe.
	Key() string
	// Universe is the universe the archetype was registered in.
	Universe() *Universe
	// NewModel constructs a raw model. Returning (nil, nil) means the builder
	// describes no object and construction halts without error.
	NewModel(b *Builder) (Model, error)
	// OnModelInitialized may substitute or drop the model.
	OnModelInitialized(b *Builder, m Model) (Model, error)
	// OnModelFinalized may substitute or drop the model.
	OnModelFinalized(b *Builder, m Model) (Model, error)
	// UnlinkedComponents are attached first, in declaration order.
	UnlinkedComponents() []ComponentDeclaration
	// LinkedComponents are attached after all unlinked ones, in declaration order.
	LinkedComponents() []LinkedComponent
}

// ComponentConstructor builds a component from a component builder.
type ComponentConstructor func(b *Builder) (Component, error)

// ComponentDeclaration requests a component by key. A nil New uses the
// registry's default factory for the key.
type ComponentDeclaration struct {
	Key string
	New ComponentConstructor
}

// LinkedComponent is a component whose default construction is supplied by
// the archetype.
type LinkedComponent interface {
	Key() string
	BuildDefaultComponent(b *Builder, u *Universe) (Component, error)
}

// LinkedComponentFunc adapts a function to LinkedComponent.
type LinkedComponentFunc struct {
	ComponentKey string
	Build        func(b *Builder, u *Universe) (Component, error)
}

// Key returns the component key.
func (l LinkedComponentFunc) Key() string { return l.ComponentKey }

// BuildDefaultComponent calls Build.
func (l LinkedComponentFunc) BuildDefaultComponent(b *Builder, u *Universe) (Component, error) {
	return l.Build(b, u)
}

// BaseArchetype is an embeddable Archetype with pass-through hooks.
// Embedders override the hooks they need.
type BaseArchetype struct {
	ArchetypeKey string
	Home         *Universe
	Construct    func(b *Builder) (Model, error)
	Unlinked     []ComponentDeclaration
	Linked       []LinkedComponent
}

// Key returns ArchetypeKey.
func (a *BaseArchetype) Key() string { return a.ArchetypeKey }

// Universe returns Home.
func (a *BaseArchetype) Universe() *Universe { return a.Home }

// NewModel calls Construct.
func (a *BaseArchetype) NewModel(b *Builder) (Model, error) {
	if a.Construct == nil {
		return nil, ErrNoConstructor
	}
	return a.Construct(b)
}

// OnModelInitialized returns m unchanged.
func (a *BaseArchetype) OnModelInitialized(_ *Builder, m Model) (Model, error) { return m, nil }

// OnModelFinalized returns m unchanged.
func (a *BaseArchetype) OnModelFinalized(_ *Builder, m Model) (Model, error) { return m, nil }

// UnlinkedComponents returns Unlinked.
func (a *BaseArchetype) UnlinkedComponents() []ComponentDeclaration { return a.Unlinked }

// LinkedComponents returns Linked.
func (a *BaseArchetype) LinkedComponents() []LinkedComponent { return a.Linked }

// declaresComponents reports whether a has at least one component declaration.
func declaresComponents(a Archetype) bool {
	return len(a.UnlinkedComponents()) > 0 || len(a.LinkedComponents()) > 0
}
