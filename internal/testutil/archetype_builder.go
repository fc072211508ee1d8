package testutil

import (
	"github.com/hupe1980/xbam/core"
)

// Archetype is a configurable core.Archetype that records every hook call.
type Archetype struct {
	core.BaseArchetype
	InitializedHook func(b *core.Builder, m core.Model) (core.Model, error)
	FinalizedHook   func(b *core.Builder, m core.Model) (core.Model, error)
	Trace           *Trace
}

// OnModelInitialized records the call and runs InitializedHook.
func (a *Archetype) OnModelInitialized(b *core.Builder, m core.Model) (core.Model, error) {
	a.Trace.Add("archetype.initialized")
	if a.InitializedHook != nil {
		return a.InitializedHook(b, m)
	}
	return m, nil
}

// OnModelFinalized records the call and runs FinalizedHook.
func (a *Archetype) OnModelFinalized(b *core.Builder, m core.Model) (core.Model, error) {
	a.Trace.Add("archetype.finalized")
	if a.FinalizedHook != nil {
		return a.FinalizedHook(b, m)
	}
	return m, nil
}

// ArchetypeBuilder helps declare archetypes with fluent chaining for tests.
// Example:
//
//	a := NewArchetypeBuilder("player", u).Construct(NewPlayer).Unlinked("inventory", nil).Build()
type ArchetypeBuilder struct {
	a *Archetype
}

// NewArchetypeBuilder starts an archetype with the given key in u.
func NewArchetypeBuilder(key string, u *core.Universe) *ArchetypeBuilder {
	return &ArchetypeBuilder{a: &Archetype{
		BaseArchetype: core.BaseArchetype{ArchetypeKey: key, Home: u},
		Trace:         &Trace{},
	}}
}

// Construct sets the raw model constructor (chainable).
func (b *ArchetypeBuilder) Construct(fn func(b *core.Builder) (core.Model, error)) *ArchetypeBuilder {
	b.a.Construct = fn
	return b
}

// Unlinked appends an unlinked component declaration; nil ctor uses the
// registry default (chainable).
func (b *ArchetypeBuilder) Unlinked(key string, ctor core.ComponentConstructor) *ArchetypeBuilder {
	b.a.Unlinked = append(b.a.Unlinked, core.ComponentDeclaration{Key: key, New: ctor})
	return b
}

// Linked appends a linked component (chainable).
func (b *ArchetypeBuilder) Linked(key string, fn func(b *core.Builder, u *core.Universe) (core.Component, error)) *ArchetypeBuilder {
	b.a.Linked = append(b.a.Linked, core.LinkedComponentFunc{ComponentKey: key, Build: fn})
	return b
}

// OnInitialized sets the archetype initialized hook (chainable).
func (b *ArchetypeBuilder) OnInitialized(fn func(b *core.Builder, m core.Model) (core.Model, error)) *ArchetypeBuilder {
	b.a.InitializedHook = fn
	return b
}

// OnFinalized sets the archetype finalized hook (chainable).
func (b *ArchetypeBuilder) OnFinalized(fn func(b *core.Builder, m core.Model) (core.Model, error)) *ArchetypeBuilder {
	b.a.FinalizedHook = fn
	return b
}

// Trace shares an existing trace so model and archetype hooks interleave (chainable).
func (b *ArchetypeBuilder) Trace(t *Trace) *ArchetypeBuilder {
	b.a.Trace = t
	return b
}

// Build returns the archetype.
func (b *ArchetypeBuilder) Build() *Archetype {
	return b.a
}
