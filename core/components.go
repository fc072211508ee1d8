package core

import (
	"fmt"

	"github.com/hupe1980/xbam/params"
)

// NewComponentBuilder derives the builder for the component registered under
// key. The factory's fresh builder is rebound to the parent builder's
// parameter container (shared, not copied) and records parentModel as its
// parent. u defaults to the parent builder's universe.
func NewComponentBuilder(u *Universe, parent *Builder, parentModel Model, key string) (*Builder, ComponentType, error) {
	if u == nil && parent != nil {
		u = parent.universe
	}
	if u == nil {
		return nil, ComponentType{}, &MissingContextError{What: "universe"}
	}
	ct, f, err := resolveComponent(u, key)
	if err != nil {
		return nil, ComponentType{}, err
	}
	cb := f.NewBuilder(u)
	if cb == nil {
		cb = newBuilder(nil, u)
	}
	if parent != nil {
		if parent.params == nil {
			parent.params = params.New()
		}
		cb.params = parent.params
	}
	cb.parent = parentModel
	return cb, ct, nil
}

func resolveComponent(u *Universe, key string) (ComponentType, ComponentFactory, error) {
	reg := u.Components()
	ct, err := reg.Resolve(key)
	if err != nil {
		return ComponentType{}, nil, err
	}
	f, err := reg.FactoryFor(ct)
	if err != nil {
		return ComponentType{}, nil, err
	}
	return ct, f, nil
}

// PopulateComponents attaches every component declared by a to storage.
// Unlinked declarations are attached first, then linked ones, each group in
// declaration order. The first failure aborts population.
func PopulateComponents(a Archetype, u *Universe, b *Builder, storage ComponentStorage) error {
	parentModel := Model(storage)

	for _, d := range a.UnlinkedComponents() {
		cb, ct, err := NewComponentBuilder(u, b, parentModel, d.Key)
		if err != nil {
			return err
		}
		var c Component
		if d.New == nil {
			f, ferr := u.Components().FactoryFor(ct)
			if ferr != nil {
				return ferr
			}
			c, err = f.Make(cb)
		} else {
			c, err = d.New(cb)
		}
		if err := attach(storage, d.Key, c, err); err != nil {
			return err
		}
	}

	for _, l := range a.LinkedComponents() {
		cb, _, err := NewComponentBuilder(u, b, parentModel, l.Key())
		if err != nil {
			return err
		}
		c, err := l.BuildDefaultComponent(cb, u)
		if err := attach(storage, l.Key(), c, err); err != nil {
			return err
		}
	}
	return nil
}

func attach(storage ComponentStorage, key string, c Component, buildErr error) error {
	if buildErr != nil {
		return fmt.Errorf("component %q: %w", key, buildErr)
	}
	if absent(c) {
		return fmt.Errorf("component %q: %w", key, ErrNilComponent)
	}
	if err := storage.AddComponent(c); err != nil {
		return fmt.Errorf("component %q: %w", key, err)
	}
	return nil
}
