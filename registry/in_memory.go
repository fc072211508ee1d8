package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/xbam/core"
)

// ErrAlreadyRegistered is returned when a key is registered twice.
var ErrAlreadyRegistered = errors.New("component key already registered")

// InMemoryStore maps component keys to types and types to factories.
type InMemoryStore struct {
	mu        sync.RWMutex
	types     map[string]core.ComponentType    // key -> type
	factories map[string]core.ComponentFactory // type key -> factory
}

// NewInMemoryStore creates an empty registry.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		types:     make(map[string]core.ComponentType),
		factories: make(map[string]core.ComponentFactory),
	}
}

// Register adds a factory under key.
func (r *InMemoryStore) Register(key string, f core.ComponentFactory) error {
	if key == "" {
		return fmt.Errorf("registry: empty component key")
	}
	if f == nil {
		return fmt.Errorf("registry: %q: nil factory", key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[key]; exists {
		return fmt.Errorf("registry: %q: %w", key, ErrAlreadyRegistered)
	}
	r.types[key] = core.ComponentType{Key: key, Name: fmt.Sprintf("%T", f)}
	r.factories[key] = f
	return nil
}

// RegisterFunc adds a constructor function under key.
func (r *InMemoryStore) RegisterFunc(key string, fn func(b *core.Builder) (core.Component, error)) error {
	if fn == nil {
		return fmt.Errorf("registry: %q: nil factory", key)
	}
	return r.Register(key, core.ComponentFunc(fn))
}

// Resolve returns the type registered under key.
func (r *InMemoryStore) Resolve(key string) (core.ComponentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[key]
	if !ok {
		return core.ComponentType{}, &core.ComponentKeyError{Key: key}
	}
	return t, nil
}

// FactoryFor returns the factory of t.
func (r *InMemoryStore) FactoryFor(t core.ComponentType) (core.ComponentFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[t.Key]
	if !ok {
		return nil, &core.ComponentKeyError{Key: t.Key}
	}
	return f, nil
}

// Keys returns the registered keys, sorted.
func (r *InMemoryStore) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.types))
	for k := range r.types {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
