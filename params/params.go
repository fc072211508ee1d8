package params

import (
	"fmt"
	"iter"
)

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value any
}

// Params is an insertion-ordered parameter container. The zero value is ready
// to use and allocates nothing until the first Add. Read methods are safe on a
// nil *Params and behave as an empty container.
type Params struct {
	keys   []string
	values map[string]any
}

// New returns an empty container.
func New() *Params { return &Params{} }

// From builds a container from entries in order. It fails with a *KeyError
// on the first duplicate key.
func From(entries ...Entry) (*Params, error) {
	p := New()
	for _, e := range entries {
		if err := p.Add(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Add inserts a new key. Adding an existing key fails with a *KeyError
// wrapping ErrDuplicateKey and leaves the container unchanged.
func (p *Params) Add(key string, value any) error {
	if _, ok := p.values[key]; ok {
		return &KeyError{Key: key, Err: ErrDuplicateKey}
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	p.keys = append(p.keys, key)
	p.values[key] = value
	return nil
}

// Get returns the value stored under key or a *KeyError wrapping
// ErrKeyNotFound.
func (p *Params) Get(key string) (any, error) {
	v, ok := p.TryGet(key)
	if !ok {
		return nil, &KeyError{Key: key, Err: ErrKeyNotFound}
	}
	return v, nil
}

// TryGet returns the value stored under key and whether it was present.
func (p *Params) TryGet(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.TryGet(key)
	return ok
}

// Len returns the number of stored parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Values returns the values in key insertion order.
func (p *Params) Values() []any {
	if p == nil {
		return nil
	}
	out := make([]any, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, p.values[k])
	}
	return out
}

// Entries returns a snapshot of all entries in insertion order.
func (p *Params) Entries() []Entry {
	if p == nil {
		return nil
	}
	out := make([]Entry, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, Entry{Key: k, Value: p.values[k]})
	}
	return out
}

// All iterates over the parameters in insertion order.
func (p *Params) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// allocated reports whether backing storage exists. Used by tests.
func (p *Params) allocated() bool { return p != nil && p.values != nil }

// String renders the parameters in insertion order.
func (p *Params) String() string {
	return fmt.Sprintf("%v", p.Entries())
}
