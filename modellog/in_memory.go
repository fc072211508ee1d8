package modellog

import (
	"sync"

	"github.com/hupe1980/xbam/core"
)

// InMemoryStore records model log entries in arrival order.
//
// Concurrency: protected by RWMutex.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []core.ModelLogEntry
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Log appends entry.
func (s *InMemoryStore) Log(entry core.ModelLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Entries returns a copy of the recorded entries.
func (s *InMemoryStore) Entries() []core.ModelLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.ModelLogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByArchetype returns the entries recorded for an archetype key.
func (s *InMemoryStore) ByArchetype(key string) []core.ModelLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.ModelLogEntry
	for _, e := range s.entries {
		if e.Archetype == key {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of recorded entries.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
