package reference

import (
	"sort"
	"sync"

	"github.com/hupe1980/loadermesh/core"
)

// InMemoryStore is a volatile ReferenceStore implementation keeping bindings
// in a process local map. It is safe for concurrent access and best suited
// for tests, examples and single-process embeddings. Loader instances are
// stored by reference; the store never owns loader lifetime.
type InMemoryStore struct {
	mu       sync.RWMutex
	bindings map[string]*core.Loader
}

// NewInMemoryStore constructs an empty in-memory reference store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{bindings: make(map[string]*core.Loader)}
}

// Get returns the loader bound to name, or nil if the name is unbound.
func (s *InMemoryStore) Get(name string) (*core.Loader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindings[name], nil
}

// Set binds (or rebinds) a name to a loader instance.
func (s *InMemoryStore) Set(name string, l *core.Loader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[name] = l
	return nil
}

// Names returns the bound names sorted lexicographically. The slice is a
// snapshot and safe for caller mutation.
func (s *InMemoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
