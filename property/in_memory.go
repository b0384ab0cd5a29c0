package property

import "sync"

// InMemoryStore is a trivial in-process PropertyStore implementation useful
// for tests, examples and single-process embeddings. It keeps properties in
// a flat map guarded by an RWMutex.
type InMemoryStore struct {
	mu         sync.RWMutex
	properties map[string]string
}

// NewInMemoryStore returns an empty in-memory property store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{properties: make(map[string]string)}
}

// Set stores (or overwrites) the property value under name.
func (s *InMemoryStore) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[name] = value
	return nil
}

// Get returns the stored value and whether the property exists. Not part of
// the core.PropertyStore contract; provided for tests and embedders.
func (s *InMemoryStore) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.properties[name]
	return v, ok
}
