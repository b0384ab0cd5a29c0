package typedef

import (
	"sort"
	"sync"

	"github.com/hupe1980/loadermesh/core"
)

// InMemoryTable is a volatile TypeTable implementation keeping definitions
// in a process local map. It is safe for concurrent access and best suited
// for tests, examples and single-process embeddings.
type InMemoryTable struct {
	mu   sync.RWMutex
	defs map[string]*core.Loader
}

// NewInMemoryTable constructs an empty in-memory type table.
func NewInMemoryTable() *InMemoryTable {
	return &InMemoryTable{defs: make(map[string]*core.Loader)}
}

// Register associates a type name with the loader that provides it.
func (t *InMemoryTable) Register(name string, l *core.Loader) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.defs[name] = l
}

// Definitions returns the registered definitions sorted by type name. The
// slice is a snapshot and safe for caller mutation.
func (t *InMemoryTable) Definitions() []core.TypeDefinition {
	t.mu.RLock()
	defer t.mu.RUnlock()
	defs := make([]core.TypeDefinition, 0, len(t.defs))
	for name, l := range t.defs {
		defs = append(defs, core.TypeDefinition{Name: name, Loader: l})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
