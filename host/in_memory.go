package host

import (
	"fmt"
	"sync"

	"github.com/hupe1980/loadermesh/core"
)

// InMemoryEnvironment is a process local Environment implementation. It is
// safe for concurrent access and best suited for tests, examples and
// single-process embeddings where the host graph is assembled by hand.
type InMemoryEnvironment struct {
	mu        sync.RWMutex
	roots     map[core.Root]*core.Loader
	bootstrap []string
}

// EnvironmentConfig seeds an InMemoryEnvironment with its fixed root
// loaders and bootstrap path.
type EnvironmentConfig struct {
	System      *core.Loader
	Application *core.Loader
	Current     *core.Loader
	Context     *core.Loader
	Core        *core.Loader
	Bootstrap   []string
}

// NewInMemoryEnvironment constructs an environment from the config.
func NewInMemoryEnvironment(cfg EnvironmentConfig) *InMemoryEnvironment {
	bootstrap := make([]string, len(cfg.Bootstrap))
	copy(bootstrap, cfg.Bootstrap)
	return &InMemoryEnvironment{
		roots: map[core.Root]*core.Loader{
			core.RootSystem:      cfg.System,
			core.RootApplication: cfg.Application,
			core.RootCurrent:     cfg.Current,
			core.RootContext:     cfg.Context,
			core.RootCore:        cfg.Core,
		},
		bootstrap: bootstrap,
	}
}

// RootLoader returns the loader bound to a well-known root, or nil.
func (e *InMemoryEnvironment) RootLoader(root core.Root) *core.Loader {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.roots[root]
}

// SetRootLoader rebinds a well-known root. Only the thread context root can
// be rebound; the other roots are fixed by the host runtime.
func (e *InMemoryEnvironment) SetRootLoader(root core.Root, l *core.Loader) error {
	if root != core.RootContext {
		return fmt.Errorf("root %s is fixed by the host runtime", root)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.roots[root] = l
	return nil
}

// BootstrapPath returns a copy of the platform bootstrap search path.
func (e *InMemoryEnvironment) BootstrapPath() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make([]string, len(e.bootstrap))
	copy(cp, e.bootstrap)
	return cp
}
