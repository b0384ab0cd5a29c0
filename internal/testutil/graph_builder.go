package testutil

import (
	"github.com/hupe1980/loadermesh/core"
	"github.com/hupe1980/loadermesh/host"
)

// GraphBuilder helps construct loader graphs with fluent chaining for tests.
// Example:
//
//	env := NewGraphBuilder().
//		Loader("sys", core.VariantSealed, "", "lib/sys").
//		Loader("app", core.VariantStandard, "sys", "lib/app").
//		Root(core.RootSystem, "sys").
//		Root(core.RootApplication, "app").
//		BuildEnvironment()
type GraphBuilder struct {
	loaders   map[string]*core.Loader
	roots     map[core.Root]string
	bootstrap []string
}

// NewGraphBuilder creates an empty graph builder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{loaders: map[string]*core.Loader{}, roots: map[core.Root]string{}}
}

// Loader adds a loader keyed by id with an optional parent key (chainable).
// The parent must have been added earlier.
func (b *GraphBuilder) Loader(id string, variant core.Variant, parentID string, path ...string) *GraphBuilder {
	var parent *core.Loader
	if parentID != "" {
		parent = b.loaders[parentID]
	}
	b.loaders[id] = core.NewLoader(core.LoaderConfig{Variant: variant, Parent: parent, Path: path})
	return b
}

// Root binds a well-known root to a previously added loader (chainable).
func (b *GraphBuilder) Root(root core.Root, id string) *GraphBuilder {
	b.roots[root] = id
	return b
}

// Bootstrap sets the platform bootstrap search path (chainable).
func (b *GraphBuilder) Bootstrap(path ...string) *GraphBuilder {
	b.bootstrap = path
	return b
}

// Get returns a loader by its builder key.
func (b *GraphBuilder) Get(id string) *core.Loader {
	return b.loaders[id]
}

// BuildEnvironment returns an in-memory environment with the configured
// root bindings and bootstrap path.
func (b *GraphBuilder) BuildEnvironment() *host.InMemoryEnvironment {
	cfg := host.EnvironmentConfig{Bootstrap: b.bootstrap}
	if id, ok := b.roots[core.RootSystem]; ok {
		cfg.System = b.loaders[id]
	}
	if id, ok := b.roots[core.RootApplication]; ok {
		cfg.Application = b.loaders[id]
	}
	if id, ok := b.roots[core.RootCurrent]; ok {
		cfg.Current = b.loaders[id]
	}
	if id, ok := b.roots[core.RootContext]; ok {
		cfg.Context = b.loaders[id]
	}
	if id, ok := b.roots[core.RootCore]; ok {
		cfg.Core = b.loaders[id]
	}
	return host.NewInMemoryEnvironment(cfg)
}

// LinesReporter captures report lines for assertions.
type LinesReporter struct {
	Lines []string
}

// Report appends the line to the captured output.
func (r *LinesReporter) Report(line string) {
	r.Lines = append(r.Lines, line)
}

// Text returns the captured output joined by newlines.
func (r *LinesReporter) Text() string {
	out := ""
	for i, l := range r.Lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
