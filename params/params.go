package params

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/loadermesh/core"
)

// Parameters describes how to construct a brand-new loader. The zero value
// is not ready for use; obtain a baseline via Default or normalize a decoded
// value with Normalize.
type Parameters struct {
	// Variant is the runtime kind of the loader to create. Defaults to
	// core.VariantStandard.
	Variant string `toml:"variant"`

	// Parent names the parent loader: a well-known root (system,
	// application, current, context, core, none) or a free-form reference
	// name. Defaults to "core".
	Parent string `toml:"parent"`

	// ParentFirst controls whether the new loader delegates to its parent
	// before consulting its own path. Defaults to true.
	ParentFirst *bool `toml:"parent_first"`

	// Isolated restricts the new loader to its own path plus explicit
	// delegations. Defaults to false.
	Isolated bool `toml:"isolated"`
}

// Default returns the baseline parameters: a standard, parent-first loader
// whose parent is the core root.
func Default() *Parameters {
	pf := true
	return &Parameters{
		Variant:     string(core.VariantStandard),
		Parent:      core.RootCore.String(),
		ParentFirst: &pf,
	}
}

// Normalize fills unset fields with their defaults and validates the result.
func (p *Parameters) Normalize() error {
	if p.Variant == "" {
		p.Variant = string(core.VariantStandard)
	}
	if p.Parent == "" {
		p.Parent = core.RootCore.String()
	}
	if p.ParentFirst == nil {
		pf := true
		p.ParentFirst = &pf
	}
	switch core.Variant(p.Variant) {
	case core.VariantStandard, core.VariantSealed:
		return nil
	default:
		return fmt.Errorf("unknown loader variant %q", p.Variant)
	}
}

// DelegatesParentFirst returns the effective parent-first flag.
func (p *Parameters) DelegatesParentFirst() bool {
	if p.ParentFirst == nil {
		return true
	}
	return *p.ParentFirst
}

// ParentRef resolves the Parent field to a loader reference. Well-known
// root names map to root references; anything else is a named reference.
func (p *Parameters) ParentRef() core.LoaderRef {
	switch p.Parent {
	case "", core.RootCore.String():
		return core.RefTo(core.RootCore)
	case core.RootNone.String():
		return core.RefTo(core.RootNone)
	case core.RootSystem.String():
		return core.RefTo(core.RootSystem)
	case core.RootApplication.String():
		return core.RefTo(core.RootApplication)
	case core.RootCurrent.String():
		return core.RefTo(core.RootCurrent)
	case core.RootContext.String():
		return core.RefTo(core.RootContext)
	default:
		return core.NamedRef(p.Parent)
	}
}

// Registry holds named parameter sets so several invocations can share one
// configuration by reference.
type Registry struct {
	mu   sync.RWMutex
	sets map[string]*Parameters
}

// NewRegistry constructs an empty parameter registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*Parameters)}
}

// Register stores a parameter set under name. Registering the same name
// twice is an error; parameter sets are shared configuration, silently
// replacing one would change behavior at a distance.
func (r *Registry) Register(name string, p *Parameters) error {
	if err := p.Normalize(); err != nil {
		return fmt.Errorf("invalid parameters %q: %w", name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sets[name]; exists {
		return fmt.Errorf("parameters %q already registered", name)
	}
	r.sets[name] = p
	return nil
}

// Resolve returns the parameter set registered under name.
func (r *Registry) Resolve(name string) (*Parameters, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.sets[name]
	return p, ok
}

// Names returns the registered set names sorted lexicographically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
