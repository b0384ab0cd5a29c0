package core

import "fmt"

// Root enumerates the well-known loader roots of the host runtime.
type Root int

const (
	// RootNone is the explicit "no loader" reference. It always resolves to
	// an absent loader and can never be the target of a mutation.
	RootNone Root = iota
	// RootSystem is the platform system-level loader.
	RootSystem
	// RootApplication is the hosting application's own loader.
	RootApplication
	// RootCurrent is the loader of the currently executing code.
	RootCurrent
	// RootContext is the active thread's context loader.
	RootContext
	// RootCore is the host's embedding/core loader.
	RootCore
)

// String returns the display name of the root.
func (r Root) String() string {
	switch r {
	case RootNone:
		return "none"
	case RootSystem:
		return "system"
	case RootApplication:
		return "application"
	case RootCurrent:
		return "current"
	case RootContext:
		return "context"
	case RootCore:
		return "core"
	default:
		return "unknown"
	}
}

// LoaderRef is a named or well-known reference to a loader resource. It
// resolves lazily to zero or one loader instance; the instance itself is
// owned externally, the reference only reads and writes the binding.
type LoaderRef struct {
	root  Root
	name  string
	named bool
}

// RefTo returns a reference to a well-known root.
func RefTo(root Root) LoaderRef {
	return LoaderRef{root: root}
}

// NamedRef returns a reference resolved through the external reference store.
func NamedRef(name string) LoaderRef {
	return LoaderRef{name: name, named: true}
}

// IsWellKnown reports whether the reference targets a well-known root.
func (r LoaderRef) IsWellKnown() bool { return !r.named }

// IsNone reports whether the reference is the explicit "none" root.
func (r LoaderRef) IsNone() bool { return !r.named && r.root == RootNone }

// Name returns the display name of the reference for logging and reports.
func (r LoaderRef) Name() string {
	if r.named {
		return r.name
	}
	return r.root.String()
}

// ResetPossible reports whether the binding can be replaced by a newly
// created loader. Only named references and the thread context root can be
// rebound; the remaining roots are fixed by the host runtime.
func (r LoaderRef) ResetPossible() bool {
	if r.named {
		return true
	}
	return r.root == RootContext
}

// Resolve returns the currently bound loader or nil if the reference is
// unbound. Resolving RootNone always yields nil.
func (r LoaderRef) Resolve(env Environment, refs ReferenceStore) (*Loader, error) {
	if r.named {
		l, err := refs.Get(r.name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve reference %q: %w", r.name, err)
		}
		return l, nil
	}
	if r.root == RootNone {
		return nil, nil
	}
	return env.RootLoader(r.root), nil
}

// Bind writes a loader back into the reference binding. Used by the policy
// engine after a successful CREATE.
func (r LoaderRef) Bind(env Environment, refs ReferenceStore, l *Loader) error {
	if r.named {
		return refs.Set(r.name, l)
	}
	if r.root == RootNone {
		return fmt.Errorf("cannot bind the none reference")
	}
	return env.SetRootLoader(r.root, l)
}
