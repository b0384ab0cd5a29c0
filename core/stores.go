package core

// ReferenceStore is the external name table binding free-form names to
// loader instances. The manager resolves named LoaderRefs through it, writes
// newly created loaders back into it, and enumerates it during a report walk.
type ReferenceStore interface {
	// Get returns the loader bound to name, or nil if the name is unbound.
	Get(name string) (*Loader, error)

	// Set binds (or rebinds) a name to a loader instance.
	Set(name string, l *Loader) error

	// Names returns the bound names in deterministic (sorted) order.
	Names() []string
}

// PropertyStore is the external project-wide property storage consumed by
// the path export operation.
type PropertyStore interface {
	// Set stores a property value under name.
	Set(name, value string) error
}

// TypeDefinition associates a registered type name with the loader that
// provides it.
type TypeDefinition struct {
	Name   string
	Loader *Loader
}

// TypeTable is the external type-definition registry, consumed read-only by
// the report walk.
type TypeTable interface {
	// Definitions returns the registered definitions sorted by type name.
	Definitions() []TypeDefinition
}

// Environment exposes the host runtime's well-known root loaders and its
// bootstrap search path. Implementations decide which roots are rebindable;
// at minimum the thread context root should accept SetRootLoader.
type Environment interface {
	// RootLoader returns the loader bound to a well-known root, or nil.
	RootLoader(root Root) *Loader

	// SetRootLoader rebinds a well-known root. Returns an error for roots
	// fixed by the host runtime.
	SetRootLoader(root Root, l *Loader) error

	// BootstrapPath returns the platform bootstrap search path. Always
	// available and not subject to adapter dispatch.
	BootstrapPath() []string
}
