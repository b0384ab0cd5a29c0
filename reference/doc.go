// Package reference provides implementations of the core.ReferenceStore
// interface, the external name table that binds free-form names to loader
// instances. The manager resolves named loader references through the store
// and writes newly created loaders back into it; the report walk enumerates
// it to find externally registered loaders.
package reference
