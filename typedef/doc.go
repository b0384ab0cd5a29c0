// Package typedef provides implementations of the core.TypeTable interface,
// the external type-definition registry. The report walk consumes it
// read-only to include every type definition's associated loader.
package typedef
