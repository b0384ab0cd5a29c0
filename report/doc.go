// Package report implements the loader report graph walk: it discovers every
// loader reachable from the well-known roots, the external reference table
// and the type-definition table, deduplicates instances that are reachable
// under several names, and renders a deterministic human-readable listing.
//
// The walk keeps two tables: a name-to-instance table (insertion order is
// call order, with an explicit "unassigned" sentinel for bound names without
// an instance) and an instance-to-canonical-name table. The first name under
// which an instance is sighted becomes its canonical name; every later name
// is recorded as an alias and never recursed into again, which bounds the
// walk to the number of distinct instances even on defective self-referential
// graphs.
//
// Rendering sorts every name before output so two runs against an unchanged
// loader graph produce byte-identical text regardless of map iteration order.
package report
