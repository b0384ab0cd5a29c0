// Package core provides the foundational domain types and interfaces used by
// loadermesh. It defines the core abstractions for:
//
//   - Loaders (opaque, possibly shared search-path resources with an
//     optional parent graph)
//   - Loader references (well-known roots and free-form named bindings)
//   - Pluggable external stores for references, properties and type
//     definitions, plus the host Environment
//   - The Reporter sink abstraction for report output
//   - Categorized operation errors
//
// The package intentionally keeps implementation concerns (store backends,
// dispatch, the policy engine, the report walk) out of scope, exposing small
// interfaces so the module stays testable in isolation. External stores are
// passed explicitly as collaborators to every operation rather than accessed
// as ambient state.
package core
