// Package manager contains the orchestration layer tying the loader
// subsystems together. The Manager decides, for a target loader reference,
// whether to create a new loader, append to an existing one or do nothing,
// honoring environment-wide policy guards (restricted mutation of well-known
// roots, reset support, fail-fast error surfacing). It also exports a
// loader's joined search path into the external property store and drives
// the report graph walk.
//
// Design principles:
//   - No hidden global state: every external collaborator (environment,
//     reference store, property store, type table) is injected explicitly
//   - Policy lives here, mechanism lives in the handler adapters; the
//     manager never type-cases on loader variants
//   - A failed operation never partially applies: loaders are bound back
//     into their reference only after the adapter succeeded, properties are
//     written in one atomic set
package manager
