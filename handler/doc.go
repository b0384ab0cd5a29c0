// Package handler implements the capability-dispatch subsystem that routes
// loader actions (create, append, get-path, report) to the first registered
// adapter able to handle a given loader's runtime variant.
//
// The package focuses on three concerns:
//
//  1. The closed Action verb set
//  2. Handler declarations (supported actions + variant acceptance) that
//     supply an Adapter implementing the verbs for one variant family
//  3. The ordered Set performing first-match resolution
//
// Design principles:
//   - Dispatch is a registered list of predicate+strategy pairs, never
//     type-casing in the orchestrator
//   - Registration order is the only tie-break, so specific handlers can be
//     registered ahead of generic fallbacks
//   - A dispatch miss is a non-fatal condition surfaced to the policy layer,
//     never a fault raised by the dispatcher itself
package handler
