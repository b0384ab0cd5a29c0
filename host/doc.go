// Package host provides implementations of the core.Environment interface,
// the boundary to the host runtime's well-known root loaders (system,
// application, current, context, core) and its bootstrap search path. Only
// the thread context root is rebindable; the remaining roots are fixed for
// the lifetime of the environment.
package host
