// Package logging provides a minimal logging interface and adapters for
// loadermesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the manager, dispatch and report walk use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - ZerologAdapter wrapping rs/zerolog
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	m := manager.New(func(o *manager.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
