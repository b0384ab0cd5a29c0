// Package params defines the configuration bag describing how to construct
// a brand-new loader (variant, parent, delegation flags). Parameter sets are
// resolvable by reference through a Registry so multiple invocations can
// share one configuration, and can be loaded from TOML files.
package params
