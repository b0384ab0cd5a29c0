package report

import (
	"fmt"

	"github.com/hupe1980/loadermesh/core"
	"github.com/hupe1980/loadermesh/handler"
)

// Run walks every loader reachable from the fixed well-known roots, then
// every externally registered named reference bound to a loader, then every
// type definition's associated loader, and renders the result to the
// reporter.
//
// Root order is fixed; each group's ordinal prefix keeps groups contiguous
// in the sorted output while names sort lexicographically within a group.
func Run(
	env core.Environment,
	refs core.ReferenceStore,
	types core.TypeTable,
	handlers *handler.Set,
	rep core.Reporter,
	optFns ...func(o *WalkOptions),
) error {
	w := NewWalk(handlers, optFns...)

	roots := []struct {
		root core.Root
		name string
	}{
		{core.RootSystem, prefixSystem + core.RootSystem.String()},
		{core.RootApplication, prefixApplication + core.RootApplication.String()},
		{core.RootCurrent, prefixCurrent + core.RootCurrent.String()},
		{core.RootContext, prefixContext + core.RootContext.String()},
		{core.RootCore, prefixCore + core.RootCore.String()},
	}
	for _, r := range roots {
		if err := w.Visit(env.RootLoader(r.root), r.name); err != nil {
			return err
		}
	}

	for _, name := range refs.Names() {
		l, err := refs.Get(name)
		if err != nil {
			return fmt.Errorf("failed to resolve reference %q: %w", name, err)
		}
		if l == nil {
			continue
		}
		if err := w.Visit(l, prefixReference+name); err != nil {
			return err
		}
	}

	for _, def := range types.Definitions() {
		if def.Loader == nil {
			continue
		}
		if err := w.Visit(def.Loader, prefixTypedef+def.Name); err != nil {
			return err
		}
	}

	w.Render(rep, env.BootstrapPath())
	return nil
}
