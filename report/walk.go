package report

import (
	"fmt"

	"github.com/hupe1980/loadermesh/core"
	"github.com/hupe1980/loadermesh/handler"
	"github.com/hupe1980/loadermesh/logging"
)

// parentSuffix names the implicit parent entry of a first-sighted loader.
const parentSuffix = "->parent"

// Group ordinal prefixes bake the visit group into each name so the final
// listing stays contiguous per group while sorting lexicographically within
// one. The literal prefix is an implementation detail of the sort key;
// display names strip it.
const (
	prefixSystem      = "1-"
	prefixApplication = "2-"
	prefixCurrent     = "3-"
	prefixContext     = "4-"
	prefixCore        = "5-"
	prefixReference   = "6-id="
	prefixTypedef     = "7-def="
)

type entry struct {
	loader *core.Loader
	name   string
}

// WalkOptions holds configuration overrides for NewWalk.
type WalkOptions struct {
	// FailFast escalates dispatch misses to aborting errors instead of
	// degrading the walk to partial.
	FailFast bool
	// Logger receives warnings for degraded entries.
	Logger logging.Logger
}

// Walk accumulates the loaders reachable from a set of named roots. The
// zero value is not usable; construct with NewWalk. A Walk is single-use
// and not safe for concurrent access; its tables are discarded with it.
type Walk struct {
	handlers *handler.Set
	failFast bool
	logger   logging.Logger

	names   map[string]*core.Loader
	bound   map[string]bool
	canon   map[*core.Loader]string
	aliases map[string][]string
	partial bool

	stack    []entry
	draining bool
	pending  *[]entry
}

// NewWalk constructs an empty walk dispatching through the given handler set.
func NewWalk(handlers *handler.Set, optFns ...func(o *WalkOptions)) *Walk {
	opts := WalkOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Walk{
		handlers: handlers,
		failFast: opts.FailFast,
		logger:   opts.Logger,
		names:    make(map[string]*core.Loader),
		bound:    make(map[string]bool),
		canon:    make(map[*core.Loader]string),
		aliases:  make(map[string][]string),
	}
}

// Visit records a loader under the proposed name and, on first sighting of
// the instance, explores its parent chain and asks the REPORT adapter to
// register any dependent loaders. A nil loader records an explicit
// "unassigned" entry.
//
// Visit drives an explicit worklist rather than recursing: re-entrant calls
// (from adapters registering dependents) only record entries, bounding stack
// depth regardless of graph shape. The worklist is ordered so that each
// instance's full parent chain is explored before its dependents, and
// dependents in registration order, matching the recursive formulation.
func (w *Walk) Visit(l *core.Loader, name string) error {
	if w.pending != nil {
		*w.pending = append(*w.pending, entry{loader: l, name: name})
		return nil
	}

	w.stack = append(w.stack, entry{loader: l, name: name})
	if w.draining {
		return nil
	}
	w.draining = true
	defer func() { w.draining = false }()

	for len(w.stack) > 0 {
		e := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if err := w.add(e); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walk) add(e entry) error {
	if w.bound[e.name] {
		old := w.names[e.name]
		if old == nil && e.loader == nil {
			return nil
		}
		// Always fatal: a duplicate name is a logic/configuration defect,
		// not an environmental condition.
		return core.NewOpError(e.name, "duplicate loader name", core.CodeDuplicateName)
	}
	w.bound[e.name] = true
	w.names[e.name] = e.loader

	if e.loader == nil {
		return nil
	}

	if canonName, seen := w.canon[e.loader]; seen {
		// Alias of an already canonicalized instance: cross-reference only,
		// no recursion into the parent, no adapter reporting.
		w.aliases[canonName] = append(w.aliases[canonName], e.name)
		return nil
	}

	// First sighting. The parent goes ahead of any adapter-registered
	// dependents so the parent chain is canonicalized first; dependents keep
	// their registration order.
	w.canon[e.loader] = e.name
	next := []entry{{loader: e.loader.Parent(), name: e.name + parentSuffix}}

	if h, ok := w.handlers.Resolve(e.loader, handler.ActionReport); ok {
		w.pending = &next
		err := h.Adapter().AddReportable(w, e.loader, e.name)
		w.pending = nil
		if err != nil {
			return err
		}
	} else {
		if w.failFast {
			return core.NewOpError(displayName(e.name), "no report handler for variant "+string(e.loader.Variant()), core.CodeDispatchMiss)
		}
		w.partial = true
		w.logger.Warn("no report handler for %s (variant %s), report will be partial", displayName(e.name), e.loader.Variant())
	}

	// Reverse push so the stack pops in next's order.
	for i := len(next) - 1; i >= 0; i-- {
		w.stack = append(w.stack, next[i])
	}
	return nil
}

// Partial reports whether any reachable loader lacked a REPORT handler.
func (w *Walk) Partial() bool { return w.partial }

// Loaders returns the number of distinct loader instances sighted.
func (w *Walk) Loaders() int { return len(w.canon) }

// Aliases returns the number of alias names recorded.
func (w *Walk) Aliases() int {
	n := 0
	for _, a := range w.aliases {
		n += len(a)
	}
	return n
}

// displayName strips the group ordinal prefix baked into a walk name. The
// group discriminator of reference and type entries (id=, def=) stays part
// of the display.
func displayName(name string) string {
	if len(name) > 2 && name[1] == '-' {
		return name[2:]
	}
	return name
}

func formatIndex(i int) string {
	return fmt.Sprintf("%2d", i+1)
}
