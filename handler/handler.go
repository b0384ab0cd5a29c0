package handler

import (
	"github.com/hupe1980/loadermesh/core"
)

// Action enumerates the verbs an adapter can perform against a loader.
type Action int

const (
	// ActionCreate constructs a new loader instance.
	ActionCreate Action = iota
	// ActionAppend extends an existing loader's search path.
	ActionAppend
	// ActionGetPath reads the effective search path of a loader.
	ActionGetPath
	// ActionReport emits variant-specific detail during a report walk.
	ActionReport
)

// String returns the verb name of the action.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionAppend:
		return "append"
	case ActionGetPath:
		return "get-path"
	case ActionReport:
		return "report"
	default:
		return "unknown"
	}
}

// CreateSpec carries the construction attributes an adapter needs to build a
// brand-new loader. The manager translates resolved Parameters into a
// CreateSpec before dispatching ActionCreate.
type CreateSpec struct {
	// Parent is the resolved parent loader, or nil.
	Parent *core.Loader
	// Path is the initial search path.
	Path []string
	// ParentFirst controls delegation order of the new loader.
	ParentFirst bool
	// Isolated restricts the new loader to its own path.
	Isolated bool
}

// Visitor registers additional loaders discovered during a report walk.
// The report walk implements Visitor; adapters call it from AddReportable
// to expose dependent loaders beyond the parent chain.
type Visitor interface {
	// Visit records a loader under the proposed name. A nil loader records
	// an explicit "unassigned" entry.
	Visit(l *core.Loader, name string) error
}

// Adapter implements the four action verbs for one family of loader runtime
// variants.
type Adapter interface {
	// Create constructs a new loader instance from the given CreateSpec.
	Create(spec CreateSpec) (*core.Loader, error)

	// Append extends the loader's search path with the given elements.
	Append(l *core.Loader, elems []string) error

	// Path returns the loader's effective search path. When toFile is set,
	// elements carrying a local file scheme prefix are stripped to plain
	// filesystem paths.
	Path(l *core.Loader, toFile bool) ([]string, error)

	// Report writes variant-specific extra attributes for the loader to the
	// reporter. Called after the generic class/path block has been emitted.
	Report(rep core.Reporter, l *core.Loader, name string)

	// AddReportable registers any additional dependent loaders the variant
	// exposes with the visitor. The parent chain is walked by the caller and
	// must not be registered here.
	AddReportable(v Visitor, l *core.Loader, name string) error
}

// Handler declares which loader variants and which actions it supports and
// supplies the Adapter instance implementing them. The adapter is
// constructed lazily on first use.
type Handler struct {
	name    string
	actions map[Action]bool
	accepts func(*core.Loader) bool
	adapter Adapter
	build   func() Adapter
}

// NewHandler constructs a handler.
//
// accepts is the variant acceptance predicate evaluated against concrete
// loader instances during dispatch; build lazily constructs the adapter.
func NewHandler(name string, accepts func(*core.Loader) bool, build func() Adapter, actions ...Action) *Handler {
	set := make(map[Action]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return &Handler{name: name, actions: set, accepts: accepts, build: build}
}

// Name returns the handler's identifier, used in logs and reports.
func (h *Handler) Name() string { return h.name }

// Supports reports whether the handler implements the action.
func (h *Handler) Supports(a Action) bool { return h.actions[a] }

// Accepts reports whether the handler can adapt the loader instance.
// A nil loader is accepted only by handlers able to create one.
func (h *Handler) Accepts(l *core.Loader) bool {
	if l == nil {
		return h.actions[ActionCreate]
	}
	return h.accepts(l)
}

// Adapter returns the handler's adapter, constructing it on first use.
func (h *Handler) Adapter() Adapter {
	if h.adapter == nil {
		h.adapter = h.build()
	}
	return h.adapter
}

// Set is an ordered collection of handlers. Resolution scans in registration
// order and returns the first handler that supports the action and accepts
// the loader instance; registration order is the only tie-break.
type Set struct {
	handlers []*Handler
}

// NewSet constructs a handler set with the given handlers, in order.
func NewSet(handlers ...*Handler) *Set {
	return &Set{handlers: handlers}
}

// Register appends a handler to the set. Handlers registered earlier win
// ties, allowing specific handlers ahead of generic fallbacks.
func (s *Set) Register(h *Handler) {
	s.handlers = append(s.handlers, h)
}

// Resolve returns the first registered handler that supports the action and
// accepts the loader instance. A miss is a non-fatal condition for the
// caller's policy layer to surface.
func (s *Set) Resolve(l *core.Loader, a Action) (*Handler, bool) {
	for _, h := range s.handlers {
		if h.Supports(a) && h.Accepts(l) {
			return h, true
		}
	}
	return nil, false
}

// Len returns the number of registered handlers.
func (s *Set) Len() int { return len(s.handlers) }

// StandardHandler returns the handler for loaders this module creates and
// fully manages. It supports every action.
func StandardHandler() *Handler {
	return NewHandler(
		"standard",
		func(l *core.Loader) bool { return l.Variant() == core.VariantStandard },
		func() Adapter { return &standardAdapter{} },
		ActionCreate, ActionAppend, ActionGetPath, ActionReport,
	)
}

// SealedHandler returns the fallback handler for host-owned loaders. Sealed
// loaders can be inspected but never reconstructed or extended.
func SealedHandler() *Handler {
	return NewHandler(
		"sealed",
		func(l *core.Loader) bool { return l.Variant() == core.VariantSealed },
		func() Adapter { return &sealedAdapter{} },
		ActionGetPath, ActionReport,
	)
}

// DefaultSet returns the built-in handler set: the standard handler followed
// by the sealed fallback.
func DefaultSet() *Set {
	return NewSet(StandardHandler(), SealedHandler())
}
