package core

import (
	"github.com/google/uuid"
)

// Variant identifies the concrete runtime kind of a Loader. The variant tag
// determines which handler/adapter family can operate on the instance.
type Variant string

const (
	// VariantStandard marks loaders created and fully managed by this module.
	// Standard loaders support every action, including reconstruction.
	VariantStandard Variant = "standard"

	// VariantSealed marks loaders owned by the host runtime. Their search
	// path can be inspected but they cannot be created, appended to or reset.
	VariantSealed Variant = "sealed"
)

// Loader is an opaque, possibly shared loader resource: an ordered search
// path plus an optional parent forming a directed ancestor graph. Two
// differently named references may resolve to the same instance and two
// instances may share a parent, so the parent structure is a DAG, not a tree.
//
// Loader lifetime is owned by the host; this module never destroys a loader,
// it only creates new instances or appends to existing search paths. The
// parent chain is immutable after construction.
type Loader struct {
	id          string
	variant     Variant
	parent      *Loader
	path        []string
	parentFirst bool
	isolated    bool
}

// LoaderConfig carries the construction attributes for NewLoader.
type LoaderConfig struct {
	// Variant tags the runtime kind. Defaults to VariantStandard.
	Variant Variant
	// Parent is the optional parent loader. Immutable after construction.
	Parent *Loader
	// Path is the initial ordered search path.
	Path []string
	// ParentFirst controls whether lookups consult the parent before the
	// loader's own path.
	ParentFirst bool
	// Isolated restricts lookups to the loader's own path plus explicit
	// delegations.
	Isolated bool
}

// NewLoader constructs a loader with a fresh instance ID.
func NewLoader(cfg LoaderConfig) *Loader {
	if cfg.Variant == "" {
		cfg.Variant = VariantStandard
	}
	path := make([]string, len(cfg.Path))
	copy(path, cfg.Path)
	return &Loader{
		id:          uuid.NewString(),
		variant:     cfg.Variant,
		parent:      cfg.Parent,
		path:        path,
		parentFirst: cfg.ParentFirst,
		isolated:    cfg.Isolated,
	}
}

// ID returns the unique instance identifier.
func (l *Loader) ID() string { return l.id }

// Variant returns the runtime kind tag.
func (l *Loader) Variant() Variant { return l.variant }

// Parent returns the parent loader or nil.
func (l *Loader) Parent() *Loader { return l.parent }

// ParentFirst reports whether lookups delegate to the parent first.
func (l *Loader) ParentFirst() bool { return l.parentFirst }

// Isolated reports whether the loader is isolated from implicit delegation.
func (l *Loader) Isolated() bool { return l.isolated }

// Path returns a copy of the ordered search path. The slice is a snapshot
// and safe for caller mutation.
func (l *Loader) Path() []string {
	cp := make([]string, len(l.path))
	copy(cp, l.path)
	return cp
}

// AppendPath appends elements to the search path. Intended for adapter use;
// callers should mutate loaders through Manager operations so that policy
// guards apply.
func (l *Loader) AppendPath(elems ...string) {
	l.path = append(l.path, elems...)
}
