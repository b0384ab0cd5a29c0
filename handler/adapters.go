package handler

import (
	"fmt"
	"strings"

	"github.com/hupe1980/loadermesh/core"
)

// fileScheme is the local file scheme prefix stripped from path elements
// when a plain filesystem path is requested.
const fileScheme = "file://"

func stripScheme(elems []string) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = strings.TrimPrefix(e, fileScheme)
	}
	return out
}

// standardAdapter implements all four actions for VariantStandard loaders.
type standardAdapter struct{}

func (standardAdapter) Create(spec CreateSpec) (*core.Loader, error) {
	return core.NewLoader(core.LoaderConfig{
		Variant:     core.VariantStandard,
		Parent:      spec.Parent,
		Path:        spec.Path,
		ParentFirst: spec.ParentFirst,
		Isolated:    spec.Isolated,
	}), nil
}

func (standardAdapter) Append(l *core.Loader, elems []string) error {
	l.AppendPath(elems...)
	return nil
}

func (standardAdapter) Path(l *core.Loader, toFile bool) ([]string, error) {
	p := l.Path()
	if toFile {
		p = stripScheme(p)
	}
	return p, nil
}

func (standardAdapter) Report(rep core.Reporter, l *core.Loader, name string) {
	rep.Report(fmt.Sprintf("    parent first: %t", l.ParentFirst()))
	rep.Report(fmt.Sprintf("    isolated:     %t", l.Isolated()))
}

func (standardAdapter) AddReportable(v Visitor, l *core.Loader, name string) error {
	// Standard loaders expose no dependent loaders beyond the parent chain,
	// which the walk itself covers.
	return nil
}

// sealedAdapter implements the read-only actions for VariantSealed loaders.
// Create and Append exist to satisfy the interface but are unreachable
// through dispatch because SealedHandler does not declare them.
type sealedAdapter struct{}

func (sealedAdapter) Create(CreateSpec) (*core.Loader, error) {
	return nil, fmt.Errorf("sealed loaders cannot be created")
}

func (sealedAdapter) Append(*core.Loader, []string) error {
	return fmt.Errorf("sealed loaders cannot be extended")
}

func (sealedAdapter) Path(l *core.Loader, toFile bool) ([]string, error) {
	p := l.Path()
	if toFile {
		p = stripScheme(p)
	}
	return p, nil
}

func (sealedAdapter) Report(rep core.Reporter, l *core.Loader, name string) {
	rep.Report("    sealed: owned by the host runtime")
}

func (sealedAdapter) AddReportable(v Visitor, l *core.Loader, name string) error {
	return nil
}
