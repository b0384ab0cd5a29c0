package report

import (
	"fmt"
	"sort"

	"github.com/hupe1980/loadermesh/core"
	"github.com/hupe1980/loadermesh/handler"
)

const (
	headerLine  = "---------- Loader Report ----------"
	footerLine  = "---------- End Of Loader Report ----------"
	partialLine = "WARNING: Some loaders had no report handler; this report may be incomplete."
)

// Render writes the collected walk state to the reporter. The bootstrap
// search path is printed first; it is always available and not subject to
// adapter dispatch. Every name list is sorted before rendering so the output
// is byte-identical across runs over an unchanged graph.
func (w *Walk) Render(rep core.Reporter, bootstrap []string) {
	rep.Report(headerLine)
	if w.partial {
		rep.Report(partialLine)
	}

	rep.Report(" ")
	rep.Report(fmt.Sprintf(" 0. bootstrap search path: %d elements", len(bootstrap)))
	for _, e := range bootstrap {
		rep.Report("         > " + e)
	}

	names := make([]string, 0, len(w.names))
	for name := range w.names {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		rep.Report(" ")
		l := w.names[name]
		switch {
		case l == nil:
			rep.Report(formatIndex(i) + ". " + displayName(name) + " is not assigned.")
		case w.canon[l] == name:
			rep.Report(formatIndex(i) + ". " + displayName(name))
			w.detail(rep, l, name)
		default:
			rep.Report(formatIndex(i) + ". " + displayName(name) + " = " + displayName(w.canon[l]) + ". (See above.)")
		}
	}

	rep.Report(footerLine)
}

// detail prints the generic class/path block for a canonical instance, then
// any variant-specific attributes its REPORT adapter contributes. Loaders
// that cannot be fully introspected are still listed, explicitly marked
// rather than omitted.
func (w *Walk) detail(rep core.Reporter, l *core.Loader, name string) {
	rep.Report("    class: " + string(l.Variant()))

	if h, ok := w.handlers.Resolve(l, handler.ActionGetPath); ok {
		if p, err := h.Adapter().Path(l, false); err != nil {
			rep.Report("    path:  - not investigatable (adapter retrieves no path) -")
		} else {
			rep.Report(fmt.Sprintf("    path:  %d elements", len(p)))
			for _, e := range p {
				rep.Report("         > " + e)
			}
		}
	} else {
		rep.Report("    path:  - not investigatable (no handler found) -")
	}

	if h, ok := w.handlers.Resolve(l, handler.ActionReport); ok {
		h.Adapter().Report(rep, l, displayName(name))
	} else {
		rep.Report("    - additional parameters not investigatable (no handler found) -")
	}
}
