package core

import (
	"fmt"
	"io"
)

// Reporter is the sink abstraction a report builder writes lines to. It
// makes the reporting destination (stream or log) transparent to the
// components producing report text.
type Reporter interface {
	// Report writes a single line to the reporting destination.
	Report(line string)
}

// WriterReporter writes report lines to an io.Writer, one per line.
type WriterReporter struct {
	W io.Writer
}

// Report writes the line followed by a newline. Write errors are ignored;
// the sink is assumed non-blocking for local use.
func (r WriterReporter) Report(line string) {
	fmt.Fprintln(r.W, line)
}

// LineFunc adapts a plain function to the Reporter interface. Useful for
// routing report output into a logger.
type LineFunc func(line string)

// Report invokes the wrapped function.
func (f LineFunc) Report(line string) { f(line) }
