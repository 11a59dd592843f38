package prompt

import (
	"fmt"
	"io"
)

// Reporter emits one diagnostic line per rejected attempt.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a reporter writing to w.
func NewReporter(w io.Writer) *Reporter { return &Reporter{w: w} }

// ReportInvalidInput writes a single generic diagnostic echoing raw. The
// argument is display-only: any value is accepted and its structure is never
// inspected. Write errors are ignored; diagnostics are best effort.
func (r *Reporter) ReportInvalidInput(raw any) {
	fmt.Fprintf(r.w, "%v is not what I asked for.\n", raw)
}
