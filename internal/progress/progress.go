// Package progress reports how far a multi-file CLI operation has got.
// Output goes to stderr so stdout stays clean for piping, and nothing is
// drawn unless that stream is a terminal.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
// A couple of files finish before a counter is worth reading.
const minItems = 5

// Progress tracks and displays operation progress.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	live    bool
}

// New creates a progress reporter for total items. It draws only when w is
// a terminal and total reaches minItems.
func New(w io.Writer, label string, total int) *Progress {
	live := false
	if f, ok := w.(*os.File); ok {
		live = term.IsTerminal(int(f.Fd()))
	}
	return &Progress{
		w:     w,
		label: label,
		total: total,
		live:  live && total >= minItems,
	}
}

// Step records one finished item and redraws the counter.
func (p *Progress) Step() {
	p.current++
	if !p.live {
		return
	}
	fmt.Fprintf(p.w, "\r%s... %d/%d (%d%%)", p.label, p.current, p.total, p.current*100/p.total)
}

// Current returns the number of finished items.
func (p *Progress) Current() int { return p.current }

// Done clears the counter line to make way for final output.
func (p *Progress) Done() {
	if !p.live {
		return
	}
	fmt.Fprintf(p.w, "\r%40s\r", "")
}
