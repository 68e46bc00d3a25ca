// Package diff compares two files line by line for "mdfiles diff" and the
// files_diff MCP tool.
//
// Lines are diffed whole, never split mid-word, and long unchanged runs are
// collapsed to a few lines either side of each change so the output stays
// readable for both terminals and LLM context windows.
package diff

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines kept next to a change.
const contextLines = 3

// Line prefixes in the plain output.
const (
	prefixSame    = "  "
	prefixRemoved = "- "
	prefixAdded   = "+ "
)

// Differ is implemented by the file service.
type Differ interface {
	Diff(ctx context.Context, a, b string) (Result, error)
}

// Result is the comparison of two files.
type Result struct {
	Old     string `json:"old"`
	New     string `json:"new"`
	Diff    string `json:"diff"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
}

// Changed reports whether any line was added or removed.
func (r Result) Changed() bool { return r.Added+r.Removed > 0 }

// Format returns the diff with a ---/+++ header naming both sides.
func (r Result) Format(colour bool) string {
	body := r.Diff
	if colour {
		body = Colourise(body)
	}
	return fmt.Sprintf("--- %s\n+++ %s\n%s", r.Old, r.New, body)
}

// Run asks svc to compare a and b and writes the formatted result to w.
func Run(ctx context.Context, w io.Writer, svc Differ, a, b string, colour bool) (Result, error) {
	r, err := svc.Diff(ctx, a, b)
	if err != nil {
		return r, err
	}
	fmt.Fprint(w, r.Format(colour))
	return r, nil
}

// Compute compares oldText with newText. The labels name each side in the
// header.
func Compute(oldText, newText, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	r := Result{Old: oldLabel, New: newLabel}
	var out strings.Builder
	for _, d := range diffs {
		chunk := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			r.Removed += len(chunk)
			writeLines(&out, prefixRemoved, chunk)
		case diffmatchpatch.DiffInsert:
			r.Added += len(chunk)
			writeLines(&out, prefixAdded, chunk)
		case diffmatchpatch.DiffEqual:
			writeLines(&out, prefixSame, collapse(chunk))
		}
	}
	r.Diff = out.String()
	return r
}

// splitLines splits text into lines without the empty tail a final newline
// would leave.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// collapse keeps the first and last contextLines of a long unchanged run
// with "..." between them.
func collapse(lines []string) []string {
	if len(lines) <= 2*contextLines {
		return lines
	}
	kept := make([]string, 0, 2*contextLines+1)
	kept = append(kept, lines[:contextLines]...)
	kept = append(kept, "...")
	return append(kept, lines[len(lines)-contextLines:]...)
}

func writeLines(b *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		b.WriteString(prefix)
		b.WriteString(l)
		b.WriteByte('\n')
	}
}

// Colourise paints removed lines red and added lines green.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range splitLines(d) {
		switch {
		case strings.HasPrefix(line, prefixRemoved):
			line = red + line + reset
		case strings.HasPrefix(line, prefixAdded):
			line = green + line + reset
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
