/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// terminal.go decides how markdown reaches a person at a terminal.
//
// Separated from flags.go because only the commands that print documents
// (cat, guide) care. A terminal gets glamour's styled rendering wrapped to
// the window; a pipe or file gets the markdown untouched so it can be fed
// to other tools or an LLM's context.

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// defaultWidth wraps rendered markdown when the terminal size is unknown.
const defaultWidth = 100

// Interactive reports whether command output goes to a terminal.
func Interactive() bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintMarkdown writes md styled by glamour when Interactive, and as plain
// text otherwise or if rendering fails.
func PrintMarkdown(md string) {
	if Interactive() {
		if rendered, err := renderMarkdown(md); err == nil {
			fmt.Fprint(out, rendered)
			return
		}
	}
	fmt.Fprint(out, md)
}

func renderMarkdown(md string) (string, error) {
	width := defaultWidth
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
