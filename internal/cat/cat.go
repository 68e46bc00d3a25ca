// Package cat provides file reading with line range support.
//
// The StartLine/EndLine options let a reader take just the relevant part of
// a long document (e.g., lines 50-70). Combined with find output, which
// names the file, this enables the workflow: find -> cat -l -> write.
package cat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/format"
	"github.com/jpl-au/mdfiles/internal/service"
)

// minLineNumWidth is the minimum column width for line numbers.
const minLineNumWidth = 6

// Mode selects what part of a file cat prints.
type Mode int

const (
	ModeRaw  Mode = iota // file text as stored, front matter included
	ModeBody             // text with the front-matter block stripped
	ModeHTML             // rendered HTML of the body
	ModeMeta             // front-matter metadata and tags only
)

// Options configures a cat operation.
type Options struct {
	Mode        Mode
	LineNumbers bool // Show line numbers (-n flag)

	// StartLine and EndLine select a section of the output (1-indexed,
	// 0 = unbounded). They apply to the raw and body modes.
	StartLine int
	EndLine   int

	// MaxLineLength is the maximum line length for scanning (0 = 10MB).
	MaxLineLength int
}

// Result contains the outcome of a cat operation.
type Result struct {
	Document *files.Document
	HTML     string
}

// Run reads a file and writes the selected part of it to w.
func Run(ctx context.Context, w io.Writer, svc service.Service, path string, opts Options) (Result, error) {
	var result Result

	doc, err := svc.Read(ctx, path)
	if err != nil {
		return result, err
	}
	result.Document = doc

	switch opts.Mode {
	case ModeMeta:
		return result, format.Meta(w, doc.Metadata, doc.Tags)
	case ModeHTML:
		html, err := svc.Render(doc.Body)
		if err != nil {
			return result, fmt.Errorf("rendering %s: %w", doc.Path, err)
		}
		result.HTML = html
		fmt.Fprint(w, html)
		return result, nil
	case ModeBody:
		return result, lines(w, doc.Body, opts)
	default:
		return result, lines(w, doc.Raw, opts)
	}
}

// lines writes content, optionally numbered and limited to a line range.
func lines(w io.Writer, content string, opts Options) error {
	// Fast path: no line range and no line numbers - output content as-is
	if opts.StartLine == 0 && opts.EndLine == 0 && !opts.LineNumbers {
		fmt.Fprint(w, content)
		return nil
	}

	totalLines := strings.Count(content, "\n") + 1
	if strings.HasSuffix(content, "\n") {
		totalLines-- // trailing newline doesn't add a line
	}

	maxLineNum := totalLines
	if opts.EndLine > 0 && opts.EndLine < maxLineNum {
		maxLineNum = opts.EndLine
	}
	lineNumWidth := max(len(strconv.Itoa(maxLineNum)), minLineNumWidth)

	start := 1
	end := totalLines
	if opts.StartLine > 0 {
		start = opts.StartLine
	}
	if opts.EndLine > 0 && opts.EndLine < end {
		end = opts.EndLine
	}

	// Scan rather than split so skipped lines are never copied.
	maxLine := opts.MaxLineLength
	if maxLine <= 0 {
		maxLine = 10 * 1024 * 1024
	}
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), maxLine)
	lineNum := 0
	hasTrailingNewline := strings.HasSuffix(content, "\n")

	for scanner.Scan() {
		lineNum++
		if lineNum < start {
			continue
		}
		if lineNum > end {
			break
		}

		line := scanner.Text()
		if opts.LineNumbers {
			fmt.Fprintf(w, "%*d\t%s", lineNumWidth, lineNum, line)
		} else {
			fmt.Fprint(w, line)
		}

		// Newline between lines, and at the end if the original had one
		if lineNum < end || hasTrailingNewline {
			fmt.Fprintln(w)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading content: %w", err)
	}
	return nil
}

// ParseLineRange parses a line range string like "10:20", "5:", or ":15".
// Returns start and end line numbers (1-indexed), where 0 means unspecified.
func ParseLineRange(s string) (start, end int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid line range %q: expected format START:END", s)
	}

	if parts[0] != "" {
		start, err = strconv.Atoi(parts[0])
		if err != nil || start < 1 {
			return 0, 0, fmt.Errorf("invalid start line %q", parts[0])
		}
	}

	if parts[1] != "" {
		end, err = strconv.Atoi(parts[1])
		if err != nil || end < 1 {
			return 0, 0, fmt.Errorf("invalid end line %q", parts[1])
		}
	}

	if start > 0 && end > 0 && start > end {
		return 0, 0, fmt.Errorf("start line %d is greater than end line %d", start, end)
	}

	return start, end, nil
}
