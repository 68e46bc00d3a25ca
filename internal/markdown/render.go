// render.go turns a document body into HTML.
//
// Rendering is delegated to goldmark. The engine is built once per Renderer
// and is safe for concurrent use, so the web server and CLI share a single
// instance for the life of the process.

package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderOptions controls the HTML produced by a Renderer.
type RenderOptions struct {
	// UnsafeHTML passes raw HTML in documents through to the output.
	// When false goldmark replaces it with a comment.
	UnsafeHTML bool

	// HardWraps renders single newlines as <br>.
	HardWraps bool

	// Extensions names the goldmark extensions to enable. Empty means
	// DefaultExtensions. Unknown names are ignored.
	Extensions []string
}

// DefaultExtensions is the extension set used when none are named.
var DefaultExtensions = []string{"gfm", "footnote", "definition", "typographer", "emoji"}

var extensions = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
	"emoji":         emoji.Emoji,
}

// Renderer converts markdown bodies to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds a renderer for the given options.
func NewRenderer(opts RenderOptions) *Renderer {
	var rendererOpts []renderer.Option
	if opts.UnsafeHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	names := opts.Extensions
	if len(names) == 0 {
		names = DefaultExtensions
	}

	md := goldmark.New(
		goldmark.WithExtensions(collectExtensions(names)...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID(), parser.WithAttribute()),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &Renderer{md: md}
}

// Render returns body as HTML.
func (r *Renderer) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

func collectExtensions(names []string) []goldmark.Extender {
	var out []goldmark.Extender
	seen := make(map[string]bool)
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		ext, ok := extensions[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ext)
	}
	return out
}
