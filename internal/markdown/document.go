package markdown

import (
	"path/filepath"
	"strings"
)

// Document is a parsed markdown file.
type Document struct {
	Metadata Metadata
	Tags     []string
	Body     string
}

// Parse splits raw into metadata, tags and body. Parse never fails; text
// without front matter is all body.
func Parse(raw string) Document {
	meta, body := ParseFrontMatter(raw)
	return Document{
		Metadata: meta,
		Tags:     ExtractTags(raw),
		Body:     body,
	}
}

// Title returns the "title" field, or the stem of name when it is absent.
func (d Document) Title(name string) string {
	if t := d.Metadata.Get("title"); t != "" {
		return t
	}
	return Stem(name)
}

// ID returns the "id" field.
func (d Document) ID() string { return d.Metadata.Get("id") }

// Author returns the "author" field.
func (d Document) Author() string { return d.Metadata.Get("author") }

// Date returns the "date" field as written.
func (d Document) Date() string { return d.Metadata.Get("date") }

// Match tests the document against query. See the package-level Match.
func (d Document) Match(query string) (Hit, bool) {
	return Match(d.Body, d.Metadata, d.Tags, query)
}

// IsMarkdown reports whether name has a .md extension, ignoring case.
func IsMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

// Stem returns the base name of p without its extension.
func Stem(p string) string {
	base := filepath.Base(filepath.FromSlash(p))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
