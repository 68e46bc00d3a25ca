// Package markdown extracts structure from markdown documents: front-matter
// metadata, tags, search hits and rendered HTML.
//
// The front-matter reader is a line-oriented heuristic, not a YAML parser.
// It understands flat "key: value" lines and nothing else; the only list it
// knows about is the inline "tags: [a, b]" form, handled by ExtractTags.
// Existing documents were written against this grammar, so it must not grow
// into a general parser.
//
// Nothing here fails. Malformed or partial front matter yields an empty or
// partial metadata map, never an error.
package markdown

import (
	"regexp"
	"strings"
)

// frontMatterRe matches a delimited block at the very start of the text.
// Delimiter lines are exactly "---", tolerating trailing blanks and CRLF.
// The optional body group is lazy so an empty block ("---\n---") does not
// swallow a later delimiter.
var frontMatterRe = regexp.MustCompile(`(?s)\A---[ \t]*\r?\n(?:(.*?)\r?\n)??---[ \t]*(?:\r?\n|\z)`)

// Metadata maps lower-cased front-matter keys to their values.
type Metadata map[string]string

// Get returns the value for key, matched case-insensitively.
func (m Metadata) Get(key string) string {
	return m[strings.ToLower(key)]
}

// Lookup returns the value for key and whether it was present.
func (m Metadata) Lookup(key string) (string, bool) {
	v, ok := m[strings.ToLower(key)]
	return v, ok
}

// ParseFrontMatter splits raw into its metadata and body.
//
// Without a front-matter block the metadata is empty and body is raw
// unchanged. With one, the block (both delimiter lines included) is removed
// from the body and each line inside is split on its first colon. Keys are
// trimmed and lower-cased; values are trimmed and lose one layer of matching
// quotes. Lines lacking a colon, a key or a value are skipped. A repeated key
// keeps its last value.
func ParseFrontMatter(raw string) (Metadata, string) {
	meta := Metadata{}

	block, end, ok := frontMatter(raw)
	if !ok {
		return meta, raw
	}

	for _, line := range strings.Split(block, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = unquote(strings.TrimSpace(value))
		if key == "" || value == "" {
			continue
		}
		meta[key] = value
	}

	return meta, raw[end:]
}

// frontMatter returns the text between the delimiters and the offset where
// the body starts.
func frontMatter(raw string) (block string, end int, ok bool) {
	loc := frontMatterRe.FindStringSubmatchIndex(raw)
	if loc == nil {
		return "", 0, false
	}
	if loc[2] >= 0 {
		block = raw[loc[2]:loc[3]]
	}
	return block, loc[1], true
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
