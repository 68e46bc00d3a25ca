// match.go decides whether a document answers a search query.
//
// A document matches at most once, on the highest-priority field that
// contains the query: ID, then Title, then any Tag, then the body. Only body
// matches carry a snippet, since the other fields are shown in full.
//
// Matching is a case-insensitive substring test on runes. Offsets for the
// snippet window are rune offsets so multi-byte text is never cut mid-rune.

package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SnippetRadius is the number of characters kept either side of a content
// match.
const SnippetRadius = 50

// MatchKind names the field a query matched.
type MatchKind string

const (
	MatchID      MatchKind = "ID"
	MatchTitle   MatchKind = "Title"
	MatchTag     MatchKind = "Tag"
	MatchContent MatchKind = "Content"
)

// Hit describes a successful match.
type Hit struct {
	Kind    MatchKind `json:"kind"`
	Snippet string    `json:"snippet,omitempty"`
}

// Match tests body, metadata and tags against query in priority order. An
// empty or whitespace-only query never matches.
func Match(body string, meta Metadata, tags []string, query string) (Hit, bool) {
	if strings.TrimSpace(query) == "" {
		return Hit{}, false
	}
	q := lower(query)

	if id := meta.Get("id"); id != "" && strings.Contains(lower(id), q) {
		return Hit{Kind: MatchID}, true
	}
	if title := meta.Get("title"); title != "" && strings.Contains(lower(title), q) {
		return Hit{Kind: MatchTitle}, true
	}
	for _, t := range tags {
		if strings.Contains(lower(t), q) {
			return Hit{Kind: MatchTag}, true
		}
	}

	lb := lower(body)
	i := strings.Index(lb, q)
	if i < 0 {
		return Hit{}, false
	}
	// lower maps rune for rune, so rune offsets in lb are valid in body.
	start := utf8.RuneCountInString(lb[:i])
	return Hit{Kind: MatchContent, Snippet: snippet(body, start, utf8.RuneCountInString(q))}, true
}

// snippet returns the text around the rune range [at, at+n) with whitespace
// runs collapsed and ellipses marking a truncated start or end.
func snippet(body string, at, n int) string {
	runes := []rune(body)
	start := max(0, at-SnippetRadius)
	end := min(len(runes), at+n+SnippetRadius)

	s := strings.Join(strings.Fields(string(runes[start:end])), " ")
	if start > 0 {
		s = "..." + s
	}
	if end < len(runes) {
		s += "..."
	}
	return s
}

// lower folds s rune by rune. Unlike strings.ToLower it never changes the
// rune count, which keeps offsets comparable with the original text.
func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}
