// tags.go collects tags from the three places a document can declare them.
//
// Tags come from the front-matter "tags: [..]" list, from #hashtags and from
// [[wiki links]]. Hashtags and wiki links are scanned over the raw text,
// front matter included, so a tag can appear anywhere in the file.

package markdown

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// tagListRe matches an inline list on a front-matter line: tags: [a, b]
	tagListRe = regexp.MustCompile(`(?im)^[ \t]*tags[ \t]*:[ \t]*\[([^\]\r\n]*)\]`)

	// hashtagRe finds candidate hashtags. RE2 has no lookbehind, so the
	// "not preceded by a word character" rule is checked in code.
	hashtagRe = regexp.MustCompile(`#([\p{L}\p{Mn}\p{Nd}\p{Pc}]+)`)

	wikiLinkRe = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
)

// ExtractTags returns the tags declared in raw, deduplicated
// case-insensitively. The first spelling seen is kept and results are in
// discovery order: front-matter list, then hashtags, then wiki links.
func ExtractTags(raw string) []string {
	var s tagSet

	if block, _, ok := frontMatter(raw); ok {
		if m := tagListRe.FindStringSubmatch(block); m != nil {
			for _, t := range strings.Split(m[1], ",") {
				s.add(unquote(strings.TrimSpace(t)))
			}
		}
	}

	for _, loc := range hashtagRe.FindAllStringSubmatchIndex(raw, -1) {
		if prev, _ := utf8.DecodeLastRuneInString(raw[:loc[0]]); isWordRune(prev) {
			continue
		}
		tag := raw[loc[2]:loc[3]]
		if utf8.RuneCountInString(tag) > 1 {
			s.add(tag)
		}
	}

	for _, m := range wikiLinkRe.FindAllStringSubmatch(raw, -1) {
		s.add(strings.TrimSpace(m[1]))
	}

	return s.tags
}

// isWordRune mirrors the rune classes accepted by hashtagRe.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Pc, r)
}

// tagSet accumulates tags, ignoring case for uniqueness.
type tagSet struct {
	tags []string
	seen map[string]bool
}

func (s *tagSet) add(tag string) {
	if tag == "" {
		return
	}
	key := strings.ToLower(tag)
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.tags = append(s.tags, tag)
}
