package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantMeta Metadata
		wantBody string
	}{
		{
			name:     "basic block",
			raw:      "---\ntitle: Hello\ntags: [a, b]\n---\nBody #c [[d]]",
			wantMeta: Metadata{"title": "Hello", "tags": "[a, b]"},
			wantBody: "Body #c [[d]]",
		},
		{
			name:     "no front matter",
			raw:      "# Heading\n\ntext",
			wantMeta: Metadata{},
			wantBody: "# Heading\n\ntext",
		},
		{
			name:     "block not at start",
			raw:      "\n---\ntitle: X\n---\nbody",
			wantMeta: Metadata{},
			wantBody: "\n---\ntitle: X\n---\nbody",
		},
		{
			name:     "unterminated block",
			raw:      "---\ntitle: X\nbody",
			wantMeta: Metadata{},
			wantBody: "---\ntitle: X\nbody",
		},
		{
			name:     "empty block",
			raw:      "---\n---\nbody\n---\nmore",
			wantMeta: Metadata{},
			wantBody: "body\n---\nmore",
		},
		{
			name:     "crlf delimiters",
			raw:      "---\r\nTitle: A\r\n---\r\nBody",
			wantMeta: Metadata{"title": "A"},
			wantBody: "Body",
		},
		{
			name:     "trailing blanks on delimiters",
			raw:      "--- \ntitle: A\n---\t\nBody",
			wantMeta: Metadata{"title": "A"},
			wantBody: "Body",
		},
		{
			name:     "block with nothing after",
			raw:      "---\ntitle: A\n---",
			wantMeta: Metadata{"title": "A"},
			wantBody: "",
		},
		{
			name:     "keys lower-cased and values trimmed",
			raw:      "---\n  Author :   Jane Doe  \n---\n",
			wantMeta: Metadata{"author": "Jane Doe"},
			wantBody: "",
		},
		{
			name:     "value split on first colon only",
			raw:      "---\nurl: http://example.com:8080/x\n---\n",
			wantMeta: Metadata{"url": "http://example.com:8080/x"},
			wantBody: "",
		},
		{
			name:     "matching quotes stripped once",
			raw:      "---\na: \"double\"\nb: 'single'\nc: \"'nested'\"\nd: 'mismatch\"\n---\n",
			wantMeta: Metadata{"a": "double", "b": "single", "c": "'nested'", "d": "'mismatch\""},
			wantBody: "",
		},
		{
			name:     "empty keys and values skipped",
			raw:      "---\ndraft:\n: orphan\nno colon here\nempty: \"\"\nok: yes\n---\n",
			wantMeta: Metadata{"ok": "yes"},
			wantBody: "",
		},
		{
			name:     "last duplicate wins",
			raw:      "---\ntitle: first\nTITLE: second\n---\n",
			wantMeta: Metadata{"title": "second"},
			wantBody: "",
		},
		{
			name:     "four dashes do not close",
			raw:      "---\na: 1\n----\nb: 2\n---\nbody",
			wantMeta: Metadata{"a": "1", "b": "2"},
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body := ParseFrontMatter(tt.raw)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestMetadata_GetIgnoresCase(t *testing.T) {
	meta, _ := ParseFrontMatter("---\nTitle: Hello\n---\n")

	assert.Equal(t, "Hello", meta.Get("TITLE"))
	assert.Equal(t, "", meta.Get("missing"))

	_, ok := meta.Lookup("missing")
	assert.False(t, ok)
}
