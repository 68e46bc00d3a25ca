package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := Parse("---\ntitle: Hello\nid: n-1\nauthor: jo\ndate: 2024-01-02\n---\nBody #tag")

	assert.Equal(t, "Hello", doc.Title("ignored.md"))
	assert.Equal(t, "n-1", doc.ID())
	assert.Equal(t, "jo", doc.Author())
	assert.Equal(t, "2024-01-02", doc.Date())
	assert.Equal(t, []string{"tag"}, doc.Tags)
	assert.Equal(t, "Body #tag", doc.Body)
}

func TestDocument_TitleFallsBackToStem(t *testing.T) {
	doc := Parse("no front matter")
	assert.Equal(t, "readme", doc.Title("notes/readme.md"))
	assert.Equal(t, "", doc.ID())
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("a.md"))
	assert.True(t, IsMarkdown("A.MD"))
	assert.False(t, IsMarkdown("a.markdown"))
	assert.False(t, IsMarkdown("md"))
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(RenderOptions{})

	html, err := r.Render("# Hello World\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, html, `<h1 id="hello-world">Hello World</h1>`)
	assert.Contains(t, html, "<table>")

	html, err = r.Render("~~gone~~")
	require.NoError(t, err)
	assert.Contains(t, html, "<del>gone</del>")
}

func TestRenderer_RawHTML(t *testing.T) {
	src := "<script>alert(1)</script>\n"

	safe, err := NewRenderer(RenderOptions{}).Render(src)
	require.NoError(t, err)
	assert.NotContains(t, safe, "<script>")

	unsafe, err := NewRenderer(RenderOptions{UnsafeHTML: true}).Render(src)
	require.NoError(t, err)
	assert.Contains(t, unsafe, "<script>")
}

func TestRenderer_Emoji(t *testing.T) {
	html, err := NewRenderer(RenderOptions{}).Render("hi :smile:")
	require.NoError(t, err)
	assert.NotContains(t, html, ":smile:")

	// Without the extension the shortcode is left alone.
	html, err = NewRenderer(RenderOptions{Extensions: []string{"gfm"}}).Render("hi :smile:")
	require.NoError(t, err)
	assert.Contains(t, html, ":smile:")
}
