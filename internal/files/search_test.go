package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpl-au/mdfiles/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearch(t *testing.T) *Service {
	t.Helper()
	svc, _ := newService(t, Options{})
	put(t, svc, "by-id.md", "---\nid: QX-7\ntitle: Unrelated\n---\nnothing")
	put(t, svc, "by-title.md", "---\ntitle: The qx guide\n---\nnothing")
	put(t, svc, "notes/by-tag.md", "body with #qxtag")
	put(t, svc, "notes/deep/by-content.md", "lead in text then qx appears here")
	put(t, svc, "ignored.txt", "qx in a text file")
	put(t, svc, "no-match.md", "nothing relevant")
	return svc
}

func byPath(rs []SearchResult) map[string]SearchResult {
	m := make(map[string]SearchResult, len(rs))
	for _, r := range rs {
		m[r.Path] = r
	}
	return m
}

func TestSearch_MatchKinds(t *testing.T) {
	svc := seedSearch(t)

	res, err := svc.Search(context.Background(), "QX", "", true)
	require.NoError(t, err)
	require.Len(t, res.Results, 4)

	got := byPath(res.Results)
	assert.Equal(t, markdown.MatchID, got["by-id.md"].Kind)
	assert.Equal(t, "QX-7", got["by-id.md"].ID)
	assert.Equal(t, "Unrelated", got["by-id.md"].Title)

	assert.Equal(t, markdown.MatchTitle, got["by-title.md"].Kind)
	assert.Equal(t, markdown.MatchTag, got["notes/by-tag.md"].Kind)
	assert.Equal(t, "by-tag", got["notes/by-tag.md"].Title)

	content := got["notes/deep/by-content.md"]
	assert.Equal(t, markdown.MatchContent, content.Kind)
	assert.Equal(t, "lead in text then qx appears here", content.Snippet)
	assert.Equal(t, "by-content.md", content.Name)
	assert.False(t, content.Modified.IsZero())
}

func TestSearch_NonRecursive(t *testing.T) {
	svc := seedSearch(t)

	res, err := svc.Search(context.Background(), "qx", "", false)
	require.NoError(t, err)
	got := byPath(res.Results)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "by-id.md")
	assert.Contains(t, got, "by-title.md")

	res, err = svc.Search(context.Background(), "qx", "notes", false)
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "notes/by-tag.md", res.Results[0].Path)
}

func TestSearch_BlankQuery(t *testing.T) {
	svc := seedSearch(t)

	res, err := svc.Search(context.Background(), "   ", "", true)
	require.NoError(t, err)
	assert.Empty(t, res.Results)
	assert.NotNil(t, res.Results)
}

func TestSearch_BadBase(t *testing.T) {
	svc := seedSearch(t)
	ctx := context.Background()

	_, err := svc.Search(ctx, "qx", "../", true)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Search(ctx, "qx", "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Search(ctx, "qx", "by-id.md", true)
	assert.ErrorIs(t, err, ErrNotDir)
}

func TestSearch_SkipsSymlinkOutsideRoot(t *testing.T) {
	svc, outside := newService(t, Options{})
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.md"), []byte("secret qx"), 0644))
	symlink(t, filepath.Join(outside, "secret.md"), filepath.Join(svc.Root(), "leak.md"))
	put(t, svc, "inside.md", "inside qx")

	res, err := svc.Search(context.Background(), "qx", "", true)
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "inside.md", res.Results[0].Path)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "leak.md", res.Skipped[0].Path)
	assert.Equal(t, "outside root", res.Skipped[0].Reason)
}

func TestSearch_SymlinkInsideRootKeepsName(t *testing.T) {
	svc, _ := newService(t, Options{})
	put(t, svc, "real/target.md", "findme")
	symlink(t, filepath.Join(svc.Root(), "real", "target.md"), filepath.Join(svc.Root(), "alias.md"))

	res, err := svc.Search(context.Background(), "findme", "", true)
	require.NoError(t, err)
	got := byPath(res.Results)
	assert.Contains(t, got, "alias.md")
	assert.Contains(t, got, "real/target.md")
}

func TestFind_PatternAndLimit(t *testing.T) {
	svc := seedSearch(t)
	ctx := context.Background()

	res, err := svc.Find(ctx, SearchRequest{Query: "qx", Recursive: true, Pattern: "notes/**"})
	require.NoError(t, err)
	got := byPath(res.Results)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "notes/by-tag.md")
	assert.Contains(t, got, "notes/deep/by-content.md")

	res, err = svc.Find(ctx, SearchRequest{Query: "qx", Recursive: true, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, res.Results, 1)

	_, err = svc.Find(ctx, SearchRequest{Query: "qx", Recursive: true, Pattern: "[bad"})
	assert.Error(t, err)
}

func TestTags(t *testing.T) {
	svc, _ := newService(t, Options{})
	put(t, svc, "a.md", "---\ntags: [Go, web]\n---\n#go")
	put(t, svc, "sub/b.md", "#GO and [[Design]]")
	put(t, svc, "sub/c.md", "#web #design")
	put(t, svc, "skip.txt", "#ignored")

	sum, err := svc.Tags(context.Background(), "", "")
	require.NoError(t, err)

	var tags []string
	for _, tc := range sum.Tags {
		tags = append(tags, tc.Tag+"="+strings.Join(tc.Paths, ","))
	}
	assert.Equal(t, []string{
		"Design=sub/b.md,sub/c.md",
		"Go=a.md,sub/b.md",
		"web=a.md,sub/c.md",
	}, tags)
	assert.Equal(t, 2, sum.Tags[0].Count)

	sum, err = svc.Tags(context.Background(), "sub", "*/c.md")
	require.NoError(t, err)
	require.Len(t, sum.Tags, 2)
	assert.Equal(t, "design", sum.Tags[0].Tag)
	assert.Equal(t, "web", sum.Tags[1].Tag)
}
