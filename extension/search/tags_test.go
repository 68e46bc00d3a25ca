package search

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTags(t *testing.T) {
	svc, err := files.New(t.TempDir(), files.Options{})
	require.NoError(t, err)
	ctx := context.Background()
	_, err = svc.Write(ctx, "notes/a.md", "---\ntags: [ops]\n---\nShip the #web tier.\n")
	require.NoError(t, err)
	_, err = svc.Write(ctx, "notes/b.md", "Also #web.\n")
	require.NoError(t, err)
	_, err = svc.Write(ctx, "other/c.md", "#ops only\n")
	require.NoError(t, err)
	extCtx := extension.NewContext(svc, nil)

	tests := []struct {
		name string
		args map[string]any
		want map[string]int
	}{
		{"whole root", map[string]any{}, map[string]int{"ops": 2, "web": 2}},
		{"folder", map[string]any{"path": "notes"}, map[string]int{"ops": 1, "web": 2}},
		{"pattern", map[string]any{"pattern": "other/**"}, map[string]int{"ops": 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := handleTags(ctx, extCtx, mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: tc.args}})
			require.NoError(t, err)
			require.NotEmpty(t, res.Content)
			text := res.Content[0].(mcp.TextContent).Text
			require.False(t, res.IsError, text)

			var summary files.TagSummary
			require.NoError(t, json.Unmarshal([]byte(text), &summary))
			got := map[string]int{}
			for _, tag := range summary.Tags {
				got[tag.Tag] = tag.Count
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandleTags_OutsideRoot(t *testing.T) {
	svc, err := files.New(t.TempDir(), files.Options{})
	require.NoError(t, err)

	res, err := handleTags(context.Background(), extension.NewContext(svc, nil),
		mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: map[string]any{"path": "../.."}}})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
