package files

import (
	"context"
	"testing"

	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) extension.Context {
	t.Helper()
	svc, err := files.New(t.TempDir(), files.Options{})
	require.NoError(t, err)
	ctx := context.Background()
	_, err = svc.Write(ctx, "a.md", "one\ntwo\nthree\n")
	require.NoError(t, err)
	_, err = svc.Write(ctx, "b.md", "one\n2\nthree\n")
	require.NoError(t, err)
	_, err = svc.Write(ctx, "c.md", "one\ntwo\nthree\n")
	require.NoError(t, err)
	return extension.NewContext(svc, nil)
}

func call(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "want text content")
	return tc.Text
}

func TestHandleDiff(t *testing.T) {
	extCtx := newContext(t)
	ctx := context.Background()

	t.Run("changed", func(t *testing.T) {
		res, err := handleDiff(ctx, extCtx, call(map[string]any{"a": "a.md", "b": "b.md"}))
		require.NoError(t, err)
		require.False(t, res.IsError, resultText(t, res))
		assert.Equal(t, "--- a.md\n+++ b.md\n  one\n- two\n+ 2\n  three\n", resultText(t, res))
	})

	t.Run("identical", func(t *testing.T) {
		res, err := handleDiff(ctx, extCtx, call(map[string]any{"a": "a.md", "b": "c.md"}))
		require.NoError(t, err)
		assert.Equal(t, "no differences", resultText(t, res))
	})

	t.Run("missing argument", func(t *testing.T) {
		res, err := handleDiff(ctx, extCtx, call(map[string]any{"a": "a.md"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "b is required")
	})

	t.Run("outside root", func(t *testing.T) {
		res, err := handleDiff(ctx, extCtx, call(map[string]any{"a": "../../etc/passwd", "b": "a.md"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "not found")
	})
}

func TestMCPTools(t *testing.T) {
	tools := (&Extension{}).MCPTools()
	require.Len(t, tools, 1)
	assert.Equal(t, "files_diff", tools[0].Tool.Name)
}
