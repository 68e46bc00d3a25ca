package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Run("content argument", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("write", "notes/plan.md", "# Plan")
		env.contains(out, "Wrote notes/plan.md (6 bytes)")
		assert.Equal(t, "# Plan", env.read("notes/plan.md"))
	})

	t.Run("stdin", func(t *testing.T) {
		env := newTestEnv(t)

		env.runStdin(sampleDoc, "write", "plan.md")
		assert.Equal(t, sampleDoc, env.read("plan.md"))
	})

	t.Run("file flag", func(t *testing.T) {
		env := newTestEnv(t)
		src := filepath.Join(env.dir, "draft.md")
		require.NoError(t, os.WriteFile(src, []byte("from file"), 0644))

		env.run("write", "docs/draft.md", "-f", src)
		assert.Equal(t, "from file", env.read("docs/draft.md"))
	})

	t.Run("replaces existing", func(t *testing.T) {
		env := newTestEnv(t)
		env.put("a.md", "old")

		out := env.stdout("write", "a.md", "new", "-o", "json")
		var got struct {
			Path    string `json:"path"`
			Bytes   int64  `json:"bytes"`
			Created bool   `json:"created"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got), out)
		assert.Equal(t, "a.md", got.Path)
		assert.Equal(t, int64(3), got.Bytes)
		assert.False(t, got.Created)
		assert.Equal(t, "new", env.read("a.md"))
	})
}

func TestWrite_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.put("notes/a.md", "a")

	env.contains(env.fails("write", "../escape.md", "x"), "not found")
	assert.NoFileExists(t, filepath.Join(env.dir, "escape.md"))

	env.contains(env.fails("write", "notes", "x"), "is a directory")
	env.fails("write", "", "x")
}

func TestWrite_TooLarge(t *testing.T) {
	env := newTestEnv(t)
	env.run("config", "limits.max_content", "4")
	env.put("a.md", "keep")

	env.fails("write", "a.md", "too large")
	assert.Equal(t, "keep", env.read("a.md"))
}
