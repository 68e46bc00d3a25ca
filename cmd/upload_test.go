package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	t.Run("copies files into folder", func(t *testing.T) {
		env := newTestEnv(t)
		a := filepath.Join(env.dir, "report.txt")
		b := filepath.Join(env.dir, "notes.md")
		require.NoError(t, os.WriteFile(a, []byte("figures"), 0644))
		require.NoError(t, os.WriteFile(b, []byte("# Notes"), 0644))

		out := env.run("upload", "inbox", a, b)
		env.contains(out, "Uploaded inbox/report.txt (7 bytes)")
		env.contains(out, "Uploaded inbox/notes.md (7 bytes)")
		assert.Equal(t, "figures", env.read("inbox/report.txt"))
		assert.Equal(t, "# Notes", env.read("inbox/notes.md"))
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		a := filepath.Join(env.dir, "a.md")
		require.NoError(t, os.WriteFile(a, []byte("x"), 0644))

		var results []struct {
			Path    string `json:"path"`
			Created bool   `json:"created"`
		}
		require.NoError(t, json.Unmarshal([]byte(env.stdout("upload", "", a, "-o", "json")), &results))
		require.Len(t, results, 1)
		assert.Equal(t, "a.md", results[0].Path)
		assert.True(t, results[0].Created)
	})

	t.Run("stops at missing local file", func(t *testing.T) {
		env := newTestEnv(t)
		a := filepath.Join(env.dir, "a.md")
		require.NoError(t, os.WriteFile(a, []byte("x"), 0644))

		env.fails("upload", "inbox", a, filepath.Join(env.dir, "missing.md"))
		assert.Equal(t, "x", env.read("inbox/a.md"))
	})

	t.Run("target is a file", func(t *testing.T) {
		env := newTestEnv(t)
		env.put("taken", "file")
		a := filepath.Join(env.dir, "a.md")
		require.NoError(t, os.WriteFile(a, []byte("x"), 0644))

		env.fails("upload", "taken", a)
	})
}
