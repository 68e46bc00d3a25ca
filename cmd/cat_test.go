package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCat(t *testing.T) {
	env := newTestEnv(t)
	env.put("notes/plan.md", sampleDoc)

	t.Run("piped output is the file as stored", func(t *testing.T) {
		assert.Equal(t, sampleDoc, env.stdout("cat", "notes/plan.md"))
		assert.Equal(t, sampleDoc, env.stdout("cat", "notes/plan.md", "--raw"))
	})

	t.Run("body strips front matter", func(t *testing.T) {
		out := env.stdout("cat", "notes/plan.md", "--body")
		assert.Equal(t, "# Deploy\n\nRoll out the #web tier first, then check [[Runbook]].\nSecond line.\nThird line.\n", out)
	})

	t.Run("meta", func(t *testing.T) {
		out := env.stdout("cat", "notes/plan.md", "--meta")
		env.contains(out, "author: sam\n")
		env.contains(out, "id: OPS-12\n")
		env.contains(out, "title: Deploy Plan\n")
		env.contains(out, "#tags: ops, release, web, Runbook\n")
	})

	t.Run("html", func(t *testing.T) {
		out := env.stdout("cat", "notes/plan.md", "--html")
		env.contains(out, "<h1")
		env.contains(out, "Deploy</h1>")
		env.contains(out, "<p>Roll out")
	})

	t.Run("line range with numbers", func(t *testing.T) {
		out := env.stdout("cat", "notes/plan.md", "--body", "-n", "-l", "4:5")
		assert.Equal(t, "     4\tSecond line.\n     5\tThird line.\n", out)
	})

	t.Run("JSON", func(t *testing.T) {
		out := env.stdout("cat", "notes/plan.md", "-o", "json")
		var got struct {
			Path     string            `json:"path"`
			Content  string            `json:"content"`
			Metadata map[string]string `json:"metadata"`
			Tags     []string          `json:"tags"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got), out)
		assert.Equal(t, "notes/plan.md", got.Path)
		assert.Equal(t, "Deploy Plan", got.Metadata["title"])
		assert.Contains(t, got.Content, "Second line.")
		assert.NotContains(t, got.Content, "title:")
		assert.Equal(t, []string{"ops", "release", "web", "Runbook"}, got.Tags)
	})
}

func TestCat_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.put("notes/plan.md", sampleDoc)

	env.contains(env.fails("cat", "notes/missing.md"), "not found")
	env.contains(env.fails("cat", "../../etc/passwd"), "not found")
	env.contains(env.fails("cat", "notes"), "is a directory")
	env.contains(env.fails("cat", "notes/plan.md", "-l", "5:2"), "greater than")
	env.fails("cat", "notes/plan.md", "--raw", "--meta")
}
