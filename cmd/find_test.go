package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearch(env *testEnv) {
	env.put("ops/deploy.md", sampleDoc)
	env.put("ops/archive/old.md", "---\ntitle: Old rollout\n---\nretired")
	env.put("notes/web.md", "Notes about the #frontend and deploy steps.")
	env.put("readme.txt", "deploy is mentioned in a text file")
}

func TestFind(t *testing.T) {
	env := newTestEnv(t)
	seedSearch(env)

	t.Run("match kinds", func(t *testing.T) {
		out := env.stdout("find", "deploy")
		env.contains(out, "ops/deploy.md  [Title]  Deploy Plan")
		env.contains(out, "notes/web.md  [Content]  web")
		env.contains(out, "    Notes about the #frontend and deploy steps.")
		assert.NotContains(t, out, "readme.txt")
	})

	t.Run("by id", func(t *testing.T) {
		env.contains(env.stdout("find", "ops-12"), "ops/deploy.md  [ID]")
	})

	t.Run("by tag", func(t *testing.T) {
		env.contains(env.stdout("find", "runbook"), "ops/deploy.md  [Tag]")
	})

	t.Run("scoped and non-recursive", func(t *testing.T) {
		out := env.stdout("find", "roll", "-p", "ops", "-l")
		assert.Equal(t, "ops/archive/old.md\nops/deploy.md\n", out)

		out = env.stdout("find", "roll", "-p", "ops", "--no-recursive", "-l")
		assert.Equal(t, "ops/deploy.md\n", out)
	})

	t.Run("pattern and limit", func(t *testing.T) {
		out := env.stdout("find", "deploy", "--pattern", "notes/**", "-l")
		assert.Equal(t, "notes/web.md\n", out)

		out = env.stdout("find", "deploy", "--limit", "1", "-l")
		assert.Equal(t, 1, countLines(out))
	})

	t.Run("JSON", func(t *testing.T) {
		out := env.stdout("find", "ops-12", "-o", "json")
		var got struct {
			Results []struct {
				Path  string `json:"filePath"`
				Kind  string `json:"matchType"`
				Title string `json:"title"`
				ID    string `json:"id"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got), out)
		require.Len(t, got.Results, 1)
		assert.Equal(t, "ops/deploy.md", got.Results[0].Path)
		assert.Equal(t, "ID", got.Results[0].Kind)
		assert.Equal(t, "OPS-12", got.Results[0].ID)
	})

	t.Run("no matches", func(t *testing.T) {
		env.equals(env.stdout("find", "zzzz"), "")
	})

	t.Run("bad base", func(t *testing.T) {
		env.contains(env.fails("find", "x", "-p", "../.."), "not found")
	})
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}
