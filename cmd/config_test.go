package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		env := newTestEnv(t)

		env.equals(env.stdout("config", "server.addr"), "127.0.0.1:8080")
		env.equals(env.stdout("config", "root"), "Data")
		env.equals(env.stdout("config", "author.name"), "tester")
	})

	t.Run("set and list", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "server.addr", ":9000")
		env.contains(out, "server.addr = :9000 (global)")
		env.equals(env.stdout("config", "server.addr"), ":9000")

		out = env.stdout("config")
		env.contains(out, "server.addr: :9000\n")
		env.contains(out, "markdown.unsafe_html: false\n")
		assert.FileExists(t, filepath.Join(env.home, ".mdfiles", "config.yaml"))
	})

	t.Run("local overrides global", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "--local", "root", "docs")
		env.contains(out, "root = docs (local)")
		assert.FileExists(t, filepath.Join(env.dir, ".mdfiles", "config.yaml"))

		env.run("ls")
		assert.DirExists(t, filepath.Join(env.dir, "docs"))
		assert.NoDirExists(t, env.root(""))
	})

	t.Run("local keeps global author", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("config", "--local", "root", "docs")
		env.equals(env.stdout("config", "author.name"), "tester")
		env.equals(env.stdout("config", "root"), "docs")

		env.run("write", "a.md", "hello")
		assert.FileExists(t, filepath.Join(env.dir, "docs", "a.md"))

		b, err := os.ReadFile(filepath.Join(env.dir, ".mdfiles", "config.yaml"))
		assert.NoError(t, err)
		assert.NotContains(t, string(b), "tester")
	})

	t.Run("invalid", func(t *testing.T) {
		env := newTestEnv(t)

		env.contains(env.fails("config", "no.such.key"), "unknown config key")
		env.contains(env.fails("config", "limits.max_upload", "0"), "invalid config value")
		env.contains(env.fails("config", "markdown.hard_wraps", "maybe"), "invalid config value")
	})
}

func TestRootSelection(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		env := newTestEnv(t)
		other := filepath.Join(env.dir, "elsewhere")

		env.run("--root", other, "write", "a.md", "x")
		b, err := os.ReadFile(filepath.Join(other, "a.md"))
		assert.NoError(t, err)
		assert.Equal(t, "x", string(b))
		assert.NoDirExists(t, env.root(""))
	})

	t.Run("environment", func(t *testing.T) {
		env := newTestEnv(t)
		other := filepath.Join(env.dir, "from-env")
		env.env = []string{"MDFILES_ROOT=" + other}

		env.run("write", "a.md", "x")
		assert.FileExists(t, filepath.Join(other, "a.md"))
	})

	t.Run("legacy environment", func(t *testing.T) {
		env := newTestEnv(t)
		other := filepath.Join(env.dir, "legacy")
		env.env = []string{"FILE_MANAGER_DATA_PATH=" + other}

		env.run("write", "a.md", "x")
		assert.FileExists(t, filepath.Join(other, "a.md"))
	})

	t.Run("flag beats environment", func(t *testing.T) {
		env := newTestEnv(t)
		flagRoot := filepath.Join(env.dir, "flag")
		env.env = []string{"MDFILES_ROOT=" + filepath.Join(env.dir, "env")}

		env.run("--root", flagRoot, "write", "a.md", "x")
		assert.FileExists(t, filepath.Join(flagRoot, "a.md"))
		assert.NoDirExists(t, filepath.Join(env.dir, "env"))
	})
}

func TestOutputFlag(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.fails("ls", "-o", "yaml"), "invalid output format")

	out := env.stdout("cat", "missing.md", "-o", "json")
	env.contains(out, `"error"`)
}
