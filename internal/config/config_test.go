package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	assert.Equal(t, DefaultRoot, c.RootDir())
	assert.Equal(t, DefaultAddr, c.Addr())
	assert.Equal(t, DefaultMaxPath, c.MaxPath())
	assert.Equal(t, int64(DefaultMaxContent), c.MaxContent())
	assert.Equal(t, int64(DefaultMaxUpload), c.MaxUpload())
	assert.False(t, c.UnsafeHTML())
	assert.False(t, c.HardWraps())
}

func TestGetSet(t *testing.T) {
	c := &Config{}

	require.NoError(t, c.Set("root", "/srv/notes"))
	require.NoError(t, c.Set("server.addr", ":9000"))
	require.NoError(t, c.Set("limits.max_upload", "2048"))
	require.NoError(t, c.Set("markdown.unsafe_html", "TRUE"))

	for key, want := range map[string]string{
		"root":                 "/srv/notes",
		"server.addr":          ":9000",
		"limits.max_upload":    "2048",
		"markdown.unsafe_html": "true",
		"markdown.hard_wraps":  "false",
	} {
		got, err := c.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}

	assert.True(t, c.IsSet("limits.max_upload"))
	assert.False(t, c.IsSet("limits.max_content"))
}

func TestSet_Invalid(t *testing.T) {
	c := &Config{}

	assert.ErrorIs(t, c.Set("nope", "x"), ErrUnknownKey)
	assert.ErrorIs(t, c.Set("root", " "), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("server.addr", "localhost"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("limits.max_content", "-1"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("limits.max_path", "100000"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("markdown.hard_wraps", "yes"), ErrInvalidValue)

	_, err := c.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestAll_CoversEveryKey(t *testing.T) {
	all := (&Config{}).All()
	for _, k := range ValidKeys() {
		assert.Contains(t, all, k)
		assert.True(t, IsValidKey(k))
	}
	assert.False(t, IsValidKey("sync.files"))
}

func TestLoadSave_Local(t *testing.T) {
	isolate(t)

	c, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	require.NoError(t, c.Set("root", "notes"))
	require.NoError(t, c.SaveScope(ScopeLocal))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, loaded.Scope())
	assert.Equal(t, "notes", loaded.RootDir())
}

func TestLoad_LocalOverGlobal(t *testing.T) {
	isolate(t)

	global, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, global.Set("root", "/srv/notes"))
	require.NoError(t, global.Set("author.name", "alice"))
	require.NoError(t, global.Set("limits.max_upload", "2048"))
	require.NoError(t, global.Save())

	local, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	require.NoError(t, local.Set("root", "docs"))
	require.NoError(t, local.Set("markdown.hard_wraps", "false"))
	require.NoError(t, local.Save())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.Equal(t, "docs", cfg.RootDir())
	assert.Equal(t, "alice", cfg.Author.Name)
	assert.Equal(t, int64(2048), cfg.MaxUpload())
	assert.True(t, cfg.IsSet("markdown.hard_wraps"))

	// The local file holds only what was set locally.
	again, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	assert.False(t, again.IsSet("author.name"))
}

func TestLoad_GlobalOnly(t *testing.T) {
	isolate(t)

	global, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, global.Set("server.addr", ":9000"))
	require.NoError(t, global.Save())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.Equal(t, ":9000", cfg.Addr())
	assert.FileExists(t, GlobalPath())
}

func TestLoad_Malformed(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(".mdfiles", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".mdfiles", "config.yaml"), []byte("root: [unclosed"), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "malformed config file")
}

func TestLoad_OutOfBounds(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(".mdfiles", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".mdfiles", "config.yaml"), []byte("limits:\n  max_upload: 0\n"), 0644))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestResolveRoot(t *testing.T) {
	cfg := &Config{Root: "from-config"}

	t.Setenv(EnvRoot, "")
	t.Setenv(EnvLegacyRoot, "")
	assert.Equal(t, "from-config", ResolveRoot("", cfg))
	assert.Equal(t, DefaultRoot, ResolveRoot("", &Config{}))
	assert.Equal(t, DefaultRoot, ResolveRoot("", nil))

	t.Setenv(EnvLegacyRoot, "legacy")
	assert.Equal(t, "legacy", ResolveRoot("", cfg))

	t.Setenv(EnvRoot, "modern")
	assert.Equal(t, "modern", ResolveRoot("", cfg))

	assert.Equal(t, "flag", ResolveRoot("flag", cfg))
}

// isolate points HOME and the working directory at fresh temp dirs so no
// real config file leaks into a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}
