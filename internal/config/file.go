// file.go reads and writes the YAML config files.
//
// Separated from config.go so the settings themselves stay free of file
// handling. Design: reads layer the local file over the global one, as git
// does, so a project can pin its own root while the author name comes from
// the user's global file. Writes always go to exactly one level: the one
// Load would call the config's Scope, or the one SaveScope names.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scope is a configuration level.
type Scope int

const (
	// ScopeGlobal is ~/.mdfiles/config.yaml, the default.
	ScopeGlobal Scope = iota
	// ScopeLocal is .mdfiles/config.yaml in the working directory.
	ScopeLocal
)

// LocalPath returns the path of the local config file.
func LocalPath() string {
	return filepath.Join(".mdfiles", "config.yaml")
}

// GlobalPath returns the path of the user's config file, or "" when the
// home directory is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mdfiles", "config.yaml")
}

// HasLocal reports whether a local config file exists.
func HasLocal() bool {
	_, err := os.Stat(LocalPath())
	return err == nil
}

// Load returns the effective configuration: the global file with the local
// one, when present, layered on top. Its Scope is local if a local file
// exists.
func Load() (*Config, error) {
	cfg, err := LoadScope(ScopeGlobal)
	if err != nil {
		return nil, err
	}
	if !HasLocal() {
		return cfg, nil
	}
	local, err := LoadScope(ScopeLocal)
	if err != nil {
		return nil, err
	}
	cfg.overlay(local)
	cfg.path, cfg.scope = local.path, ScopeLocal
	return cfg, nil
}

// LoadScope reads a single level. A missing file is an empty config.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	cfg := &Config{path: path, scope: scope}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// overlay copies every value set in o over c.
func (c *Config) overlay(o *Config) {
	setString(&c.Root, o.Root)
	setString(&c.Server.Addr, o.Server.Addr)
	setString(&c.Author.Name, o.Author.Name)
	setString(&c.Author.Email, o.Author.Email)
	setPtr(&c.Limits.MaxPath, o.Limits.MaxPath)
	setPtr(&c.Limits.MaxContent, o.Limits.MaxContent)
	setPtr(&c.Limits.MaxUpload, o.Limits.MaxUpload)
	setPtr(&c.Markdown.UnsafeHTML, o.Markdown.UnsafeHTML)
	setPtr(&c.Markdown.HardWraps, o.Markdown.HardWraps)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setPtr[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

// Scope returns the level this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.writeFile(c.path)
}

// SaveScope writes the configuration to the given level.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.writeFile(path)
}

func (c *Config) writeFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
