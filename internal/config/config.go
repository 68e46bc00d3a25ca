// Package config holds mdfiles settings: which root to serve, where the web
// server listens, who to name in the audit log, size limits and rendering
// switches.
//
// Settings live in YAML at two levels, ~/.mdfiles/config.yaml for the user
// and .mdfiles/config.yaml for the current directory. Unset values fall
// back to the Default constants, so an empty file (or none) is a working
// configuration. Optional scalars are pointers so "unset" and "set to the
// zero value" stay distinguishable when levels are layered.
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is out of range or
	// has the wrong type.
	ErrInvalidValue = errors.New("invalid config value")
)

// Defaults applied when not configured.
const (
	DefaultRoot       = "Data"
	DefaultAddr       = "127.0.0.1:8080"
	DefaultMaxPath    = 4096
	DefaultMaxContent = 10 << 20  // 10 MB
	DefaultMaxUpload  = 100 << 20 // 100 MB
)

// Bounds enforced on limits, whether set by command or edited by hand.
const (
	MaxMaxPath    = 64 << 10
	MaxMaxContent = 10 << 30
	MaxMaxUpload  = 10 << 30
)

// Config is one level of configuration, or several layered by Load.
type Config struct {
	Root     string   `yaml:"root,omitempty"`
	Server   Server   `yaml:"server,omitempty"`
	Author   Author   `yaml:"author,omitempty"`
	Limits   Limits   `yaml:"limits,omitempty"`
	Markdown Markdown `yaml:"markdown,omitempty"`

	path  string // file Save writes to
	scope Scope
}

// Server holds web server options.
type Server struct {
	Addr string `yaml:"addr,omitempty"`
}

// Author is who the CLI records in the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Limits caps path length, written content and uploads, in bytes.
type Limits struct {
	MaxPath    *int   `yaml:"max_path,omitempty"`
	MaxContent *int64 `yaml:"max_content,omitempty"`
	MaxUpload  *int64 `yaml:"max_upload,omitempty"`
}

// Markdown holds rendering switches.
type Markdown struct {
	UnsafeHTML *bool `yaml:"unsafe_html,omitempty"`
	HardWraps  *bool `yaml:"hard_wraps,omitempty"`
}

// Validate checks the limits that are set against their bounds.
func (c *Config) Validate() error {
	if err := checkRange("max_path", c.Limits.MaxPath, MaxMaxPath); err != nil {
		return err
	}
	if err := checkRange("max_content", c.Limits.MaxContent, MaxMaxContent); err != nil {
		return err
	}
	return checkRange("max_upload", c.Limits.MaxUpload, MaxMaxUpload)
}

func checkRange[T int | int64](name string, v *T, upper T) error {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > upper {
		return fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalidValue, name, upper, *v)
	}
	return nil
}

// RootDir returns the configured root, or DefaultRoot. The --root flag and
// environment take precedence; see ResolveRoot.
func (c *Config) RootDir() string { return orDefault(c.Root, DefaultRoot) }

// Addr returns the web server listen address.
func (c *Config) Addr() string { return orDefault(c.Server.Addr, DefaultAddr) }

// MaxPath returns the longest relative path accepted, in bytes.
func (c *Config) MaxPath() int { return deref(c.Limits.MaxPath, DefaultMaxPath) }

// MaxContent returns the largest document write accepted, in bytes.
func (c *Config) MaxContent() int64 { return deref(c.Limits.MaxContent, DefaultMaxContent) }

// MaxUpload returns the largest single uploaded file accepted, in bytes.
func (c *Config) MaxUpload() int64 { return deref(c.Limits.MaxUpload, DefaultMaxUpload) }

// UnsafeHTML reports whether raw HTML in documents is passed through when
// rendering. Off unless set.
func (c *Config) UnsafeHTML() bool { return deref(c.Markdown.UnsafeHTML, false) }

// HardWraps reports whether single newlines render as line breaks. Off
// unless set.
func (c *Config) HardWraps() bool { return deref(c.Markdown.HardWraps, false) }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
