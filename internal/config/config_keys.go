// config_keys.go maps the dotted names used by "mdfiles config" (for
// example "limits.max_upload") onto Config fields.
//
// Separated from config.go so the YAML structure is not tangled with string
// parsing. Design: one table row per key carries its getter, setter and
// set-check, so adding a setting is one row and the key list can never
// drift from what Get and Set understand.

package config

import (
	"fmt"
	"strconv"
	"strings"
)

type key struct {
	name  string
	get   func(*Config) string
	set   func(*Config, string) error
	isSet func(*Config) bool
}

var keys = []key{
	{
		name: "root",
		get:  (*Config).RootDir,
		set: func(c *Config, v string) error {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%w: root must not be empty", ErrInvalidValue)
			}
			c.Root = v
			return nil
		},
		isSet: func(c *Config) bool { return c.Root != "" },
	},
	{
		name: "server.addr",
		get:  (*Config).Addr,
		set: func(c *Config, v string) error {
			if !strings.Contains(v, ":") {
				return fmt.Errorf("%w: server.addr must be host:port", ErrInvalidValue)
			}
			c.Server.Addr = v
			return nil
		},
		isSet: func(c *Config) bool { return c.Server.Addr != "" },
	},
	{
		name:  "author.name",
		get:   func(c *Config) string { return c.Author.Name },
		set:   func(c *Config, v string) error { c.Author.Name = v; return nil },
		isSet: func(c *Config) bool { return c.Author.Name != "" },
	},
	{
		name:  "author.email",
		get:   func(c *Config) string { return c.Author.Email },
		set:   func(c *Config, v string) error { c.Author.Email = v; return nil },
		isSet: func(c *Config) bool { return c.Author.Email != "" },
	},
	{
		name: "limits.max_path",
		get:  func(c *Config) string { return strconv.Itoa(c.MaxPath()) },
		set: func(c *Config, v string) error {
			n, err := parsePositive("limits.max_path", v)
			if err != nil {
				return err
			}
			m := int(n)
			c.Limits.MaxPath = &m
			return nil
		},
		isSet: func(c *Config) bool { return c.Limits.MaxPath != nil },
	},
	{
		name:  "limits.max_content",
		get:   func(c *Config) string { return strconv.FormatInt(c.MaxContent(), 10) },
		set:   func(c *Config, v string) error { return setInt64(&c.Limits.MaxContent, "limits.max_content", v) },
		isSet: func(c *Config) bool { return c.Limits.MaxContent != nil },
	},
	{
		name:  "limits.max_upload",
		get:   func(c *Config) string { return strconv.FormatInt(c.MaxUpload(), 10) },
		set:   func(c *Config, v string) error { return setInt64(&c.Limits.MaxUpload, "limits.max_upload", v) },
		isSet: func(c *Config) bool { return c.Limits.MaxUpload != nil },
	},
	{
		name:  "markdown.unsafe_html",
		get:   func(c *Config) string { return strconv.FormatBool(c.UnsafeHTML()) },
		set:   func(c *Config, v string) error { return setBool(&c.Markdown.UnsafeHTML, "markdown.unsafe_html", v) },
		isSet: func(c *Config) bool { return c.Markdown.UnsafeHTML != nil },
	},
	{
		name:  "markdown.hard_wraps",
		get:   func(c *Config) string { return strconv.FormatBool(c.HardWraps()) },
		set:   func(c *Config, v string) error { return setBool(&c.Markdown.HardWraps, "markdown.hard_wraps", v) },
		isSet: func(c *Config) bool { return c.Markdown.HardWraps != nil },
	},
}

func lookup(name string) (key, error) {
	for _, k := range keys {
		if k.name == name {
			return k, nil
		}
	}
	return key{}, fmt.Errorf("%w: %s", ErrUnknownKey, name)
}

// ValidKeys returns every settable key, in display order.
func ValidKeys() []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.name
	}
	return names
}

// IsValidKey reports whether name is a known key.
func IsValidKey(name string) bool {
	_, err := lookup(name)
	return err == nil
}

// Get returns the effective value of a key, defaults included.
func (c *Config) Get(name string) (string, error) {
	k, err := lookup(name)
	if err != nil {
		return "", err
	}
	return k.get(c), nil
}

// Set parses value into the key's field and revalidates.
func (c *Config) Set(name, value string) error {
	k, err := lookup(name)
	if err != nil {
		return err
	}
	if err := k.set(c, value); err != nil {
		return err
	}
	return c.Validate()
}

// All returns every key with its effective value.
func (c *Config) All() map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k.name] = k.get(c)
	}
	return m
}

// IsSet reports whether a key has an explicit value rather than its default.
func (c *Config) IsSet(name string) bool {
	k, err := lookup(name)
	return err == nil && k.isSet(c)
}

func parsePositive(name, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidValue, name)
	}
	return n, nil
}

func setInt64(dst **int64, name, value string) error {
	n, err := parsePositive(name, value)
	if err != nil {
		return err
	}
	*dst = &n
	return nil
}

func setBool(dst **bool, name, value string) error {
	switch strings.ToLower(value) {
	case "true":
		b := true
		*dst = &b
	case "false":
		b := false
		*dst = &b
	default:
		return fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, name)
	}
	return nil
}
