package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "mdfiles Guide")
		env.contains(out, "Quick Start")
		env.contains(out, "Commands")
	})

	t.Run("does not create the root", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("guide")
		assert.NoDirExists(t, env.root(""))
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.fails("guide", "nonexistent")
		env.contains(out, "Available:")
		env.contains(out, "markdown")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		topic   string
		contain string
	}{
		{"write", "mdfiles write"},
		{"cat", "mdfiles cat"},
		{"find", "mdfiles find"},
		{"markdown", "Front matter"},
		{"config", "mdfiles config"},
	}

	env := newTestEnv(t)
	for _, tc := range tests {
		t.Run(tc.topic, func(t *testing.T) {
			env.contains(env.run("guide", tc.topic), tc.contain)
		})
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")

	out = env.stdout("version", "-o", "json")
	env.contains(out, `"build_tag"`)

	out = env.stdout("version", "--short")
	assert.NotContains(t, out, "Build Tag:")
	assert.NotEmpty(t, strings.TrimSpace(out))
}
