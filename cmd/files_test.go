package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMkdir(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("mkdir", "notes", "archive")
	env.contains(out, "Created notes/archive/")
	assert.DirExists(t, env.root("notes/archive"))

	// Existing folders are fine.
	env.run("mkdir", "notes", "archive")

	env.run("mkdir", "/", "inbox")
	assert.DirExists(t, env.root("inbox"))

	env.fails("mkdir", "notes", "a/b")
	env.fails("mkdir", "notes", "..")
	env.contains(env.fails("mkdir", "../..", "x"), "not found")
}

func TestRm(t *testing.T) {
	env := newTestEnv(t)
	env.put("notes/a.md", "a")
	env.put("empty/.keep", "")

	env.contains(env.fails("rm", "notes", "-d"), "directory not empty")
	env.contains(env.fails("rm", "notes"), "is a directory")
	env.contains(env.fails("rm", "notes/a.md", "-d"), "not a directory")

	out := env.run("rm", "notes/a.md")
	env.contains(out, "Deleted notes/a.md")
	assert.NoFileExists(t, env.root("notes/a.md"))

	env.run("rm", "notes", "-d")
	assert.NoDirExists(t, env.root("notes"))

	env.contains(env.fails("rm", "notes/a.md"), "not found")
	env.fails("rm", "/", "-d")
}

func TestMv(t *testing.T) {
	env := newTestEnv(t)
	env.put("notes/plan.md", sampleDoc)
	env.put("notes/taken.md", "taken")

	env.contains(env.fails("mv", "notes/plan.md", "taken.md"), "already exists")
	env.fails("mv", "notes/plan.md", "../out.md")

	out := env.run("mv", "notes/plan.md", "plan-v1.md")
	env.contains(out, "Renamed notes/plan.md -> notes/plan-v1.md")
	assert.NoFileExists(t, env.root("notes/plan.md"))
	assert.Equal(t, sampleDoc, env.read("notes/plan-v1.md"))

	env.run("mv", "notes", "archive")
	assert.DirExists(t, env.root("archive"))
}

func TestDiff(t *testing.T) {
	env := newTestEnv(t)
	env.put("a.md", "one\ntwo\nthree\n")
	env.put("b.md", "one\n2\nthree\n")

	out := env.stdout("diff", "a.md", "b.md", "--raw")
	assert.Equal(t, "--- a.md\n+++ b.md\n  one\n- two\n+ 2\n  three\n", out)

	out = env.stdout("diff", "a.md", "a.md", "-o", "json")
	env.contains(out, `"changed":false`)

	env.contains(env.fails("diff", "a.md", "missing.md"), "not found")
}
