// Testing strategy:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> extension -> file service -> disk.
//
// Each test builds (once) and runs the real mdfiles binary in a temporary
// working directory. HOME points into the test's temp dir so the global
// config and the audit log never touch the developer's own files, and the
// root-selecting environment variables are cleared so the root is always
// ./Data inside the working directory unless a test says otherwise.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the mdfiles binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "mdfiles-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "mdfiles"
		if os.PathSeparator == '\\' {
			binaryName = "mdfiles.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // working directory
	home   string // HOME for the child process
	binary string
	env    []string // extra environment entries
}

// newTestEnv creates a working directory and an isolated HOME with an
// author configured, so commands that change files can run.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmp := t.TempDir()
	env := &testEnv{
		t:      t,
		dir:    filepath.Join(tmp, "work"),
		home:   filepath.Join(tmp, "home"),
		binary: buildBinary(t),
	}
	require.NoError(t, os.MkdirAll(env.dir, 0755))
	require.NoError(t, os.MkdirAll(env.home, 0755))

	env.run("config", "author.name", "tester")
	return env
}

// root returns the absolute path of rel under the default root.
func (e *testEnv) root(rel string) string {
	return filepath.Join(e.dir, "Data", filepath.FromSlash(rel))
}

// put writes a file under the default root directly, bypassing mdfiles.
func (e *testEnv) put(rel, content string) {
	e.t.Helper()
	p := e.root(rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
}

// read returns the content of a file under the default root.
func (e *testEnv) read(rel string) string {
	e.t.Helper()
	b, err := os.ReadFile(e.root(rel))
	require.NoError(e.t, err)
	return string(b)
}

func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"MDFILES_ROOT=",
		"FILE_MANAGER_DATA_PATH=",
	)
	cmd.Env = append(cmd.Env, e.env...)
	return cmd
}

// run executes mdfiles with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("mdfiles %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes mdfiles and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// runStdin executes mdfiles with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	cmd := e.command(args...)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("mdfiles %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// stdout executes mdfiles and returns stdout only, for exact comparisons
// that stderr diagnostics must not disturb.
func (e *testEnv) stdout(args ...string) string {
	e.t.Helper()
	out, err := e.command(args...).Output()
	if err != nil {
		e.t.Fatalf("mdfiles %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// fails runs a command that must fail and returns its output.
func (e *testEnv) fails(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	require.Error(e.t, err, "mdfiles %v succeeded unexpectedly: %s", args, out)
	return out
}

// sampleDoc is a markdown document with front matter, hashtags and a wiki
// link, used by several tests.
const sampleDoc = `---
title: Deploy Plan
id: OPS-12
author: sam
tags: [ops, release]
---
# Deploy

Roll out the #web tier first, then check [[Runbook]].
Second line.
Third line.
`
