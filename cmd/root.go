/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the mdfiles root command and the process entry point.
//
// Separated from init_extensions.go so cobra wiring and process lifecycle
// (audit log open/close, exit code) live apart from building the file
// service.
//
// Design: the root directory is opened lazily in prepare. Commands listed
// as rootless (config, guide, version) run anywhere without creating a root
// as a side effect; everything else resolves, creates and canonicalises it
// before RunE.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

// errNoAuthor explains how to set an author when a mutating command has
// none.
var errNoAuthor = errors.New(`author not configured (checked --author, .mdfiles/config.yaml, ~/.mdfiles/config.yaml and the OS user)

Run: mdfiles config author.name "Your Name"

See 'mdfiles guide config' for local vs global options.`)

var rootCmd = &cobra.Command{
	Use:   "mdfiles",
	Short: "Browse, search and serve a directory of markdown files",
	Long: `A file browser confined to one root directory, with markdown front matter,
tags, full-text search and rendering. Use it from the shell, over HTTP
(mdfiles serve) or from an LLM (mdfiles mcp).`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: prepare,
}

// prepare validates the global flags, settles the author and opens the
// root for commands that need it.
func prepare(c *cobra.Command, _ []string) error {
	if globals.output != "" && !slices.Contains(validOutputFormats, globals.output) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", globals.output, validOutputFormats)
	}

	if globals.author == "" {
		globals.author = detectAuthor()
	}

	name := topLevelCmdName(c)
	if authorRequiredCommands[name] && globals.author == "" {
		return errNoAuthor
	}
	if noRootCommands[name] {
		return nil
	}

	if err := initExtensions(); err != nil {
		if JSON() {
			_ = PrintJSON(map[string]string{"error": err.Error()})
			c.SilenceErrors = true
			c.SilenceUsage = true
		}
		return fmt.Errorf("open root: %w", err)
	}
	return nil
}

// topLevelCmdName returns the direct child of root that c belongs to; for
// "mdfiles config server.addr" that is "config".
func topLevelCmdName(c *cobra.Command) string {
	for c.HasParent() && c.Parent().HasParent() {
		c = c.Parent()
	}
	return c.Name()
}

// Execute runs the CLI and exits 1 on failure. The audit log is opened
// first; if that fails the command still runs, unlogged.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	registerExtensions()
	err := rootCmd.Execute()

	// os.Exit skips deferred calls.
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}
