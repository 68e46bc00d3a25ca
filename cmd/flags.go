/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go holds the persistent flags every command shares and the output
// helpers built on them.
//
// Separated from root.go so extensions only ever see accessors: they read
// the author, the root override and the output mode without touching cobra
// or the variables behind them.
//
// Design: -o json switches a command to one JSON value on stdout, errors
// included, so scripts and LLMs never have to parse prose. Text output and
// JSON output are mutually exclusive; PrintJSON is a no-op in text mode so
// commands can call it unconditionally at the end.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/jpl-au/mdfiles/internal/config"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

// globals are the persistent flag values for this invocation.
var globals struct {
	output string
	author string
	root   string
}

// out is where commands write their results.
var out io.Writer = os.Stdout

// Out returns the writer commands print results to.
func Out() io.Writer { return out }

// Author returns who is recorded in the audit log for this invocation.
func Author() string { return globals.author }

// Root returns the --root flag value. Empty means "resolve from the
// environment and config"; see config.ResolveRoot.
func Root() string { return globals.root }

// JSON reports whether -o json was given.
func JSON() bool { return globals.output == "json" }

// PrintJSON writes v as a single JSON line in JSON mode and does nothing
// otherwise. HTML is not escaped: rendered documents and paths containing
// "&" come out as written.
func PrintJSON(v any) error {
	if !JSON() {
		return nil
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return nil
}

// PrintJSONError reports err as {"error": "..."} in JSON mode and returns
// nil so cobra stays quiet. In text mode err is returned for cobra to print.
func PrintJSONError(err error) error {
	if !JSON() || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// detectAuthor picks the audit author when --author is absent: the
// configured author.name, else the login name of the current user.
func detectAuthor() string {
	if cfg, err := config.Load(); err == nil && cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&globals.output, "output", "o", "", "Output format: json")
	f.StringVarP(&globals.author, "author", "a", "", "Name recorded in the audit log")
	f.StringVar(&globals.root, "root", "", "Directory to serve (default $MDFILES_ROOT, config root, or ./Data)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
