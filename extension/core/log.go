// log.go implements the "mdfiles log" command for reading the audit log.
//
// Every change made through the CLI, the web server or the MCP server is
// recorded. Entries are scoped to the root being served unless --all is
// given, so one audit database can hold the history of many roots.

package core

import (
	"fmt"
	"time"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/duration"
	"github.com/jpl-au/mdfiles/internal/format"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent audit log entries",
		Long: `Show who changed what, oldest first.

  mdfiles log              # last 20 entries for this root
  mdfiles log -l 100       # last 100
  mdfiles log --all        # every root
  mdfiles log --since 7d   # only the last week`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().Bool(extension.FlagAll, false, "Include entries for every root")
	c.Flags().IntP(extension.FlagLimit, "l", 20, "Maximum entries to show")
	c.Flags().String(extension.FlagSince, "", "Only entries newer than this window (7d, 2w, 12h)")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	all, _ := c.Flags().GetBool(extension.FlagAll)
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	since, _ := c.Flags().GetString(extension.FlagSince)

	f := log.Filter{Limit: limit, All: all}
	if since != "" {
		t, err := duration.Since(time.Now(), since)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("log: %w", err))
		}
		f.Since = t
	}

	records, err := log.Recent(f)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("log: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(records)
	}
	return format.Log(cmd.Out(), records)
}
