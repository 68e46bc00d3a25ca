// ls.go implements the "mdfiles ls" command for listing a directory.
//
// Separated from files.go to isolate listing and formatting logic.
//
// Design: Ls mimics Unix ls. Directories come first and carry a trailing
// slash; -l adds size, modification time and the front-matter title of
// markdown files. Entries that could not be read are reported on stderr
// so the listing itself stays pipeable.

package files

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/jpl-au/mdfiles/internal/ls"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory",
		Long:  `List the entries of a directory, the root by default.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format with size, time and title")
	return c
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	ctx := c.Context()
	p := ""
	if len(args) > 0 {
		p = args[0]
	}
	var opts ls.Options
	opts.Long, _ = c.Flags().GetBool(extension.FlagLong)

	w, errw := cmd.Out(), io.Writer(os.Stderr)
	if cmd.JSON() {
		w, errw = io.Discard, io.Discard
	}

	result, err := ls.Run(ctx, w, errw, e.svc, p, opts)

	log.Event("files:ls", "list").
		Author(cmd.Author()).
		Path(p).
		Detail("count", result.Count()).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls %q: %w", p, err))
	}
	return cmd.PrintJSON(result.Listing)
}
