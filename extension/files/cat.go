// cat.go implements the "mdfiles cat" command for reading files.
//
// Separated from files.go to isolate output mode selection, line ranges
// and terminal rendering with glamour.
//
// Design: With no mode flag, terminal output gets the body rendered by
// glamour and pipe/redirect gets the file as stored. The explicit modes
// (--raw, --body, --html, --meta) always print plain text so scripts get
// the same bytes whether or not a terminal is attached.

package files

import (
	"fmt"
	"io"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/cat"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat <path>",
		Short: "Read a file",
		Long:  `Output the contents of a file to stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE:  e.runCat,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Output the file as stored")
	c.Flags().Bool(extension.FlagBody, false, "Output the text without front matter")
	c.Flags().Bool(extension.FlagHTML, false, "Output rendered HTML")
	c.Flags().Bool(extension.FlagMeta, false, "Output front-matter metadata and tags")
	c.Flags().BoolP(extension.FlagNumber, "n", false, "Number all output lines")
	c.Flags().StringP(extension.FlagLines, "l", "", "Line range (e.g., 10:20, 5:, :15)")
	c.MarkFlagsMutuallyExclusive(extension.FlagRaw, extension.FlagBody, extension.FlagHTML, extension.FlagMeta)
	return c
}

// catMode returns the mode selected by flags and whether one was given.
func catMode(c *cobra.Command) (cat.Mode, bool) {
	for _, m := range []struct {
		flag string
		mode cat.Mode
	}{
		{extension.FlagRaw, cat.ModeRaw},
		{extension.FlagBody, cat.ModeBody},
		{extension.FlagHTML, cat.ModeHTML},
		{extension.FlagMeta, cat.ModeMeta},
	} {
		if set, _ := c.Flags().GetBool(m.flag); set {
			return m.mode, true
		}
	}
	return cat.ModeRaw, false
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	ctx := c.Context()
	lineNums, _ := c.Flags().GetBool(extension.FlagNumber)
	lineRange, _ := c.Flags().GetString(extension.FlagLines)
	mode, explicit := catMode(c)

	opts := cat.Options{
		Mode:        mode,
		LineNumbers: lineNums,
	}
	if lineRange != "" {
		start, end, err := cat.ParseLineRange(lineRange)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		opts.StartLine = start
		opts.EndLine = end
	}

	p := args[0]
	var result cat.Result
	var err error

	defer func() {
		log.Event("files:cat", "read").Author(cmd.Author()).Path(p).Write(err)
	}()

	if cmd.JSON() {
		result, err = cat.Run(ctx, io.Discard, e.svc, p, opts)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("cat %q: %w", p, err))
		}
		if mode == cat.ModeHTML {
			return cmd.PrintJSON(map[string]any{"path": result.Document.Path, "html": result.HTML})
		}
		return cmd.PrintJSON(result.Document)
	}

	if !explicit && !lineNums && lineRange == "" && cmd.Interactive() {
		result, err = cat.Run(ctx, io.Discard, e.svc, p, opts)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("cat %q: %w", p, err))
		}
		cmd.PrintMarkdown(result.Document.Body)
		return nil
	}

	result, err = cat.Run(ctx, cmd.Out(), e.svc, p, opts)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("cat %q: %w", p, err))
	}
	return nil
}
