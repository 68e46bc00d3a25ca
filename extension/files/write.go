// write.go implements the "mdfiles write" command for creating/replacing files.
//
// Separated from files.go to isolate input handling (stdin, argument, file).
//
// Design: Write accepts content from multiple sources in priority order:
// 1. Direct argument (for short content)
// 2. File flag (for existing files)
// 3. Stdin (for piping)

package files

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newWriteCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "write <path> [content]",
		Short: "Write a file",
		Long:  `Create or replace a file. Content from argument, stdin, or -f flag.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  e.runWrite,
	}
	c.Flags().StringP(extension.FlagFile, "f", "", "Read content from file")
	return c
}

func (e *Extension) runWrite(c *cobra.Command, args []string) error {
	ctx := c.Context()
	p := args[0]
	var content string

	file, _ := c.Flags().GetString(extension.FlagFile)
	switch {
	case len(args) >= 2:
		content = args[1]
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("read file %q: %w", file, err))
		}
		content = string(data)
	default:
		data, err := io.ReadAll(c.InOrStdin())
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("read stdin: %w", err))
		}
		content = string(data)
	}

	res, err := e.svc.Write(ctx, p, content)

	b := log.Event("files:write", "write").Author(cmd.Author()).Path(p)
	if err == nil {
		b.Resolved(res.Path).Detail("bytes", res.Bytes).Detail("created", res.Created)
	}
	b.Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("write %q: %w", p, err))
	}

	if !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Wrote %s (%d bytes)\n", res.Path, res.Bytes)
	}
	return cmd.PrintJSON(res)
}
