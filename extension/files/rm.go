// rm.go implements the "mdfiles rm" command for deleting files.
//
// Separated from files.go to isolate deletion rules.
//
// Design: Deletion is permanent, so rm only removes what the caller says
// it is removing: a file by default, an empty folder with -d. Folders are
// never removed recursively.

package files

import (
	"fmt"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newRmCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file or empty folder",
		Long:  `Permanently delete a file, or an empty folder with -d.`,
		Args:  cobra.ExactArgs(1),
		RunE:  e.runRm,
	}
	c.Flags().BoolP(extension.FlagDir, "d", false, "Delete an empty folder")
	return c
}

func (e *Extension) runRm(c *cobra.Command, args []string) error {
	p := args[0]
	isDir, _ := c.Flags().GetBool(extension.FlagDir)

	err := e.svc.Delete(c.Context(), p, isDir)
	log.Event("files:rm", "delete").Author(cmd.Author()).Path(p).Detail("directory", isDir).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("rm %q: %w", p, err))
	}

	if !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Deleted %s\n", p)
	}
	return cmd.PrintJSON(map[string]string{"path": p})
}
