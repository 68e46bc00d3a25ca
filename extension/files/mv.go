// mv.go implements the "mdfiles mv" command for renaming.
//
// Design: mv renames in place; the second argument is a bare name, not a
// destination path. An existing entry with the new name is never replaced.

package files

import (
	"fmt"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newMvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <path> <new-name>",
		Short: "Rename a file or folder",
		Long: `Give a file or folder a new name in the same folder.

  mdfiles mv notes/plan.md plan-v1.md   # notes/plan.md -> notes/plan-v1.md`,
		Args: cobra.ExactArgs(2),
		RunE: e.runMv,
	}
}

func (e *Extension) runMv(c *cobra.Command, args []string) error {
	p, newName := args[0], args[1]

	renamed, err := e.svc.Rename(c.Context(), p, newName)
	log.Event("files:mv", "rename").Author(cmd.Author()).Path(p).Resolved(renamed).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("mv %q: %w", p, err))
	}

	if !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Renamed %s -> %s\n", p, renamed)
	}
	return cmd.PrintJSON(map[string]string{"from": p, "path": renamed})
}
