// mkdir.go implements the "mdfiles mkdir" command.

package files

import (
	"fmt"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path> <name>",
		Short: "Create a folder",
		Long: `Create the folder <name> inside <path>, creating <path> too if needed.
Use "" or / for the root.

  mdfiles mkdir notes archive    # creates notes/archive
  mdfiles mkdir / inbox          # creates inbox`,
		Args: cobra.ExactArgs(2),
		RunE: e.runMkdir,
	}
}

func (e *Extension) runMkdir(c *cobra.Command, args []string) error {
	dir, name := args[0], args[1]

	created, err := e.svc.Mkdir(c.Context(), dir, name)
	log.Event("files:mkdir", "mkdir").Author(cmd.Author()).Path(dir).Resolved(created).Detail("name", name).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("mkdir %q: %w", name, err))
	}

	if !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Created %s/\n", created)
	}
	return cmd.PrintJSON(map[string]string{"path": created})
}
