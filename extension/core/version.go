// version.go implements the version command.

package core

import (
	"fmt"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the build tag, build time, Go version, platform and git commit.

  mdfiles version           # full details
  mdfiles version --short   # build tag only, as /healthz reports it`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().Bool(extension.FlagShort, false, "Print the build tag only")
	return c
}

func runVersion(c *cobra.Command, _ []string) error {
	short, _ := c.Flags().GetBool(extension.FlagShort)
	info := version.Get()

	switch {
	case cmd.JSON():
		return cmd.PrintJSON(info)
	case short:
		fmt.Fprintln(cmd.Out(), version.Short())
	default:
		fmt.Fprint(cmd.Out(), info.String())
	}
	return nil
}
