// mcp.go implements the "mdfiles mcp" command.
//
// Separated from serve.go because the two servers share nothing but the
// file service: serve speaks HTTP to browsers, mcp speaks the Model
// Context Protocol over stdio to an LLM client that launched it.

package core

import (
	"github.com/jpl-au/mdfiles/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --root to choose the directory:
  mdfiles mcp --root ~/notes`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(e.ctx)
		},
	}
}
