// diff.go implements the "mdfiles diff" command and the files_diff MCP tool.
//
// Separated from files.go because it is the one operation exposed both on
// the command line and over MCP from this extension.
//
// Design: Output is a line diff with a few lines of context, coloured on
// the command line unless --raw is given. The MCP tool always returns the
// plain form since colour codes mean nothing to an LLM.

package files

import (
	"context"
	"fmt"
	"io"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/diff"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newDiffCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Show differences between two files",
		Long: `Show line differences between two files under the root.

  mdfiles diff notes/plan.md notes/plan-v1.md
  mdfiles diff a.md b.md --raw     # no colour`,
		Args: cobra.ExactArgs(2),
		RunE: e.runDiff,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Output without colour")
	return c
}

func (e *Extension) runDiff(c *cobra.Command, args []string) error {
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	a, b := args[0], args[1]

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	r, err := diff.Run(c.Context(), w, e.svc, a, b, !raw)

	log.Event("files:diff", "diff").Author(cmd.Author()).Path(a).Detail("other", b).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("diff %q %q: %w", a, b, err))
	}
	return cmd.PrintJSON(map[string]any{
		"old":     r.Old,
		"new":     r.New,
		"diff":    r.Format(false),
		"changed": r.Changed(),
		"added":   r.Added,
		"removed": r.Removed,
	})
}

func diffTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("files_diff",
			mcp.WithDescription("Show line differences between two files under the root"),
			mcp.WithString("a", mcp.Required(), mcp.Description("First file path, relative to the root")),
			mcp.WithString("b", mcp.Required(), mcp.Description("Second file path, relative to the root")),
		),
		Handler: handleDiff,
	}
}

func handleDiff(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireString("a")
	if err != nil {
		return mcp.NewToolResultError("a is required"), nil //nolint:nilerr
	}
	b, err := req.RequireString("b")
	if err != nil {
		return mcp.NewToolResultError("b is required"), nil //nolint:nilerr
	}

	r, err := extCtx.Service().Diff(ctx, a, b)
	log.Event("mcp:files_diff", "diff").Author("mcp").Path(a).Detail("other", b).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !r.Changed() {
		return mcp.NewToolResultText("no differences"), nil
	}
	return mcp.NewToolResultText(r.Format(false)), nil
}
