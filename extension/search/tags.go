// tags.go implements the "mdfiles tags" command and the files_tags MCP tool.
//
// Given a file, tags lists that document's tags. Given a folder (the root
// by default) it counts every tag under it, most used first, so a reader
// can see the vocabulary of a tree at a glance.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/jpl-au/mdfiles/internal/tag"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newTagsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tags [path]",
		Short: "List tags of a file or count tags under a folder",
		Long: `List the tags of one markdown file, or count tags across a folder.

  mdfiles tags                       # every tag under the root
  mdfiles tags notes/plan.md         # tags of one document
  mdfiles tags ops --pattern '*.md'  # only files directly in ops/`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runTags,
	}
	c.Flags().String(extension.FlagPattern, "", "Glob the file path must match")
	return c
}

func (e *Extension) runTags(c *cobra.Command, args []string) error {
	p := ""
	if len(args) > 0 {
		p = args[0]
	}
	var opts tag.Options
	opts.Pattern, _ = c.Flags().GetString(extension.FlagPattern)

	w, errw := cmd.Out(), io.Writer(os.Stderr)
	if cmd.JSON() {
		w, errw = io.Discard, io.Discard
	}

	result, err := tag.Run(c.Context(), w, errw, e.svc, p, opts)

	log.Event("search:tags", "tags").Author(cmd.Author()).Path(p).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("tags %q: %w", p, err))
	}
	return cmd.PrintJSON(result)
}

func tagsTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("files_tags",
			mcp.WithDescription("Count tags across markdown files under a folder, most used first. Each tag lists the files carrying it."),
			mcp.WithString("path", mcp.Description("Folder to summarise, relative to the root (default: root)")),
			mcp.WithString("pattern", mcp.Description("Glob the file path must match, e.g. notes/**")),
		),
		Handler: handleTags,
	}
}

func handleTags(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := optString(req, "path")
	pattern := optString(req, "pattern")

	summary, err := extCtx.Service().Tags(ctx, p, pattern)

	b := log.Event("mcp:files_tags", "tags").Author("mcp").Path(p)
	if summary != nil {
		b.Detail("count", len(summary.Tags))
	}
	b.Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

// optString returns an optional string argument, or "" when absent.
func optString(req mcp.CallToolRequest, name string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return ""
}
