// Package search finds documents across the tree. Registers commands: find,
// tags; and the files_tags MCP tool.
//
// Both commands walk markdown files on every call. Nothing is indexed, so
// results always reflect the files as they are on disk, at the cost of a
// full walk per query; trees of a few thousand notes search in well under a
// second.
package search

import (
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Init keeps the file service for the commands to walk.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns find and tags.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newFindCmd(), e.newTagsCmd()}
}

// MCPTools returns files_tags. files_search is built into internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{tagsTool()}
}
