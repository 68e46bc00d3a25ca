// Package files provides the files extension for browsing and changing the
// tree. Registers commands: ls, cat, write, upload, mkdir, rm, mv, diff.
//
// These commands mirror Unix filesystem utilities so the CLI feels familiar
// to both people and LLMs. Each command file is separated to isolate its
// flag handling and output formatting.

package files

import (
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the files extension.
type Extension struct {
	svc service.Service
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "files" - this extension handles file operations.
func (e *Extension) Name() string { return "files" }

// Init connects to the shared file service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns Unix-like file commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newLsCmd(),
		e.newCatCmd(),
		e.newWriteCmd(),
		e.newUploadCmd(),
		e.newMkdirCmd(),
		e.newRmCmd(),
		e.newMvCmd(),
		e.newDiffCmd(),
	}
}

// MCPTools returns files_diff. The basic file tools are built into
// internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{diffTool()}
}
