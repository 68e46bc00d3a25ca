// Package core provides the core extension for mdfiles.
// It registers commands: serve, mcp, config, guide, log, version.
package core

import (
	"github.com/jpl-au/mdfiles/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Rootless      = (*Extension)(nil)
)

// Name returns "core" - this extension provides the servers and housekeeping.
func (e *Extension) Name() string { return "core" }

// Init keeps the shared context; serve and mcp hand it to their servers.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newServeCmd(),
		e.newMCPCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newLogCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the core tools live in internal/mcp itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoRootCommands returns commands that never touch the document root.
// config: Must work before a root has been chosen.
// guide: Embedded documentation, works anywhere.
// version: Displays build info.
func (e *Extension) NoRootCommands() []string {
	return []string{"config", "guide", "version"}
}
