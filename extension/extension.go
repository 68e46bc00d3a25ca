// Package extension is how features plug into mdfiles. Each extension
// (core, files, search) registers itself from init() and contributes cobra
// commands and, optionally, MCP tools; cmd and internal/mcp pick them up
// from the registry without importing the extensions directly. Importing
// extension/all links every built-in extension into the binary.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for mdfiles extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared file service before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Rootless extensions name commands that must run without opening the
// root. Opening creates the directory if it is missing, so commands such
// as config, guide and version that never read files opt out; otherwise
// "mdfiles version" in the wrong directory would leave a stray ./Data
// behind.
type Rootless interface {
	NoRootCommands() []string
}
