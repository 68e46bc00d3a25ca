// mcp.go defines how extensions contribute MCP tools.
//
// Separated from extension.go because most extensions only add CLI
// commands; the few that also serve LLM clients (files_diff, files_tags)
// return MCPTools from MCPTools().
//
// Design: an extension's handler needs the file service, which does not
// exist until the root is opened. Handlers therefore take the extension
// Context as an argument and Bind closes over it once internal/mcp has
// built the server, giving mcp-go the plain handler signature it expects.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool is a tool definition and the handler that serves it.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler serves one tool call. extCtx gives access to the file service
// and configuration of the root being served.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Bind returns t's handler with extCtx supplied, in the form mcp-go
// registers.
func (t MCPTool) Bind(extCtx Context) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return t.Handler(ctx, extCtx, req)
	}
}
