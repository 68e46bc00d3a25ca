// tools_util.go reads tool arguments and encodes tool results.
//
// Separated so every tool handler reads its arguments the same way. Design:
// a missing or mistyped optional argument falls back to its default instead
// of failing the call, since clients often omit optional arguments or send
// them loosely typed.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// arg returns the named argument when present with type T, otherwise def.
func arg[T any](req mcp.CallToolRequest, name string, def T) T {
	args, _ := req.Params.Arguments.(map[string]any)
	if v, ok := args[name].(T); ok {
		return v
	}
	return def
}

func getString(req mcp.CallToolRequest, name, def string) string {
	return arg(req, name, def)
}

func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	return arg(req, name, def)
}

// getInt truncates: JSON numbers arrive as float64.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	return int(arg(req, name, float64(def)))
}

// jsonResult wraps v, indented, in a text result. An encoding failure is
// reported as a tool error like any other.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
