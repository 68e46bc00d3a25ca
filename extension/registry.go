// registry.go holds the extensions registered by init functions.
//
// Separated from extension.go so the contract and the process-wide state
// live apart. Design: a duplicate name panics, as database/sql.Register
// does, since two packages claiming one name is a build mistake. The list
// keeps registration order so commands and MCP tools appear the same way
// on every run.

package extension

import (
	"slices"
	"sync"
)

var (
	mu         sync.RWMutex
	registered []Extension
)

// Register adds e. Call it from an init function.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	if slices.ContainsFunc(registered, func(x Extension) bool { return x.Name() == e.Name() }) {
		panic("extension already registered: " + e.Name())
	}
	registered = append(registered, e)
}

// All returns the registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Clone(registered)
}

// Tools collects MCP tools across extensions in registration order. When
// two declare the same tool name, the first wins.
func Tools() []MCPTool {
	seen := make(map[string]bool)
	var tools []MCPTool
	for _, ext := range All() {
		for _, t := range ext.MCPTools() {
			if !seen[t.Tool.Name] {
				seen[t.Tool.Name] = true
				tools = append(tools, t)
			}
		}
	}
	return tools
}
