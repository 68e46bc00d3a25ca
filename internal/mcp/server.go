// Package mcp implements the Model Context Protocol server, exposing mdfiles
// operations to LLMs. This enables AI assistants to browse, read, write and
// search the document tree through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients.
//
// Design: the file service is created by the caller so the server always
// serves the same root the CLI would; tools contributed by extensions are
// registered alongside the built-in ones and receive extCtx.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx)

	slog.Info("mdfiles MCP server ready",
		"version", Version,
		"transport", "stdio",
		"root", extCtx.Service().Root(),
	)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with every resource and tool registered.
func NewServer(extCtx extension.Context) *server.MCPServer {
	h := &handlers{svc: extCtx.Service()}

	s := server.NewMCPServer(
		"mdfiles",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	registerExtensionTools(s, extCtx)
	return s
}

// handlers provides MCP request handlers with access to the file service.
type handlers struct {
	svc service.Service
}

// registerResources adds URI-based resource access for direct file reading.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			resourcePrefix+"{path}",
			"File",
			mcp.WithTemplateDescription("Read a file's raw content by path relative to the root"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readFile,
	)
}

// registerTools exposes the file service as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("files_list",
			mcp.WithDescription("List a directory: folders first, markdown files include title, id, author and tags"),
			mcp.WithString("path", mcp.Description("Directory relative to the root (default: root)")),
		),
		h.listFiles,
	)

	s.AddTool(
		mcp.NewTool("files_read",
			mcp.WithDescription("Read a file: front-matter metadata, body without front matter, and tags"),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path relative to the root")),
			mcp.WithBoolean("raw", mcp.Description("Return the file text exactly as stored instead")),
		),
		h.readFileTool,
	)

	s.AddTool(
		mcp.NewTool("files_write",
			mcp.WithDescription("Create or replace a file, creating parent folders as needed"),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path relative to the root")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Complete file content")),
			mcp.WithString("author", mcp.Description("Author attribution for the audit log")),
		),
		h.writeFile,
	)

	s.AddTool(
		mcp.NewTool("files_mkdir",
			mcp.WithDescription("Create a folder inside a directory"),
			mcp.WithString("path", mcp.Description("Parent directory relative to the root (default: root)")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Folder name (no separators)")),
			mcp.WithString("author", mcp.Description("Author attribution for the audit log")),
		),
		h.mkdir,
	)

	s.AddTool(
		mcp.NewTool("files_search",
			mcp.WithDescription("Search markdown files by id, title, tag, then content (case-insensitive substring)"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Text to look for")),
			mcp.WithString("path", mcp.Description("Directory to search (default: root)")),
			mcp.WithBoolean("recursive", mcp.Description("Descend into subfolders (default: true)")),
			mcp.WithString("pattern", mcp.Description("Glob the file path must match (supports *, **, ?)")),
			mcp.WithNumber("limit", mcp.Description("Maximum results (default: all)")),
		),
		h.searchFiles,
	)

	s.AddTool(
		mcp.NewTool("files_guide",
			mcp.WithDescription("Get help/guide content for mdfiles commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'ls', 'find', 'markdown') or empty for the main guide")),
		),
		h.getGuide,
	)
}

// registerExtensionTools adds tools contributed by extensions. Each handler
// receives the shared extension context.
func registerExtensionTools(s *server.MCPServer, extCtx extension.Context) {
	for _, t := range extension.Tools() {
		s.AddTool(t.Tool, t.Bind(extCtx))
	}
}
