// tools_files.go implements MCP tools for browsing and changing files.
//
// Separated from server.go to keep tool registration apart from the
// handlers. These tools mirror the CLI commands (ls, cat, write, mkdir)
// but return structured JSON for LLM consumption rather than
// human-readable text.
//
// Design principles:
//
//  1. Errors return MCP tool error results rather than Go errors, so the
//     LLM receives feedback it can act on instead of a protocol failure.
//
//  2. Every call is written to the audit log under "mcp:{tool}". Writes
//     take an optional author so different agents can be told apart; it
//     defaults to "mcp".

package mcp

import (
	"context"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// listFiles handles files_list tool calls.
func (h *handlers) listFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := getString(req, "path", "")

	l, err := h.svc.List(ctx, p)

	b := log.Event("mcp:files_list", "list").Author("mcp").Path(p)
	if l != nil {
		b.Detail("count", len(l.Items))
	}
	b.Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(l)
}

// readFileTool handles files_read tool calls.
func (h *handlers) readFileTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	if getBool(req, "raw", false) {
		content, err := h.svc.Raw(ctx, p)
		log.Event("mcp:files_read", "read").Author("mcp").Path(p).Detail("raw", true).Write(err)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(content), nil
	}

	doc, err := h.svc.Read(ctx, p)
	log.Event("mcp:files_read", "read").Author("mcp").Path(p).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(doc)
}

// writeFile handles files_write tool calls.
func (h *handlers) writeFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil //nolint:nilerr
	}
	author := getString(req, "author", "mcp")

	res, err := h.svc.Write(ctx, p, content)

	log.Event("mcp:files_write", "write").
		Author(author).
		Path(p).
		Resolved(res.Path).
		Detail("bytes", res.Bytes).
		Detail("created", res.Created).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(res)
}

// mkdir handles files_mkdir tool calls.
func (h *handlers) mkdir(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil //nolint:nilerr
	}
	dir := getString(req, "path", "")
	author := getString(req, "author", "mcp")

	created, err := h.svc.Mkdir(ctx, dir, name)

	log.Event("mcp:files_mkdir", "mkdir").
		Author(author).
		Path(dir).
		Resolved(created).
		Detail("name", name).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{"path": created})
}

// searchFiles handles files_search tool calls.
func (h *handlers) searchFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}
	p := getString(req, "path", "")

	res, err := h.svc.Find(ctx, searchRequest(req, query, p))

	b := log.Event("mcp:files_search", "search").Author("mcp").Path(p).Detail("query", query)
	if res != nil {
		b.Detail("count", len(res.Results))
	}
	b.Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(res)
}

// searchRequest builds a search from tool arguments. Searches are recursive
// unless the caller says otherwise.
func searchRequest(req mcp.CallToolRequest, query, p string) files.SearchRequest {
	return files.SearchRequest{
		Query:     query,
		Path:      p,
		Recursive: getBool(req, "recursive", true),
		Pattern:   getString(req, "pattern", ""),
		Limit:     max(getInt(req, "limit", 0), 0),
	}
}
