// resources.go implements MCP resource handlers for file access.
//
// MCP resources provide read-only access to files via a URI scheme,
// enabling LLM clients to reference documents without using tools. This
// is useful for context loading where the LLM needs document content but
// isn't performing an action.
//
// Design: Resource URIs follow the pattern mdfiles://files/{path}. The
// content is the raw file text, front matter included, mirroring the
// CLI's "cat --raw".

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

const resourcePrefix = "mdfiles://files/"

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyPath indicates a missing file path in a resource URI.
	ErrEmptyPath = errors.New("empty file path")
)

// readFile handles mdfiles://files/{path} resource requests.
func (h *handlers) readFile(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	p, err := parseFileURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := h.svc.Raw(ctx, p)
	log.Event("mcp:resource", "read").Author("mcp").Path(p).Write(err)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeType(p),
			Text:     content,
		},
	}, nil
}

// parseFileURI extracts the relative path from a file URI. Percent-encoded
// segments are decoded so clients may escape spaces.
func parseFileURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, resourcePrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	rest := strings.TrimPrefix(uri, resourcePrefix)
	p, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if strings.Trim(p, "/") == "" {
		return "", ErrEmptyPath
	}
	return p, nil
}

func mimeType(p string) string {
	if strings.HasSuffix(strings.ToLower(p), ".md") {
		return "text/markdown"
	}
	return "text/plain"
}
