// tools_guide.go implements files_guide, which hands LLM clients the same
// embedded pages "mdfiles guide" prints, so an agent can learn the markdown
// conventions (front matter, hashtags, wiki links) before writing files.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/mdfiles/guide"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)
	log.Event("mcp:files_guide", "read").Author("mcp").Detail("topic", topic).Write(err)
	if err == nil {
		return mcp.NewToolResultText(content), nil
	}

	topics, listErr := guide.List()
	if listErr != nil {
		return nil, fmt.Errorf("listing guides: %w", listErr)
	}
	return mcp.NewToolResultError(fmt.Sprintf("guide %q not found. Available: %s", topic, strings.Join(topics, ", "))), nil
}
