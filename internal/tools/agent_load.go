package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/agentdoc"
)

// LoadAgentTool handles the load_agents_file MCP tool. It reads the
// project's AGENTS.md into the cache, replacing any prior entry for
// that root.
type LoadAgentTool struct {
	loader *agentdoc.Loader
}

// NewLoadAgentTool creates a LoadAgentTool backed by the given loader.
func NewLoadAgentTool(loader *agentdoc.Loader) *LoadAgentTool {
	return &LoadAgentTool{loader: loader}
}

// Definition returns the MCP tool definition for registration.
func (t *LoadAgentTool) Definition() mcp.Tool {
	return mcp.NewTool("load_agents_file",
		mcp.WithDescription(
			"Load the AGENTS.md guidance file from the project root into the "+
				"cache. Call again to pick up edits. Use get_agents_file to read "+
				"the cached content.",
		),
		mcp.WithString(argProjectRoot,
			mcp.Description("Project root containing AGENTS.md. Defaults to the server's working directory."),
		),
	)
}

// Handle processes the load_agents_file tool call.
func (t *LoadAgentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := resolveRoot(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := t.loader.Load(root)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Cannot load %s: %v", agentdoc.FileName, err,
		)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"✅ Loaded %s for %s\n\n**Description:** %s",
		agentdoc.FileName, root, doc.Description,
	)), nil
}
