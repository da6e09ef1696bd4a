package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/agentdoc"
)

// GetAgentTool handles the get_agents_file MCP tool. It returns the
// rendered document, loading it first when nothing is cached for the
// root yet.
type GetAgentTool struct {
	loader *agentdoc.Loader
}

// NewGetAgentTool creates a GetAgentTool backed by the given loader.
func NewGetAgentTool(loader *agentdoc.Loader) *GetAgentTool {
	return &GetAgentTool{loader: loader}
}

// Definition returns the MCP tool definition for registration.
func (t *GetAgentTool) Definition() mcp.Tool {
	return mcp.NewTool("get_agents_file",
		mcp.WithDescription(
			"Get the project's AGENTS.md guidance, rendered with its description "+
				"as a heading. Loads the file automatically if it has not been "+
				"loaded yet.",
		),
		mcp.WithString(argProjectRoot,
			mcp.Description("Project root containing AGENTS.md. Defaults to the server's working directory."),
		),
	)
}

// Handle processes the get_agents_file tool call.
func (t *GetAgentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := resolveRoot(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := t.loader.Get(root)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Cannot get %s: %v", agentdoc.FileName, err,
		)), nil
	}

	return mcp.NewToolResultText(doc.Render()), nil
}
