package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/agentdoc"
)

// ClearAgentTool handles the clear_agents_cache MCP tool. With a
// project_root it evicts that one entry; without one it empties the
// whole agent document cache.
type ClearAgentTool struct {
	loader *agentdoc.Loader
}

// NewClearAgentTool creates a ClearAgentTool backed by the given loader.
func NewClearAgentTool(loader *agentdoc.Loader) *ClearAgentTool {
	return &ClearAgentTool{loader: loader}
}

// Definition returns the MCP tool definition for registration.
func (t *ClearAgentTool) Definition() mcp.Tool {
	return mcp.NewTool("clear_agents_cache",
		mcp.WithDescription(
			"Clear the AGENTS.md cache. With project_root, evicts only that "+
				"project's entry; without it, evicts every cached project. The "+
				"next get reads fresh from disk.",
		),
		mcp.WithString(argProjectRoot,
			mcp.Description("Project root to evict. Omit to clear the cache for every project."),
		),
	)
}

// Handle processes the clear_agents_cache tool call.
func (t *ClearAgentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := req.GetString(argProjectRoot, "")
	if root == "" {
		n := len(t.loader.CachedRoots())
		t.loader.ClearAll()
		return mcp.NewToolResultText(fmt.Sprintf("🧹 Cleared the agent document cache (%d root(s) evicted).", n)), nil
	}

	t.loader.Clear(root)
	return mcp.NewToolResultText(fmt.Sprintf("🧹 Cleared the agent document cache for %s.", root)), nil
}
