package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/rules"
)

// ClearRulesTool handles the clear_rules_cache MCP tool. With a
// project_root it evicts that one entry; without one it empties the
// whole rule cache.
type ClearRulesTool struct {
	repo *rules.Repository
}

// NewClearRulesTool creates a ClearRulesTool backed by the given repository.
func NewClearRulesTool(repo *rules.Repository) *ClearRulesTool {
	return &ClearRulesTool{repo: repo}
}

// Definition returns the MCP tool definition for registration.
func (t *ClearRulesTool) Definition() mcp.Tool {
	return mcp.NewTool("clear_rules_cache",
		mcp.WithDescription(
			"Clear the rule cache. With project_root, evicts only that project's "+
				"entry; without it, evicts every cached project. The next load or "+
				"match reads fresh from disk.",
		),
		mcp.WithString(argProjectRoot,
			mcp.Description("Project root to evict. Omit to clear the cache for every project."),
		),
	)
}

// Handle processes the clear_rules_cache tool call.
func (t *ClearRulesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := req.GetString(argProjectRoot, "")
	if root == "" {
		n := len(t.repo.CachedRoots())
		t.repo.ClearAll()
		return mcp.NewToolResultText(fmt.Sprintf("🧹 Cleared the rule cache (%d root(s) evicted).", n)), nil
	}

	t.repo.Clear(root)
	return mcp.NewToolResultText(fmt.Sprintf("🧹 Cleared the rule cache for %s.", root)), nil
}
