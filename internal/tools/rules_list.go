package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/rules"
)

// ListRulesTool handles the list_cached_rules MCP tool. It only ever
// peeks at the cache: listing never triggers a load, so it is safe
// to call to inspect state without side effects.
type ListRulesTool struct {
	repo *rules.Repository
}

// NewListRulesTool creates a ListRulesTool backed by the given repository.
func NewListRulesTool(repo *rules.Repository) *ListRulesTool {
	return &ListRulesTool{repo: repo}
}

// Definition returns the MCP tool definition for registration.
func (t *ListRulesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_cached_rules",
		mcp.WithDescription(
			"List the rules currently cached for a project root, without reading "+
				"anything from disk. Shows each rule's description and patterns. "+
				"Use load_cursor_rules to populate or refresh the cache.",
		),
		mcp.WithString(argProjectRoot,
			mcp.Description("Project root to list cached rules for. Defaults to the server's working directory."),
		),
	)
}

// Handle processes the list_cached_rules tool call.
func (t *ListRulesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := resolveRoot(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cached, ok := t.repo.Cached(root)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No rules cached for %s. Call load_cursor_rules to load them.", root,
		)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 %d rule(s) cached for %s\n", len(cached), root)
	if len(cached) > 0 {
		b.WriteString("\n")
		for _, rule := range cached {
			b.WriteString(describeRule(rule))
			b.WriteString("\n")
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}
