package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/rules"
)

// LoadRulesTool handles the load_cursor_rules MCP tool. It reads
// every rule document under the project's .cursor/rules directory
// into the cache and reports what it found.
type LoadRulesTool struct {
	repo *rules.Repository
}

// NewLoadRulesTool creates a LoadRulesTool backed by the given repository.
func NewLoadRulesTool(repo *rules.Repository) *LoadRulesTool {
	return &LoadRulesTool{repo: repo}
}

// Definition returns the MCP tool definition for registration.
func (t *LoadRulesTool) Definition() mcp.Tool {
	return mcp.NewTool("load_cursor_rules",
		mcp.WithDescription(
			"Load all Cursor rule files (*.mdc) from the project's .cursor/rules "+
				"directory into the cache. Returns a summary of every rule found, "+
				"including its description and the glob patterns it applies to. "+
				"Call this at the start of a session, or again to pick up edits.",
		),
		mcp.WithString(argProjectRoot,
			mcp.Description("Project root to load rules from. Defaults to the server's working directory."),
		),
	)
}

// Handle processes the load_cursor_rules tool call.
func (t *LoadRulesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := resolveRoot(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := t.repo.Load(root)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Cannot load rules: %v. Create %s and add *.mdc files to define project rules.",
			err, rules.Dir(root),
		)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Loaded %d rule(s) from %s\n", len(result.Rules), rules.Dir(root))

	if len(result.Rules) > 0 {
		b.WriteString("\n")
		for _, rule := range result.Rules {
			b.WriteString(describeRule(rule))
			b.WriteString("\n")
		}
	}
	writeFailures(&b, result.Failed)

	return mcp.NewToolResultText(b.String()), nil
}
