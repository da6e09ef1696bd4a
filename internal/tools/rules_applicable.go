package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/rules"
)

// ApplicableRulesTool handles the get_applicable_rules MCP tool. It
// evaluates the cached rules against a file path and returns the
// full text of every rule that applies, loading the rules first if
// nothing is cached yet.
type ApplicableRulesTool struct {
	repo *rules.Repository
}

// NewApplicableRulesTool creates an ApplicableRulesTool backed by the
// given repository.
func NewApplicableRulesTool(repo *rules.Repository) *ApplicableRulesTool {
	return &ApplicableRulesTool{repo: repo}
}

// Definition returns the MCP tool definition for registration.
func (t *ApplicableRulesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_applicable_rules",
		mcp.WithDescription(
			"Get the Cursor rules that apply to a specific file, with their full "+
				"guidance text. A rule applies when it is marked alwaysApply or when "+
				"one of its glob patterns matches the file path. Loads the rules "+
				"automatically if they have not been loaded yet.",
		),
		mcp.WithString(argFilePath,
			mcp.Required(),
			mcp.Description("Path of the file to evaluate rules against, relative to the project root or absolute."),
		),
		mcp.WithString(argProjectRoot,
			mcp.Description("Project root the rules belong to. Defaults to the server's working directory."),
		),
	)
}

// Handle processes the get_applicable_rules tool call.
func (t *ApplicableRulesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := req.GetString(argFilePath, "")
	if strings.TrimSpace(filePath) == "" {
		return mcp.NewToolResultError("'file_path' is required: provide the file to evaluate rules against"), nil
	}

	root, err := resolveRoot(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	applicable, err := t.repo.Applicable(filePath, root)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"%v. Check that %s exists, or call load_cursor_rules first.",
			err, rules.Dir(root),
		)), nil
	}

	if len(applicable) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No rules apply to %s.", filePath)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 %d rule(s) apply to %s\n", len(applicable), filePath)
	for _, rule := range applicable {
		fmt.Fprintf(&b, "\n## %s: %s\n\n%s\n", rule.File, rule.Description, rule.Content)
	}

	return mcp.NewToolResultText(b.String()), nil
}
