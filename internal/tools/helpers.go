// Package tools implements the MCP tool handlers for rulekit.
//
// Each tool is a struct that receives its dependencies at
// construction and exposes a Definition for registration plus a
// Handle compatible with mcp-go's CallToolRequest signature. Domain
// failures (missing directories, unreadable files) are reported as
// error results with a human-readable message, never as Go errors
// crossing the handler boundary.
package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/rules"
)

// Argument names shared across tools.
const (
	argProjectRoot = "project_root"
	argFilePath    = "file_path"
)

// resolveRoot returns the project root for a tool call: the
// project_root argument when given, the server's working directory
// otherwise.
func resolveRoot(req mcp.CallToolRequest) (string, error) {
	if root := req.GetString(argProjectRoot, ""); root != "" {
		return root, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return dir, nil
}

// describeRule renders one rule as a list entry for summaries.
func describeRule(rule rules.Rule) string {
	switch {
	case rule.AlwaysApply:
		return fmt.Sprintf("- **%s**: %s (always apply)", rule.File, rule.Description)
	case len(rule.Globs) > 0:
		return fmt.Sprintf("- **%s**: %s (globs: %s)", rule.File, rule.Description, strings.Join(rule.Globs, ", "))
	default:
		return fmt.Sprintf("- **%s**: %s", rule.File, rule.Description)
	}
}

// writeFailures appends the per-file failure section of a load
// summary, if there is anything to report.
func writeFailures(b *strings.Builder, failed []string) {
	if len(failed) == 0 {
		return
	}

	fmt.Fprintf(b, "\n⚠️ %d file(s) could not be read:\n", len(failed))
	for _, f := range failed {
		fmt.Fprintf(b, "- %s\n", f)
	}
}
