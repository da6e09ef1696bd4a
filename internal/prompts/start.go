// Package prompts implements MCP prompt handlers for rulekit.
//
// MCP prompts are user-triggered workflows (like slash commands)
// that instruct the AI to execute a specific sequence. Unlike tools
// (which the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the rules-start MCP prompt. It instructs the
// AI to pull in the project's rules and guidance at the beginning of
// a session.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("rules-start",
		mcp.WithPromptDescription(
			"Load the project's Cursor rules and AGENTS.md guidance at the "+
				"start of a session, so every edit follows the project's conventions.",
		),
		mcp.WithArgument("project_root",
			mcp.ArgumentDescription("Project root to load from. Defaults to the server's working directory."),
		),
	)
}

// Handle processes the rules-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	rootClause := ""
	if args := req.Params.Arguments; args != nil {
		if root, ok := args["project_root"]; ok && root != "" {
			rootClause = fmt.Sprintf(" with project_root='%s'", root)
		}
	}

	return &mcp.GetPromptResult{
		Description: "Load project rules and guidance",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please load this project's conventions before we start:\n\n"+
						"1. Run `load_cursor_rules`%s and summarize which rules exist and what they cover\n"+
						"2. Run `get_agents_file`%s and keep its guidance in mind for the whole session\n"+
						"3. Before editing any file, run `get_applicable_rules` with that file's path and follow what comes back\n\n"+
						"If either load reports that nothing exists, just say so and carry on without it.",
					rootClause, rootClause,
				)),
			},
		},
	}, nil
}
