package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// AuthorPrompt handles the rule-author MCP prompt. It walks the AI
// through writing a new rule document in the format the repository
// understands.
type AuthorPrompt struct{}

// NewAuthorPrompt creates an AuthorPrompt.
func NewAuthorPrompt() *AuthorPrompt {
	return &AuthorPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *AuthorPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("rule-author",
		mcp.WithPromptDescription(
			"Write a new Cursor rule file for this project. Guides you through "+
				"the frontmatter format, choosing glob patterns, and wording the "+
				"rule so an AI assistant can follow it.",
		),
		mcp.WithArgument("topic",
			mcp.ArgumentDescription("What the rule should cover, e.g. 'error handling in API routes'"),
		),
	)
}

// Handle processes the rule-author prompt request.
func (p *AuthorPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := "a project convention"
	if args := req.Params.Arguments; args != nil {
		if t, ok := args["topic"]; ok && t != "" {
			topic = t
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Author a rule about %s", topic),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to add a Cursor rule about %s.\n\n"+
						"Please:\n"+
						"1. Ask me what the rule should enforce, with one or two concrete examples\n"+
						"2. Decide which files it applies to: always, or via glob patterns like `*.ts` or `**/api/**/*.go`\n"+
						"3. Draft the rule file in this exact format:\n\n"+
						"```\n"+
						"---\n"+
						"description: One-line summary of the rule\n"+
						"globs: [*.ts, *.tsx]\n"+
						"alwaysApply: false\n"+
						"---\n\n"+
						"The rule text, written as direct instructions.\n"+
						"```\n\n"+
						"4. Save it under `.cursor/rules/` with a short kebab-case name and the `.mdc` extension\n"+
						"5. Run `load_cursor_rules` to verify it parses and shows up\n\n"+
						"Keep the rule text short and imperative. One rule per file.",
					topic,
				)),
			},
		},
	}, nil
}
