// Package server wires all MCP components and creates the server
// instance.
//
// This is the composition root: it creates the concrete stores,
// repository, and loader, and injects them into the tools, prompts,
// and resources that depend on them. No business logic lives here,
// only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/rulekit/rulekit/internal/agentdoc"
	"github.com/rulekit/rulekit/internal/cache"
	"github.com/rulekit/rulekit/internal/logging"
	"github.com/rulekit/rulekit/internal/prompts"
	"github.com/rulekit/rulekit/internal/resources"
	"github.com/rulekit/rulekit/internal/rules"
	"github.com/rulekit/rulekit/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved: each server instance owns its own
// caches, so two instances never share state.
func New(logger *logging.AppLogger) *server.MCPServer {
	// --- Create shared dependencies ---

	repo := rules.NewRepository(cache.NewMemory[[]rules.Rule](), logger)
	agents := agentdoc.NewLoader(cache.NewMemory[agentdoc.Document](), logger)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"rulekit",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register rule tools ---

	loadRules := tools.NewLoadRulesTool(repo)
	s.AddTool(loadRules.Definition(), loadRules.Handle)

	applicableRules := tools.NewApplicableRulesTool(repo)
	s.AddTool(applicableRules.Definition(), applicableRules.Handle)

	listRules := tools.NewListRulesTool(repo)
	s.AddTool(listRules.Definition(), listRules.Handle)

	clearRules := tools.NewClearRulesTool(repo)
	s.AddTool(clearRules.Definition(), clearRules.Handle)

	// --- Register agent document tools ---

	loadAgent := tools.NewLoadAgentTool(agents)
	s.AddTool(loadAgent.Definition(), loadAgent.Handle)

	getAgent := tools.NewGetAgentTool(agents)
	s.AddTool(getAgent.Definition(), getAgent.Handle)

	clearAgent := tools.NewClearAgentTool(agents)
	s.AddTool(clearAgent.Definition(), clearAgent.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	authorPrompt := prompts.NewAuthorPrompt()
	s.AddPrompt(authorPrompt.Definition(), authorPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(repo, agents)
	s.AddResource(resourceHandler.CacheResource(), resourceHandler.HandleCache)

	return s
}

// serverInstructions returns the system instructions that tell the
// AI how to use rulekit effectively.
func serverInstructions() string {
	return `You have access to rulekit, an MCP server that serves a project's
Cursor rules and AGENTS.md guidance.

## WHEN TO USE rulekit

- At the start of a session: call load_cursor_rules and get_agents_file
  so you know the project's conventions before touching anything.
- Before creating or editing a file: call get_applicable_rules with that
  file's path and follow every rule that comes back.
- After the user edits rule files: call load_cursor_rules again (or
  clear_rules_cache first) to pick up the changes.

## HOW RULES WORK

Rule files live under .cursor/rules/*.mdc. Each one has a metadata
header followed by the rule text:

---
description: TypeScript conventions
globs: [*.ts, *.tsx]
alwaysApply: false
---

Rules with alwaysApply: true apply to every file. Otherwise the globs
decide: * matches within one path segment, ** crosses directories.
A rule's body is the guidance you must follow when the rule applies.

AGENTS.md at the project root holds project-wide guidance that applies
regardless of file. Read it once per session with get_agents_file.

## RULES OF THUMB

- Rules are instructions, not suggestions. When a rule conflicts with
  your habits, the rule wins.
- If no rules apply to a file, proceed normally without mentioning rules.
- If loading fails because .cursor/rules does not exist, that is normal
  for projects without rules. Do not create the directory unless the
  user asks for it.
- Use list_cached_rules to inspect state without touching the disk.

## TYPICAL SEQUENCES

New session:
1. load_cursor_rules
2. get_agents_file
3. Work, calling get_applicable_rules for each file you touch.

Rules changed mid-session:
1. clear_rules_cache (or just call load_cursor_rules again)
2. get_applicable_rules for the files you are working on.`
}
