package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/agentdoc"
	"github.com/rulekit/rulekit/internal/cache"
	"github.com/rulekit/rulekit/internal/logging"
	"github.com/rulekit/rulekit/internal/rules"
)

// --- Test helpers ---

const testRuleDoc = `---
description: TypeScript conventions
globs: [*.ts, *.tsx]
---

Use strict mode.`

const testAlwaysDoc = `---
description: House style
alwaysApply: true
---

Prefer early returns.`

const testAgentsDoc = `---
description: Project guidance
---

Keep functions small.`

// newTestRepository builds a rule repository with isolated state.
func newTestRepository(t *testing.T) *rules.Repository {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	return rules.NewRepository(cache.NewMemory[[]rules.Rule](), logger)
}

// newTestLoader builds an agent document loader with isolated state.
func newTestLoader(t *testing.T) *agentdoc.Loader {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	return agentdoc.NewLoader(cache.NewMemory[agentdoc.Document](), logger)
}

// setupProjectDir creates a temp project root and changes cwd to it,
// so tools that default to the working directory resolve there.
// Returns the root and a cleanup function.
func setupProjectDir(t *testing.T) (string, func()) {
	t.Helper()
	root := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("setup: getwd: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("setup: chdir: %v", err)
	}

	cleanup := func() {
		_ = os.Chdir(origDir)
	}
	return root, cleanup
}

// writeRuleFile writes a rule document under root's rules directory.
func writeRuleFile(t *testing.T, root, name, content string) {
	t.Helper()
	dir := rules.Dir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("setup: creating rules dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("setup: writing rule %s: %v", name, err)
	}
}

// writeAgentsFile writes the agent document at root.
func writeAgentsFile(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, agentdoc.FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("setup: writing agents file: %v", err)
	}
}

// newRequest builds a tool call request with the given arguments.
func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// isErrorResult checks if the result is a tool error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// --- resolveRoot ---

func TestResolveRoot_ArgumentWins(t *testing.T) {
	req := newRequest(map[string]interface{}{
		"project_root": "/explicit/root",
	})

	root, err := resolveRoot(req)
	if err != nil {
		t.Fatalf("resolveRoot failed: %v", err)
	}
	if root != "/explicit/root" {
		t.Errorf("resolveRoot() = %q, want %q", root, "/explicit/root")
	}
}

func TestResolveRoot_DefaultsToWorkingDirectory(t *testing.T) {
	dir, cleanup := setupProjectDir(t)
	defer cleanup()

	root, err := resolveRoot(newRequest(nil))
	if err != nil {
		t.Fatalf("resolveRoot failed: %v", err)
	}
	// Resolve symlinks: on some systems TempDir returns a
	// symlinked path while Getwd reports the real one.
	wantReal, _ := filepath.EvalSymlinks(dir)
	gotReal, _ := filepath.EvalSymlinks(root)
	if gotReal != wantReal {
		t.Errorf("resolveRoot() = %q, want %q", gotReal, wantReal)
	}
}
