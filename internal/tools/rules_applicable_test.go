package tools

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplicableRulesTool_RequiresFilePath(t *testing.T) {
	tool := NewApplicableRulesTool(newTestRepository(t))

	result, err := tool.Handle(context.Background(), newRequest(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected error result for missing file_path")
	}
	if text := getResultText(result); !strings.Contains(text, "file_path") {
		t.Errorf("error should mention file_path, got: %s", text)
	}
}

func TestApplicableRulesTool_LoadsImplicitly(t *testing.T) {
	repo := newTestRepository(t)
	root := t.TempDir()
	writeRuleFile(t, root, "always.mdc", testAlwaysDoc)
	writeRuleFile(t, root, "typescript.mdc", testRuleDoc)

	tool := NewApplicableRulesTool(repo)
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"file_path":    filepath.Join(root, "src", "component.tsx"),
		"project_root": root,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	text := getResultText(result)
	if !strings.Contains(text, "2 rule(s) apply") {
		t.Errorf("result should report 2 applicable rules, got: %s", text)
	}
	if !strings.Contains(text, "Prefer early returns.") || !strings.Contains(text, "Use strict mode.") {
		t.Errorf("result should include the rule bodies, got: %s", text)
	}

	if _, ok := repo.Cached(root); !ok {
		t.Error("cache should be populated by the implicit load")
	}
}

func TestApplicableRulesTool_NoMatches(t *testing.T) {
	repo := newTestRepository(t)
	root := t.TempDir()
	writeRuleFile(t, root, "typescript.mdc", testRuleDoc)

	tool := NewApplicableRulesTool(repo)
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"file_path":    filepath.Join(root, "styles.css"),
		"project_root": root,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("no matches should not be an error result, got: %s", getResultText(result))
	}
	if text := getResultText(result); !strings.Contains(text, "No rules apply to") {
		t.Errorf("result should say no rules apply, got: %s", text)
	}
}

func TestApplicableRulesTool_FailedImplicitLoad(t *testing.T) {
	repo := newTestRepository(t)
	root := t.TempDir()

	tool := NewApplicableRulesTool(repo)
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"file_path":    "main.go",
		"project_root": root,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected error result when no rules can be loaded")
	}
	if text := getResultText(result); !strings.Contains(text, "load_cursor_rules") {
		t.Errorf("error should point at load_cursor_rules, got: %s", text)
	}
}
