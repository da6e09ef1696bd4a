package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rulekit/rulekit/internal/agentdoc"
)

func TestGetAgentTool_RendersDocument(t *testing.T) {
	loader := newTestLoader(t)
	root := t.TempDir()
	writeAgentsFile(t, root, testAgentsDoc)

	tool := NewGetAgentTool(loader)
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"project_root": root,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	text := getResultText(result)
	if !strings.HasPrefix(text, "# Project guidance") {
		t.Errorf("result should start with the description heading, got: %s", text)
	}
	if !strings.Contains(text, "Keep functions small.") {
		t.Errorf("result should include the body, got: %s", text)
	}
}

func TestGetAgentTool_ServesFromCache(t *testing.T) {
	loader := newTestLoader(t)
	root := t.TempDir()
	writeAgentsFile(t, root, testAgentsDoc)
	if _, err := loader.Load(root); err != nil {
		t.Fatalf("setup: load: %v", err)
	}
	if err := os.Remove(filepath.Join(root, agentdoc.FileName)); err != nil {
		t.Fatalf("setup: remove: %v", err)
	}

	tool := NewGetAgentTool(loader)
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"project_root": root,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("cached document should still be served, got: %s", getResultText(result))
	}
	if text := getResultText(result); !strings.Contains(text, "Keep functions small.") {
		t.Errorf("result should come from the cache, got: %s", text)
	}
}

func TestGetAgentTool_MissingFile(t *testing.T) {
	loader := newTestLoader(t)
	root := t.TempDir()

	tool := NewGetAgentTool(loader)
	result, err := tool.Handle(context.Background(), newRequest(map[string]interface{}{
		"project_root": root,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected error result for a missing file")
	}
}
