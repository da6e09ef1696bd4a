// Package resources implements MCP resource handlers for rulekit.
//
// Resources provide read-only data that the host can consume for
// context. They use URI-based addressing (cursor-rules://...)
// following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rulekit/rulekit/internal/agentdoc"
	"github.com/rulekit/rulekit/internal/rules"
)

// Handler manages rulekit resource endpoints.
type Handler struct {
	repo   *rules.Repository
	agents *agentdoc.Loader
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(repo *rules.Repository, agents *agentdoc.Loader) *Handler {
	return &Handler{repo: repo, agents: agents}
}

// CacheResource returns the MCP resource definition for the cache
// snapshot.
func (h *Handler) CacheResource() mcp.Resource {
	return mcp.NewResource(
		"cursor-rules://cache",
		"Rule Cache Snapshot",
		mcp.WithResourceDescription("Every cached project root with its rules and agent document"),
		mcp.WithMIMEType("application/json"),
	)
}

// cacheSnapshot is the JSON shape served for cursor-rules://cache.
type cacheSnapshot struct {
	Rules  map[string][]ruleEntry `json:"rules"`
	Agents map[string]agentEntry  `json:"agents"`
}

type ruleEntry struct {
	File        string   `json:"file"`
	Description string   `json:"description"`
	Globs       []string `json:"globs,omitempty"`
	AlwaysApply bool     `json:"alwaysApply,omitempty"`
}

type agentEntry struct {
	File        string `json:"file"`
	Description string `json:"description"`
}

// HandleCache serves the current cache contents as JSON. It only
// peeks: reading the resource never triggers a disk load.
func (h *Handler) HandleCache(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	snapshot := cacheSnapshot{
		Rules:  map[string][]ruleEntry{},
		Agents: map[string]agentEntry{},
	}

	for _, root := range h.repo.CachedRoots() {
		cached, ok := h.repo.Cached(root)
		if !ok {
			continue
		}
		entries := make([]ruleEntry, 0, len(cached))
		for _, rule := range cached {
			entries = append(entries, ruleEntry{
				File:        rule.File,
				Description: rule.Description,
				Globs:       rule.Globs,
				AlwaysApply: rule.AlwaysApply,
			})
		}
		snapshot.Rules[root] = entries
	}

	for _, root := range h.agents.CachedRoots() {
		doc, ok := h.agents.Cached(root)
		if !ok {
			continue
		}
		snapshot.Agents[root] = agentEntry{
			File:        doc.File,
			Description: doc.Description,
		}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling cache snapshot: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
