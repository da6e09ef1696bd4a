package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rulekit/rulekit/internal/cache"
	"github.com/rulekit/rulekit/internal/frontmatter"
	"github.com/rulekit/rulekit/internal/logging"
)

const (
	// cursorDirName is the hidden directory Cursor keeps its
	// project files in.
	cursorDirName = ".cursor"
	// rulesDirName holds the rule documents inside the cursor dir.
	rulesDirName = "rules"
	// ruleExt is matched case-sensitively: Cursor only recognizes
	// lower-case .mdc files.
	ruleExt = ".mdc"
)

// Dir resolves the rules directory for a project root.
func Dir(root string) string {
	return filepath.Join(root, cursorDirName, rulesDirName)
}

// LoadResult reports one load batch: the records that parsed and a
// message per file that could not be read. A batch with failures is
// still a successful batch; only an unlistable directory fails
// wholesale.
type LoadResult struct {
	Rules  []Rule
	Failed []string
}

// Repository loads rule documents and caches them keyed by the
// literal project-root string. The cache store is injected so each
// instance owns its own state.
type Repository struct {
	store  cache.Store[[]Rule]
	logger *logging.AppLogger
}

// NewRepository creates a Repository around the given store.
func NewRepository(store cache.Store[[]Rule], logger *logging.AppLogger) *Repository {
	return &Repository{store: store, logger: logger}
}

// Load reads every .mdc document under <root>/.cursor/rules, parses
// each independently, and replaces the cache entry for root with the
// resulting records.
//
// An unlistable directory (missing, permission error) fails the call
// and leaves any prior cache entry untouched. A per-file read
// failure only excludes that file: it is recorded in Failed and the
// batch continues. The replacement is unconditional once the
// directory listed, so an all-failed batch caches an empty record
// list.
func (r *Repository) Load(root string) (*LoadResult, error) {
	dir := Dir(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading rules directory %s: %w", dir, err)
	}

	result := &LoadResult{Rules: []Rule{}}
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != ruleExt {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			result.Failed = append(result.Failed, fmt.Sprintf("%s: %v", name, err))
			r.logger.Debug("skipping unreadable rule file", "file", name, "error", err)
			continue
		}

		meta, body := frontmatter.Parse(string(data))
		result.Rules = append(result.Rules, newRule(name, meta, body))
	}

	r.store.Set(root, result.Rules)
	r.logger.Debug("rules loaded",
		"root", root,
		"count", len(result.Rules),
		"failed", len(result.Failed),
	)

	return result, nil
}

// Applicable returns the rules matching path for root, loading the
// rules first when nothing is cached yet. A failed implicit load
// surfaces as an error, distinct from a successful match that finds
// nothing.
func (r *Repository) Applicable(path, root string) ([]Rule, error) {
	if _, ok := r.store.Get(root); !ok {
		if _, err := r.Load(root); err != nil {
			return nil, fmt.Errorf("no rules loaded for %s: %w", root, err)
		}
	}

	cached, _ := r.store.Get(root)
	return Match(path, cached, root), nil
}

// Cached returns the cached records for root without loading.
func (r *Repository) Cached(root string) ([]Rule, bool) {
	return r.store.Get(root)
}

// Clear evicts the cache entry for one root.
func (r *Repository) Clear(root string) {
	r.store.Delete(root)
}

// ClearAll evicts every cached root.
func (r *Repository) ClearAll() {
	r.store.Clear()
}

// CachedRoots lists the roots currently cached.
func (r *Repository) CachedRoots() []string {
	return r.store.Keys()
}
