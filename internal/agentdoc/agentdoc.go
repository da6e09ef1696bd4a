// Package agentdoc loads the project-level agent guidance document:
// a single fixed-name file at the project root, parsed with the same
// metadata header as rule documents but consumed without any pattern
// matching.
package agentdoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rulekit/rulekit/internal/cache"
	"github.com/rulekit/rulekit/internal/frontmatter"
	"github.com/rulekit/rulekit/internal/logging"
)

// FileName is the document looked for at the project root.
const FileName = "AGENTS.md"

// keyDescription is the one metadata key the loader interprets;
// everything else passes through verbatim.
const keyDescription = "description"

// DefaultDescription is used when the document carries no
// description in its metadata.
const DefaultDescription = "No description provided"

// Document is one parsed agent document. Metadata holds the full
// decoded header, including keys the loader itself never reads.
type Document struct {
	// File is the fixed document name.
	File string
	// Description summarizes the document for listings.
	Description string
	// Content is the text after the metadata header, trimmed.
	Content string
	// Metadata is the decoded header mapping, passed through
	// verbatim.
	Metadata frontmatter.Metadata
}

// Render formats the document for display: the description as a
// heading followed by the body text.
func (d Document) Render() string {
	return fmt.Sprintf("# %s\n\n%s", d.Description, d.Content)
}

// Loader reads and caches agent documents keyed by the literal
// project-root string, at most one document per root. The cache
// store is injected so each instance owns its own state.
type Loader struct {
	store  cache.Store[Document]
	logger *logging.AppLogger
}

// NewLoader creates a Loader around the given store.
func NewLoader(store cache.Store[Document], logger *logging.AppLogger) *Loader {
	return &Loader{store: store, logger: logger}
}

// Load reads <root>/AGENTS.md, parses it, and replaces the cache
// entry for root. A read failure (missing file included) fails the
// call and leaves any prior entry untouched.
func (l *Loader) Load(root string) (Document, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading agent document %s: %w", path, err)
	}

	meta, body := frontmatter.Parse(string(data))
	doc := Document{
		File:        FileName,
		Description: meta.StringOr(keyDescription, DefaultDescription),
		Content:     body,
		Metadata:    meta,
	}

	l.store.Set(root, doc)
	l.logger.Debug("agent document loaded", "root", root, "description", doc.Description)

	return doc, nil
}

// Get returns the document for root, loading it first when nothing
// is cached yet.
func (l *Loader) Get(root string) (Document, error) {
	if doc, ok := l.store.Get(root); ok {
		return doc, nil
	}
	return l.Load(root)
}

// Cached returns the cached document for root without loading.
func (l *Loader) Cached(root string) (Document, bool) {
	return l.store.Get(root)
}

// Clear evicts the cache entry for one root.
func (l *Loader) Clear(root string) {
	l.store.Delete(root)
}

// ClearAll evicts every cached root.
func (l *Loader) ClearAll() {
	l.store.Clear()
}

// CachedRoots lists the roots currently cached.
func (l *Loader) CachedRoots() []string {
	return l.store.Keys()
}
