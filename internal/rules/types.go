// Package rules loads Cursor rule documents from a project's
// .cursor/rules directory, caches them per project root, and decides
// which rules apply to a given file path.
//
// The package splits into four pieces:
//   - types: the Rule record and its normalization from parsed metadata
//   - repository: directory loading and the per-root cache
//   - matcher: the pure applicability function
//   - glob: minimal * and ** pattern matching
package rules

import (
	"github.com/rulekit/rulekit/internal/frontmatter"
)

// Recognized frontmatter keys for rule documents.
const (
	keyDescription = "description"
	keyGlobs       = "globs"
	keyAlwaysApply = "alwaysApply"
)

// DefaultDescription is used when a rule document carries no
// description in its metadata.
const DefaultDescription = "No description provided"

// Rule is one parsed rule document. Records are built fresh on every
// load and never mutated afterwards; a later load for the same root
// supersedes them wholesale.
type Rule struct {
	// File is the base file name, unique within a load batch.
	File string
	// Description summarizes the rule for listings.
	Description string
	// Globs are the patterns the matcher evaluates, in document
	// order. Empty when the metadata carried none.
	Globs []string
	// AlwaysApply marks the rule applicable to every path,
	// bypassing pattern evaluation.
	AlwaysApply bool
	// Content is the document body after the metadata header,
	// trimmed.
	Content string
}

// newRule builds a Rule from a file name, its decoded metadata, and
// body. Normalization is explicit per variant: globs may arrive as a
// single string, a list, or not at all; alwaysApply must be a real
// boolean to count.
func newRule(file string, meta frontmatter.Metadata, body string) Rule {
	rule := Rule{
		File:        file,
		Description: meta.StringOr(keyDescription, DefaultDescription),
		AlwaysApply: meta.BoolOr(keyAlwaysApply, false),
		Content:     body,
	}

	if v, ok := meta[keyGlobs]; ok {
		switch v.Kind() {
		case frontmatter.KindString:
			if s, _ := v.AsString(); s != "" {
				rule.Globs = []string{s}
			}
		case frontmatter.KindList:
			list, _ := v.AsList()
			rule.Globs = list
		case frontmatter.KindBool:
			// A boolean globs key carries no usable pattern.
		}
	}

	return rule
}
