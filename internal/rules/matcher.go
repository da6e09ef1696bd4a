package rules

import (
	"path/filepath"
)

// Match returns the subset of rules applicable to filePath, in the
// same relative order as the input. It is a pure function of its
// arguments: no cache access, no I/O.
//
// A rule with AlwaysApply set is included unconditionally. Otherwise
// each of its globs is tried against two candidate strings (the path
// made relative to root, then the bare file name) and the first hit
// includes the rule, one entry per rule with no duplicates. Rules
// with no globs and no AlwaysApply never match.
func Match(filePath string, list []Rule, root string) []Rule {
	candidates := matchCandidates(filePath, root)

	var applicable []Rule
	for _, rule := range list {
		if rule.AlwaysApply {
			applicable = append(applicable, rule)
			continue
		}
		if matchesAny(rule.Globs, candidates) {
			applicable = append(applicable, rule)
		}
	}
	return applicable
}

// matchCandidates computes the strings globs are evaluated against:
// the path relative to the project root (after resolving filePath to
// absolute form) and the base name. Both are slash-normalized so
// patterns written with `/` behave the same on every OS. When the
// relative form cannot be computed the original path stands in.
func matchCandidates(filePath, root string) []string {
	rel := filePath
	if abs, err := filepath.Abs(filePath); err == nil {
		if r, err := filepath.Rel(root, abs); err == nil {
			rel = r
		}
	}

	return []string{
		filepath.ToSlash(rel),
		filepath.Base(filePath),
	}
}

// matchesAny reports whether any glob matches any candidate. First
// match wins; remaining globs are not evaluated.
func matchesAny(globs, candidates []string) bool {
	for _, glob := range globs {
		for _, candidate := range candidates {
			if matchGlob(glob, candidate) {
				return true
			}
		}
	}
	return false
}
