package rules

import "strings"

// matchGlob reports whether a slash-separated path matches a glob
// pattern. Supported syntax, matching what Cursor rule globs use:
//
//   - `*` matches any run of characters within one path segment
//     (never crosses a `/`)
//   - `**` as a whole segment matches zero or more segments
//   - anything else matches literally, case-sensitively
//
// Both pattern and name are expected in slash form; callers convert
// with filepath.ToSlash first.
func matchGlob(pattern, name string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(name, "/"))
}

// matchSegments matches pattern segments against path segments,
// recursing on `**` which may swallow zero or more path segments.
func matchSegments(pattern, segs []string) bool {
	if len(pattern) == 0 {
		return len(segs) == 0
	}

	if pattern[0] == "**" {
		// Zero segments consumed.
		if matchSegments(pattern[1:], segs) {
			return true
		}
		// One more segment consumed, `**` stays active.
		if len(segs) > 0 && matchSegments(pattern, segs[1:]) {
			return true
		}
		return false
	}

	if len(segs) == 0 {
		return false
	}
	if !matchSegment(pattern[0], segs[0]) {
		return false
	}
	return matchSegments(pattern[1:], segs[1:])
}

// matchSegment matches a single pattern segment against a single
// path segment, with `*` as an in-segment wildcard. Iterative with
// backtracking on the last star, the textbook approach.
func matchSegment(pattern, seg string) bool {
	var (
		p, s         int
		starP, starS = -1, 0
	)

	for s < len(seg) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			starP, starS = p, s
			p++
		case p < len(pattern) && pattern[p] == seg[s]:
			p++
			s++
		case starP >= 0:
			// Backtrack: let the last star absorb one more byte.
			starS++
			p, s = starP+1, starS
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
