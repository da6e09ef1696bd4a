// Package frontmatter parses the delimited metadata header used by
// Cursor rule files and agent guidance files.
//
// The grammar is deliberately narrower than YAML: flat key/value
// pairs only, no nested mappings, no multi-line scalars, no comments.
// Values decode to a small tagged union (string, bool, or list of
// strings) with a lenient fallback for unquoted array elements
// (Cursor tolerates `globs: [*.ts, *.js]`, which no YAML decoder
// accepts). Because of that fallback, and because bare scalars like
// `1` must stay strings, this package does not use a YAML library.
//
// The parser is pure: it never reads files and never returns an
// error. A document without a well-formed header comes back verbatim
// with empty metadata.
package frontmatter

import (
	"encoding/json"
	"strconv"
	"strings"
)

// delimiter is the header fence: a line containing exactly three
// hyphens. No surrounding whitespace is tolerated.
const delimiter = "---"

// Parse splits a document into its metadata header and body.
//
// The header is the block of lines strictly between an opening
// delimiter on the first line and the next delimiter line. When the
// first line is not a delimiter, or no closing delimiter exists, the
// whole input (opening delimiter included) is returned as the body,
// untrimmed, with empty metadata. Otherwise the body is everything
// after the closing delimiter, trimmed of leading and trailing
// whitespace.
func Parse(doc string) (Metadata, string) {
	lines := strings.Split(doc, "\n")
	if lines[0] != delimiter {
		return Metadata{}, doc
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == delimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		// Unterminated header: treat as no header at all.
		return Metadata{}, doc
	}

	meta := Metadata{}
	for _, line := range lines[1:closing] {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue // not a key/value line, skip silently
		}
		key := strings.TrimSpace(line[:idx])
		raw := strings.TrimSpace(line[idx+1:])
		meta[key] = decodeValue(raw)
	}

	body := strings.TrimSpace(strings.Join(lines[closing+1:], "\n"))
	return meta, body
}

// decodeValue type-sniffs a raw header value. Priority: array syntax,
// then boolean literals, then plain string. Numeric-looking values
// are not coerced; `1` stays the string "1".
func decodeValue(raw string) Value {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		return ListValue(decodeList(raw))
	}
	switch raw {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	return StringValue(raw)
}

// decodeList decodes bracketed array syntax. It first attempts a
// strict JSON decode; on failure it falls back to a manual split that
// tolerates unquoted elements. The fallback cannot fail; degenerate
// input produces an empty list.
func decodeList(raw string) []string {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		arr, ok := decoded.([]any)
		if !ok {
			return []string{stringify(decoded)}
		}
		items := make([]string, 0, len(arr))
		for _, elem := range arr {
			items = append(items, stringify(elem))
		}
		return items
	}

	// Manual fallback: strip the outer brackets, split on commas,
	// trim, and peel one layer of quotes from each side.
	inner := raw[1 : len(raw)-1]
	var items []string
	for _, piece := range strings.Split(inner, ",") {
		piece = strings.TrimSpace(piece)
		piece = trimQuote(piece)
		if piece != "" {
			items = append(items, piece)
		}
	}
	if items == nil {
		return []string{}
	}
	return items
}

// trimQuote strips at most one leading and one trailing single or
// double quote. The sides are independent, matching the lenient
// behavior Cursor applies to rule globs.
func trimQuote(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}

// stringify renders a decoded JSON element as a string. Strings pass
// through; numbers and booleans are formatted; anything else (nested
// arrays, objects, null) renders through the JSON encoder so the
// element is never silently dropped.
func stringify(elem any) string {
	switch v := elem.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
