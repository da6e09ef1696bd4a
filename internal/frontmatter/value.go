package frontmatter

// Kind discriminates the variants a metadata value can take.
type Kind int

const (
	// KindString is a plain string value (the default for any
	// unrecognized scalar, including numeric-looking text).
	KindString Kind = iota
	// KindBool is a boolean decoded from the literals true/false.
	KindBool
	// KindList is a sequence of strings decoded from array syntax.
	KindList
)

// Value is a tagged union over the three shapes a header value can
// decode to: string, bool, or list of strings. Consumers switch on
// Kind (or use the As* accessors) instead of type-asserting through
// an untyped map.
type Value struct {
	kind Kind
	str  string
	b    bool
	list []string
}

// StringValue wraps a plain string.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// ListValue wraps a sequence of strings.
func ListValue(items []string) Value {
	return Value{kind: KindList, list: items}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the string variant. The second return is false
// when the value holds a different kind.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the bool variant. The second return is false when
// the value holds a different kind.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsList returns the list variant. The second return is false when
// the value holds a different kind.
func (v Value) AsList() ([]string, bool) {
	return v.list, v.kind == KindList
}

// Metadata is the decoded key/value header of a document. Repeated
// keys keep the last occurrence.
type Metadata map[string]Value

// StringOr returns the string value for key, or fallback when the
// key is absent or holds a non-string variant.
func (m Metadata) StringOr(key, fallback string) string {
	if s, ok := m[key].AsString(); ok && s != "" {
		return s
	}
	return fallback
}

// BoolOr returns the bool value for key, or fallback when the key is
// absent or holds a non-bool variant.
func (m Metadata) BoolOr(key string, fallback bool) bool {
	if b, ok := m[key].AsBool(); ok {
		return b
	}
	return fallback
}
