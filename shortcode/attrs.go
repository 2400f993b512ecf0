package shortcode

import "strings"

// Attr is a single key=value pair inside a token.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list. Order is the order of first appearance
// in the source fragment; duplicate keys overwrite the value in place.
type Attrs []Attr

// Get returns the value for key and whether the key is present.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Set overwrites the value for key if present, otherwise appends a new pair.
func (a Attrs) Set(key, value string) Attrs {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// Map returns the attributes as a plain map. Ordering is lost; use only
// where order does not matter.
func (a Attrs) Map() map[string]string {
	m := make(map[string]string, len(a))
	for _, attr := range a {
		m[attr.Key] = attr.Value
	}
	return m
}

// ParseAttributes parses the attribute fragment of a token into an ordered
// key/value list. Values are either double-quoted strings (with `\"` as the
// escape for an embedded quote) or maximal runs of non-whitespace,
// non-quote characters. Trailing text that does not form a key=value pair
// is ignored, never an error. Keys are case-sensitive; a duplicate key keeps
// its first position but takes the last value.
func ParseAttributes(fragment string) Attrs {
	var result Attrs

	i := 0
	n := len(fragment)

	for i < n {
		// skip whitespace between pairs
		for i < n && isSpace(fragment[i]) {
			i++
		}
		if i >= n {
			break
		}

		// key: run of non-whitespace, non-'=', non-quote bytes
		keyStart := i
		for i < n && !isSpace(fragment[i]) && fragment[i] != '=' && fragment[i] != '"' {
			i++
		}
		key := fragment[keyStart:i]

		// a bare word with no '=' is not an attribute; skip it
		if key == "" || i >= n || fragment[i] != '=' {
			// consume the rest of the word so we don't loop forever
			for i < n && !isSpace(fragment[i]) {
				i++
			}
			continue
		}

		i++ // consume '='

		var value string
		if i < n && fragment[i] == '"' {
			// quoted value: runs to the first unescaped quote
			end := indexUnescaped(fragment, i+1, '"')
			if end == -1 {
				// unterminated quote: ignore the dangling pair
				break
			}
			value = unescapeQuotes(fragment[i+1 : end])
			i = end + 1
		} else {
			// unquoted value: maximal run of non-whitespace, non-quote bytes
			valStart := i
			for i < n && !isSpace(fragment[i]) && fragment[i] != '"' {
				i++
			}
			value = fragment[valStart:i]
		}

		result = result.Set(key, value)
	}

	return result
}

// SerializeAttributes is the inverse of ParseAttributes. Pairs are emitted
// in list order, separated by single spaces. A value containing whitespace
// is double-quoted with embedded quotes escaped as `\"`. Pairs with an empty
// value are omitted entirely: unset fields disappear from the token instead
// of persisting as empty attributes.
func SerializeAttributes(attrs Attrs) string {
	var b strings.Builder

	for _, attr := range attrs {
		if attr.Value == "" {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(attr.Key)
		b.WriteByte('=')

		if needsQuoting(attr.Value) {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(attr.Value, `"`, `\"`))
			b.WriteByte('"')
		} else {
			b.WriteString(attr.Value)
		}
	}

	return b.String()
}

// BuildToken assembles a bracket token from a name and attribute list,
// e.g. BuildToken("gallery", attrs) -> `[gallery title="My Photos"]`.
func BuildToken(name string, attrs Attrs) string {
	serialized := SerializeAttributes(attrs)
	if serialized == "" {
		return "[" + name + "]"
	}
	return "[" + name + " " + serialized + "]"
}

// needsQuoting reports whether a value cannot survive round-tripping as a
// bare word: anything with whitespace or an embedded quote gets quoted.
func needsQuoting(s string) bool {
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) || s[i] == '"' {
			return true
		}
	}
	return false
}

func unescapeQuotes(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}
