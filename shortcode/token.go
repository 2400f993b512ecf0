package shortcode

import "strings"

// Token represents a single bracket token found in a text run,
// e.g. "[gallery count=4]".
type Token struct {
	// Name is the token name right after the opening bracket,
	// e.g. "gallery" for "[gallery count=4]".
	Name string

	// Raw is the exact source substring, brackets included.
	Raw string

	// Pos is the starting byte position of the token in the scanned text.
	//
	// WARNING: This is a byte offset, not a rune index. It matters when
	// the surrounding text contains non-ASCII characters.
	Pos int

	// End is the byte offset just past the closing bracket,
	// so that text[Pos:End] == Raw.
	End int
}

// AttrFragment returns the substring between the token name and the closing
// bracket, with surrounding whitespace intact. It is empty for "[name]".
func (t Token) AttrFragment() string {
	inner := t.Raw[1 : len(t.Raw)-1]
	return inner[len(t.Name):]
}

// isNameByte reports whether b belongs to the token name grammar
// [A-Za-z0-9_:-].
func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_' || b == ':' || b == '-'
}

// ValidName reports whether s is a well-formed token name.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return true
}

// Scanner walks a text run left to right and yields non-overlapping tokens.
// Scanning never fails: anything that does not match the grammar is simply
// skipped over as plain text.
type Scanner struct {
	text string
	pos  int
}

// NewScanner returns a Scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Reset restarts the Scanner at the beginning of its input.
func (s *Scanner) Reset() {
	s.pos = 0
}

// Next returns the next token and ok = true, or a zero Token and ok = false
// once the input is exhausted.
func (s *Scanner) Next() (token Token, ok bool) {
	n := len(s.text)

	for s.pos < n {
		// find the next opening bracket
		rel := strings.IndexByte(s.text[s.pos:], '[')
		if rel == -1 {
			s.pos = n
			return
		}

		start := s.pos + rel

		// scan the name directly after '['
		nameEnd := start + 1
		for nameEnd < n && isNameByte(s.text[nameEnd]) {
			nameEnd++
		}

		// empty name: "[ ..." or "[]" is plain text
		if nameEnd == start+1 {
			s.pos = start + 1
			continue
		}

		// after the name there must be either the closing bracket or
		// whitespace before the attribute fragment
		if nameEnd < n && s.text[nameEnd] != ']' && !isSpace(s.text[nameEnd]) {
			s.pos = start + 1
			continue
		}

		// the first unescaped ']' terminates the token; nesting is not supported
		close := indexUnescaped(s.text, nameEnd, ']')
		if close == -1 {
			// unterminated bracket: the rest of the run is plain text
			s.pos = n
			return
		}

		end := close + 1

		token = Token{
			Name: s.text[start+1 : nameEnd],
			Raw:  s.text[start:end],
			Pos:  start,
			End:  end,
		}

		s.pos = end
		ok = true
		return
	}

	return
}

// Scan collects every token in text in left-to-right order.
func Scan(text string) []Token {
	var result []Token

	sc := NewScanner(text)
	for {
		token, ok := sc.Next()
		if !ok {
			return result
		}
		result = append(result, token)
	}
}

// indexUnescaped returns the byte offset of the first occurrence of c at or
// after from which is not preceded by a backslash, or -1.
func indexUnescaped(s string, from int, c byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == c && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
