package shortcode

import "strings"

// Fragment is the materialized form of one text run: an ordered list of
// text nodes and shortcode placeholders.
type Fragment struct {
	Nodes []Node
}

// Materialize scans text and replaces every token span with a Placeholder
// node, keeping non-token spans as Text nodes. It performs no I/O and is
// deterministic: the same input always yields an isomorphic fragment, with
// placeholders in left-to-right source order.
func Materialize(text string) *Fragment {
	f := &Fragment{}

	pos := 0
	sc := NewScanner(text)

	for {
		token, ok := sc.Next()
		if !ok {
			break
		}

		if token.Pos > pos {
			f.Nodes = append(f.Nodes, &Text{Value: text[pos:token.Pos]})
		}

		attrs := ParseAttributes(token.AttrFragment())
		f.Nodes = append(f.Nodes, NewPlaceholder(token.Raw, token.Name, attrs))

		pos = token.End
	}

	if pos < len(text) {
		f.Nodes = append(f.Nodes, &Text{Value: text[pos:]})
	}

	return f
}

// Serialize is the inverse of Materialize: every placeholder contributes its
// original token text and every text node its raw value. Rendered markup is
// never emitted, so the persisted form of a page always re-triggers
// hydration on the next load.
func (f *Fragment) Serialize() string {
	var b strings.Builder
	for _, node := range f.Nodes {
		b.WriteString(node.Serialize())
	}
	return b.String()
}

// Placeholders returns the fragment's placeholder nodes in document order.
func (f *Fragment) Placeholders() []*Placeholder {
	var result []*Placeholder
	for _, node := range f.Nodes {
		if p, ok := node.(*Placeholder); ok {
			result = append(result, p)
		}
	}
	return result
}

// Remove deletes a node from the fragment. Removing a node that is not part
// of the fragment is a no-op.
func (f *Fragment) Remove(node Node) {
	for i, n := range f.Nodes {
		if n == node {
			f.Nodes = append(f.Nodes[:i], f.Nodes[i+1:]...)
			return
		}
	}
}
