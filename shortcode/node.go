package shortcode

import (
	"errors"
	"fmt"
	"sync"
)

// NodeType identifies the kind of node in a materialized fragment.
type NodeType string

const (
	NodeText        NodeType = "TEXT"
	NodePlaceholder NodeType = "SHORTCODE"
)

// ErrNotSingleToken is returned by Parse when the input is not exactly one
// bracket token.
var ErrNotSingleToken = errors.New("input is not a single shortcode token")

// Node is one element of a materialized fragment: either a plain text run
// or a shortcode placeholder.
type Node interface {
	// NodeType returns the node's type, "TEXT" or "SHORTCODE".
	NodeType() NodeType

	// Serialize returns the node's persisted form: the raw text for a text
	// node, the bracket token for a placeholder. Rendered HTML never appears
	// in serialized output.
	Serialize() string
}

// Text is a plain text run between tokens.
type Text struct {
	Value string
}

func (t *Text) NodeType() NodeType { return NodeText }

func (t *Text) Serialize() string { return t.Value }

// Placeholder stands in for one token during editing. It is created
// unhydrated, receives rendered content from the hydrator, and is restored
// to its token text on serialization.
//
// A placeholder is exclusively owned by one editing session, but the
// hydrator completes requests on its own goroutine, so the mutable state is
// guarded by a mutex and hydration results are applied compare-and-set
// style against the token they were issued for.
type Placeholder struct {
	mu sync.Mutex

	// token is the exact source substring that produced this node. It only
	// changes when the editing UI rebuilds it from field values.
	token string

	name        string
	attrs       Attrs
	rendered    string
	hydrated    bool
	fieldValues map[string]string
}

// NewPlaceholder creates an unhydrated placeholder for token raw with the
// given name. Field values are seeded from the token's attributes.
func NewPlaceholder(raw, name string, attrs Attrs) *Placeholder {
	return &Placeholder{
		token:       raw,
		name:        name,
		attrs:       attrs,
		fieldValues: attrs.Map(),
	}
}

func (p *Placeholder) NodeType() NodeType { return NodePlaceholder }

// Serialize returns the original token text, never the rendered markup,
// so that reopening a page re-hydrates against current backend state.
func (p *Placeholder) Serialize() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// Token returns the node's current token string.
func (p *Placeholder) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// Name returns the token name this placeholder was created for.
func (p *Placeholder) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

// Attributes returns the attribute list parsed from the current token.
func (p *Placeholder) Attributes() Attrs {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attrs
}

// Rendered returns the hydrated markup and whether hydration has completed.
// An error fragment counts as hydrated: displaying the error is a terminal
// state, not a retry state.
func (p *Placeholder) Rendered() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rendered, p.hydrated
}

// FieldValue returns the current value for one editable field.
func (p *Placeholder) FieldValue(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.fieldValues[name]
	return v, ok
}

// SetFieldValue records an edited field value. The token itself is rebuilt
// separately, via the field registry's merge policy.
func (p *Placeholder) SetFieldValue(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fieldValues[name] = value
}

// FieldValues returns a copy of the current field values.
func (p *Placeholder) FieldValues() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	m := make(map[string]string, len(p.fieldValues))
	for k, v := range p.fieldValues {
		m[k] = v
	}
	return m
}

// SetToken replaces the node's token and resets it to the unhydrated state.
// Any hydration response issued for the previous token becomes stale and
// will be discarded by CompleteHydration.
func (p *Placeholder) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = token
	p.hydrated = false
	p.rendered = ""

	if name, attrs, err := Parse(token); err == nil {
		p.name = name
		p.attrs = attrs
	}
}

// CompleteHydration applies a hydration result, but only if the node's token
// still equals the token the request was issued for. Last writer wins: a
// slow response for an outdated token is dropped. Returns whether the
// result was applied.
func (p *Placeholder) CompleteHydration(forToken, rendered string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != forToken {
		return false
	}

	p.rendered = rendered
	p.hydrated = true
	return true
}

// Parse interprets the input as exactly one bracket token and returns its
// name and attributes. Leading/trailing text or multiple tokens fail with
// ErrNotSingleToken.
func Parse(token string) (string, Attrs, error) {
	sc := NewScanner(token)

	t, ok := sc.Next()
	if !ok || t.Pos != 0 || t.End != len(token) {
		return "", nil, fmt.Errorf("%w: %q", ErrNotSingleToken, token)
	}

	return t.Name, ParseAttributes(t.AttrFragment()), nil
}
