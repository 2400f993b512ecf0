package editor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sdeepak1/cms/hydrate"
	"github.com/sdeepak1/cms/registry"
	"github.com/sdeepak1/cms/shortcode"
)

// ErrNodeNotEditable means the backend declares no field config for the
// node's token name. The node still displays its hydrated content.
var ErrNodeNotEditable = errors.New("shortcode has no editable fields")

// Session is one page-editing session: it materializes loaded markup,
// keeps placeholders hydrated while the user edits their fields, and
// serializes back to token text on save.
type Session struct {
	registry  *registry.Registry
	hydrator  *hydrate.Hydrator
	debouncer *hydrate.Debouncer
	fragment  *shortcode.Fragment
}

func NewSession(reg *registry.Registry, hyd *hydrate.Hydrator, debounceWindow time.Duration) *Session {
	return &Session{
		registry:  reg,
		hydrator:  hyd,
		debouncer: hydrate.NewDebouncer(debounceWindow),
		fragment:  &shortcode.Fragment{},
	}
}

// Load materializes markup and hydrates every discovered token. Blocks
// until all placeholders settled; hydration failures degrade to visible
// error fragments, never to a Load error.
func (s *Session) Load(ctx context.Context, markup string) *shortcode.Fragment {
	s.fragment = shortcode.Materialize(markup)
	s.hydrator.HydrateFragment(ctx, s.fragment)
	return s.fragment
}

// Fragment returns the session's current tree.
func (s *Session) Fragment() *shortcode.Fragment {
	return s.fragment
}

// EditField applies one field edit to a placeholder: the token string is
// rebuilt through the registry's merge policy and re-hydration is scheduled
// on the trailing edge of the debounce window.
func (s *Session) EditField(ctx context.Context, node *shortcode.Placeholder, field, value string) error {
	fields, err := s.registry.GetFields(ctx, node.Name())
	if err != nil {
		if errors.Is(err, registry.ErrNoConfig) {
			return fmt.Errorf("%w: %q", ErrNodeNotEditable, node.Name())
		}
		return err
	}

	node.SetFieldValue(field, value)

	token, err := registry.BuildToken(node.Name(), fields, node.FieldValues())
	if err != nil {
		return err
	}

	node.SetToken(token)

	s.debouncer.Trigger(node, func() {
		// the edit's request context is long gone when the timer fires
		s.hydrator.HydrateNode(context.Background(), node)
	})

	return nil
}

// InsertShortcode appends a new placeholder for name, built from the
// registry's declared defaults, and hydrates it immediately.
func (s *Session) InsertShortcode(ctx context.Context, name string) (*shortcode.Placeholder, error) {
	fields, err := s.registry.GetFields(ctx, name)
	if err != nil && !errors.Is(err, registry.ErrNoConfig) {
		return nil, err
	}

	token, err := registry.BuildToken(name, fields, nil)
	if err != nil {
		return nil, err
	}

	tokenName, attrs, err := shortcode.Parse(token)
	if err != nil {
		return nil, err
	}

	node := shortcode.NewPlaceholder(token, tokenName, attrs)
	s.fragment.Nodes = append(s.fragment.Nodes, node)

	s.hydrator.HydrateNode(ctx, node)
	return node, nil
}

// RemoveNode drops a placeholder from the tree and cancels any pending
// re-hydration so the timer cannot fire on a destroyed node.
func (s *Session) RemoveNode(node *shortcode.Placeholder) {
	s.debouncer.Cancel(node)
	s.fragment.Remove(node)
}

// Save returns the persisted form of the page: token text only, no
// rendered markup.
func (s *Session) Save() string {
	return s.fragment.Serialize()
}

// Close cancels all pending re-hydrations. The session must not be used
// afterwards.
func (s *Session) Close() {
	s.debouncer.Close()
	log.Debug().Msg("editor session closed")
}
