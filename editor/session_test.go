package editor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sdeepak1/cms/hydrate"
	"github.com/sdeepak1/cms/registry"
)

var testConfigs = map[string]*registry.Config{
	"gallery": {
		Title: "Gallery",
		Fields: []registry.Field{
			{Name: "title", Label: "Title", Type: registry.FieldText},
			{Name: "count", Label: "Count", Type: registry.FieldNumber, Default: "4"},
		},
	},
	"divider": {Fields: []registry.Field{}},
}

func fakeConfigFetch(ctx context.Context, name string) (*registry.Config, error) {
	return testConfigs[name], nil
}

func echoRender(ctx context.Context, token string) (string, error) {
	return "<r>" + token + "</r>", nil
}

func newTestSession(render hydrate.RenderFunc) *Session {
	return NewSession(
		registry.NewRegistry(fakeConfigFetch, nil),
		hydrate.NewHydrator(render),
		10*time.Millisecond,
	)
}

func TestSession_LoadHydratesAllTokens(t *testing.T) {
	s := newTestSession(echoRender)
	defer s.Close()

	f := s.Load(context.Background(), "a [gallery count=2] b [divider] c")

	placeholders := f.Placeholders()
	require.Len(t, placeholders, 2)

	for _, p := range placeholders {
		rendered, hydrated := p.Rendered()
		require.True(t, hydrated)
		require.Contains(t, rendered, p.Token())
	}
}

func TestSession_LoadSurvivesBackendFailure(t *testing.T) {
	s := newTestSession(func(ctx context.Context, token string) (string, error) {
		return "", errors.New("backend down")
	})
	defer s.Close()

	f := s.Load(context.Background(), "x [gallery] y")

	p := f.Placeholders()[0]
	rendered, hydrated := p.Rendered()
	require.True(t, hydrated)
	require.Contains(t, rendered, "Error loading")

	// the page stays editable and saveable
	require.Equal(t, "x [gallery] y", s.Save())
}

func TestSession_EditFieldRebuildsTokenAndRehydrates(t *testing.T) {
	var renders atomic.Int32
	s := newTestSession(func(ctx context.Context, token string) (string, error) {
		renders.Add(1)
		return "<r>" + token + "</r>", nil
	})
	defer s.Close()

	f := s.Load(context.Background(), "[gallery count=2]")
	p := f.Placeholders()[0]
	require.Equal(t, int32(1), renders.Load())

	err := s.EditField(context.Background(), p, "title", "My Photos")
	require.NoError(t, err)

	// merge policy: edited title, edited count kept, field order from config
	require.Equal(t, `[gallery title="My Photos" count=2]`, p.Token())

	// re-hydration fires on the trailing edge of the debounce window
	require.Eventually(t, func() bool {
		rendered, hydrated := p.Rendered()
		return hydrated && rendered == `<r>[gallery title="My Photos" count=2]</r>`
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, `[gallery title="My Photos" count=2]`, s.Save())
}

func TestSession_RapidEditsCoalesce(t *testing.T) {
	var renders atomic.Int32
	s := newTestSession(func(ctx context.Context, token string) (string, error) {
		renders.Add(1)
		return "<r>" + token + "</r>", nil
	})
	defer s.Close()

	f := s.Load(context.Background(), "[gallery]")
	p := f.Placeholders()[0]
	require.Equal(t, int32(1), renders.Load())

	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, s.EditField(context.Background(), p, "count", v))
	}

	require.Eventually(t, func() bool {
		_, hydrated := p.Rendered()
		return hydrated
	}, time.Second, 5*time.Millisecond)

	// three edits, one debounced render
	require.Equal(t, int32(2), renders.Load())
	require.Equal(t, "[gallery count=3]", p.Token())
}

func TestSession_EditFieldNoConfig(t *testing.T) {
	s := newTestSession(echoRender)
	defer s.Close()

	f := s.Load(context.Background(), "[mystery a=1]")
	p := f.Placeholders()[0]

	err := s.EditField(context.Background(), p, "a", "2")
	require.ErrorIs(t, err, ErrNodeNotEditable)

	// the token is untouched and the node keeps displaying
	require.Equal(t, "[mystery a=1]", p.Token())
}

func TestSession_InsertShortcodeUsesDefaults(t *testing.T) {
	s := newTestSession(echoRender)
	defer s.Close()

	s.Load(context.Background(), "intro ")

	node, err := s.InsertShortcode(context.Background(), "gallery")
	require.NoError(t, err)
	require.Equal(t, "[gallery count=4]", node.Token())

	rendered, hydrated := node.Rendered()
	require.True(t, hydrated)
	require.Equal(t, "<r>[gallery count=4]</r>", rendered)

	require.Equal(t, "intro [gallery count=4]", s.Save())
}

func TestSession_InsertShortcodeInvalidName(t *testing.T) {
	s := newTestSession(echoRender)
	defer s.Close()

	_, err := s.InsertShortcode(context.Background(), "bad name")
	require.ErrorIs(t, err, registry.ErrInvalidName)
}

func TestSession_RemoveNodeCancelsPendingHydration(t *testing.T) {
	var renders atomic.Int32
	s := newTestSession(func(ctx context.Context, token string) (string, error) {
		renders.Add(1)
		return "<r></r>", nil
	})
	defer s.Close()

	f := s.Load(context.Background(), "[gallery] tail")
	p := f.Placeholders()[0]
	require.Equal(t, int32(1), renders.Load())

	require.NoError(t, s.EditField(context.Background(), p, "count", "9"))
	s.RemoveNode(p)

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int32(1), renders.Load(), "debounced hydration must not fire for a removed node")

	require.Equal(t, " tail", s.Save())
}

func TestSession_SaveNeverContainsRenderedMarkup(t *testing.T) {
	s := newTestSession(func(ctx context.Context, token string) (string, error) {
		return "<div class=\"server-rendered\">big blob</div>", nil
	})
	defer s.Close()

	s.Load(context.Background(), "a [gallery count=2] b")

	saved := s.Save()
	require.Equal(t, "a [gallery count=2] b", saved)
	require.NotContains(t, saved, "server-rendered")
}
