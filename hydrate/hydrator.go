package hydrate

import (
	"context"
	"html"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/sdeepak1/cms/shortcode"
)

// RenderFunc asks the backend for the rendered markup of one token.
// The HTTP implementation lives in the client package; tests inject fakes.
type RenderFunc func(ctx context.Context, token string) (string, error)

// Hydrator fills placeholder nodes with server-rendered markup.
type Hydrator struct {
	render RenderFunc
}

func NewHydrator(render RenderFunc) *Hydrator {
	return &Hydrator{render: render}
}

// ErrorFragment is the markup shown for a token whose hydration failed.
// The token string is user-derived and always escaped before embedding.
func ErrorFragment(token string) string {
	return `<span class="shortcode-error">Error loading ` + html.EscapeString(token) + `</span>`
}

// LoadingFragment is the markup shown while a token's hydration is pending.
func LoadingFragment(token string) string {
	return `<span class="shortcode-loading">Loading ` + html.EscapeString(token) + `...</span>`
}

// HydrateNode requests rendered markup for the node's current token and
// applies it last-writer-wins: if the token changed while the request was in
// flight, the response is discarded. Failures are node-local; the node ends
// up hydrated with an error fragment instead of an error being returned.
func (h *Hydrator) HydrateNode(ctx context.Context, node *shortcode.Placeholder) {
	token := node.Token()

	rendered, err := h.render(ctx, token)
	if err != nil {
		log.Error().Err(err).Str("token", token).Msg("shortcode hydration failed")
		rendered = ErrorFragment(token)
	}

	if !node.CompleteHydration(token, rendered) {
		log.Debug().Str("token", token).Msg("discarding stale hydration response")
	}
}

// HydrateFragment hydrates every placeholder in the fragment. Requests for
// distinct nodes are independent and run concurrently; one node's failure
// never aborts its siblings, so this blocks until all nodes settled and
// never returns an error.
func (h *Hydrator) HydrateFragment(ctx context.Context, f *shortcode.Fragment) {
	var wg sync.WaitGroup

	for _, node := range f.Placeholders() {
		node := node
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.HydrateNode(ctx, node)
		}()
	}

	wg.Wait()
}
