package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"

	"github.com/sdeepak1/cms/db"
	"github.com/sdeepak1/cms/registry"
	"github.com/sdeepak1/cms/shortcode"
	"github.com/sdeepak1/cms/tmpstore"
)

// ErrUnknownShortcode means no definition exists for the token's name.
var ErrUnknownShortcode = errors.New("unknown shortcode")

// Renderer turns one bracket token into HTML using the definition stored
// for its name: field defaults overlaid with the token's attributes are fed
// into the definition's template, with an optional markdown pass for
// definitions that produce markdown instead of HTML.
type Renderer struct {
	store db.Store
	cache tmpstore.Store
	md    goldmark.Markdown
}

// NewRenderer creates a Renderer. cache may be nil, in which case every
// render executes the template.
func NewRenderer(store db.Store, cache tmpstore.Store) *Renderer {
	return &Renderer{
		store: store,
		cache: cache,
		md:    goldmark.New(),
	}
}

// Render renders token to HTML. The token string must be exactly one
// well-formed bracket token.
func (r *Renderer) Render(ctx context.Context, token string) (string, error) {
	name, attrs, err := shortcode.Parse(token)
	if err != nil {
		return "", err
	}

	if r.cache != nil {
		if html, err := r.cache.GetRenderedHTML(ctx, token); err == nil {
			return html, nil
		}
	}

	def, err := r.store.GetShortcodeDef(ctx, name)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", fmt.Errorf("%w: %q", ErrUnknownShortcode, name)
		}
		return "", err
	}

	html, err := r.execute(def, attrs)
	if err != nil {
		return "", fmt.Errorf("failed to render %q: %w", name, err)
	}

	if r.cache != nil {
		if err := r.cache.SetRenderedHTML(ctx, token, html); err != nil {
			log.Warn().Err(err).Str("token", token).Msg("failed to cache rendered shortcode")
		}
	}

	return html, nil
}

func (r *Renderer) execute(def db.ShortcodeDef, attrs shortcode.Attrs) (string, error) {
	tmpl, err := template.New(def.Name).Parse(def.Template)
	if err != nil {
		return "", fmt.Errorf("bad template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateParams(def, attrs)); err != nil {
		return "", fmt.Errorf("template execution: %w", err)
	}

	if !def.Markdown {
		return buf.String(), nil
	}

	// the definition produces markdown; convert it to HTML
	var out bytes.Buffer
	if err := r.md.Convert(buf.Bytes(), &out); err != nil {
		return "", fmt.Errorf("markdown conversion: %w", err)
	}

	return out.String(), nil
}

// templateParams overlays the token's attributes onto the definition's
// field defaults. Attributes not declared as fields still pass through.
func templateParams(def db.ShortcodeDef, attrs shortcode.Attrs) map[string]string {
	params := make(map[string]string)

	var fields []registry.Field
	if len(def.Fields) > 0 {
		if err := json.Unmarshal(def.Fields, &fields); err != nil {
			log.Warn().Err(err).Str("name", def.Name).Msg("corrupt field schema on shortcode definition")
		}
	}

	for _, field := range fields {
		if field.Default != "" {
			params[field.Name] = field.Default
		}
	}

	for _, attr := range attrs {
		params[attr.Key] = attr.Value
	}

	return params
}
