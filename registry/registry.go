package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sdeepak1/cms/shortcode"
)

var (
	// ErrInvalidName means the token name fails the grammar. It is raised
	// locally, before any network call is made.
	ErrInvalidName = errors.New("invalid shortcode name")

	// ErrNoConfig means the backend has no editable config for the name.
	// The token can still be hydrated for display; only the editing-field
	// generation is skipped.
	ErrNoConfig = errors.New("no editable config for shortcode")
)

// FieldType enumerates the supported editable control kinds.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldSelect FieldType = "select"
)

// Field describes one editable attribute of a token's config.
type Field struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Type    FieldType `json:"type"`
	Default string    `json:"default,omitempty"`
	Options []string  `json:"options,omitempty"`
}

// Config is the backend-declared editing schema for one token name. It is
// shared read-only across all placeholders of that name within a session.
type Config struct {
	Title  string  `json:"title,omitempty"`
	Fields []Field `json:"fields"`
}

// ConfigFunc fetches the config for one token name. The HTTP implementation
// lives in the client package; a nil *Config with nil error means the
// backend knows no config for the name.
type ConfigFunc func(ctx context.Context, name string) (*Config, error)

// ConfigCache is the read-shared cache for fetched configs. Implemented by
// tmpstore; the registry works without one.
type ConfigCache interface {
	GetShortcodeConfig(ctx context.Context, name string) ([]byte, error)
	SetShortcodeConfig(ctx context.Context, name string, data []byte) error
}

// Registry maps token names to their field definitions.
type Registry struct {
	fetch ConfigFunc
	cache ConfigCache
}

func NewRegistry(fetch ConfigFunc, cache ConfigCache) *Registry {
	return &Registry{fetch: fetch, cache: cache}
}

// GetConfig returns the config for a token name, consulting the cache
// first. Invalid names are rejected without any fetch.
func (r *Registry) GetConfig(ctx context.Context, name string) (*Config, error) {
	if !shortcode.ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if r.cache != nil {
		if config, ok := r.cachedConfig(ctx, name); ok {
			return config, nil
		}
	}

	config, err := r.fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch config for %q: %w", name, err)
	}

	if config == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoConfig, name)
	}

	if r.cache != nil {
		r.storeConfig(ctx, name, config)
	}

	return config, nil
}

// GetFields returns the field definitions for a token name.
func (r *Registry) GetFields(ctx context.Context, name string) ([]Field, error) {
	config, err := r.GetConfig(ctx, name)
	if err != nil {
		return nil, err
	}
	return config.Fields, nil
}

// BuildToken rebuilds a token string from edited field values. For each
// field, in declared order: the edited value if present and non-empty,
// otherwise the field's default, otherwise the attribute is omitted.
func BuildToken(name string, fields []Field, values map[string]string) (string, error) {
	if !shortcode.ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	var attrs shortcode.Attrs
	for _, field := range fields {
		value, ok := values[field.Name]
		if !ok || value == "" {
			value = field.Default
		}
		if value == "" {
			continue
		}
		attrs = attrs.Set(field.Name, value)
	}

	return shortcode.BuildToken(name, attrs), nil
}

// LoadPalette filters the /admin/shortcodes/all mapping down to entries
// whose key passes the name grammar. Invalid keys are dropped, not
// registered.
func LoadPalette(all map[string]Config) map[string]Config {
	palette := make(map[string]Config, len(all))
	for name, config := range all {
		if !shortcode.ValidName(name) {
			log.Warn().Str("name", name).Msg("rejecting shortcode with invalid name")
			continue
		}
		palette[name] = config
	}
	return palette
}
