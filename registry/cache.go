package registry

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// cachedConfig returns a config from the cache. Cache problems are treated
// as misses: the registry must keep working when redis is down.
func (r *Registry) cachedConfig(ctx context.Context, name string) (*Config, bool) {
	data, err := r.cache.GetShortcodeConfig(ctx, name)
	if err != nil {
		return nil, false
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.Warn().Err(err).Str("name", name).Msg("corrupt cached shortcode config")
		return nil, false
	}

	return &config, true
}

func (r *Registry) storeConfig(ctx context.Context, name string, config *Config) {
	data, err := json.Marshal(config)
	if err != nil {
		return
	}

	if err := r.cache.SetShortcodeConfig(ctx, name, data); err != nil {
		log.Warn().Err(err).Str("name", name).Msg("failed to cache shortcode config")
	}
}
