package tmpstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sdeepak1/cms/util"
)

// Different key prefixes for different use cases
const (
	RenderCachePrefix = "render:"
	ConfigCachePrefix = "sc_config:"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Store keeps short-lived derived data between requests: rendered shortcode
// fragments and fetched field configs. Everything in here is rebuildable,
// so a cold or unreachable redis only costs latency.
type Store interface {
	SetRenderedHTML(ctx context.Context, token string, html string) error
	GetRenderedHTML(ctx context.Context, token string) (string, error)
	DeleteRenderedHTML(ctx context.Context, token string) error
	SetShortcodeConfig(ctx context.Context, name string, data []byte) error
	GetShortcodeConfig(ctx context.Context, name string) ([]byte, error)
	DeleteShortcodeConfig(ctx context.Context, name string) error
}

type RedisStore struct {
	client    *redis.Client
	renderTTL time.Duration
	configTTL time.Duration
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{
		client:    rdb,
		renderTTL: config.RenderCacheTTL,
		configTTL: config.ConfigCacheTTL,
	}
}

// SetRenderedHTML caches the server-rendered markup for one token string.
// The token itself is the key, so any edit producing a new token naturally
// misses the cache.
func (store *RedisStore) SetRenderedHTML(ctx context.Context, token string, html string) error {
	key := RenderCachePrefix + token
	return store.client.Set(ctx, key, html, store.renderTTL).Err()
}

// GetRenderedHTML returns cached markup for a token.
// Returns ErrCacheMiss if absent or expired.
func (store *RedisStore) GetRenderedHTML(ctx context.Context, token string) (string, error) {
	key := RenderCachePrefix + token

	html, err := store.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cached render: %w", err)
	}

	return html, nil
}

// DeleteRenderedHTML drops one cached render. Used when a shortcode
// definition changes and its stale renders must not be served.
func (store *RedisStore) DeleteRenderedHTML(ctx context.Context, token string) error {
	key := RenderCachePrefix + token
	return store.client.Del(ctx, key).Err()
}

// SetShortcodeConfig caches the JSON-encoded field config for a token name.
func (store *RedisStore) SetShortcodeConfig(ctx context.Context, name string, data []byte) error {
	key := ConfigCachePrefix + name
	return store.client.Set(ctx, key, data, store.configTTL).Err()
}

// GetShortcodeConfig returns the cached JSON config for a token name.
// Returns ErrCacheMiss if absent or expired.
func (store *RedisStore) GetShortcodeConfig(ctx context.Context, name string) ([]byte, error) {
	key := ConfigCachePrefix + name

	data, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached shortcode config: %w", err)
	}

	return data, nil
}

// DeleteShortcodeConfig drops one cached config.
func (store *RedisStore) DeleteShortcodeConfig(ctx context.Context, name string) error {
	key := ConfigCachePrefix + name
	return store.client.Del(ctx, key).Err()
}
