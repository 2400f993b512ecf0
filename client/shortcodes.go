package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/sdeepak1/cms/registry"
)

// Render asks the backend to render one token. Satisfies hydrate.RenderFunc.
func (c *Client) Render(ctx context.Context, token string) (string, error) {
	body, err := c.post(ctx, "/shortcode/render", map[string]string{
		"shortcode": token,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("malformed render response: %w", err)
	}

	return resp.HTML, nil
}

// GetConfig fetches the field config for one token name. Satisfies
// registry.ConfigFunc: a 404 maps to (nil, nil), meaning the backend has no
// editable config for the name — the token can still be hydrated.
func (c *Client) GetConfig(ctx context.Context, name string) (*registry.Config, error) {
	body, err := c.get(ctx, "/admin/shortcodes/"+url.PathEscape(name)+"/config")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			return nil, nil
		}
		return nil, err
	}

	var config registry.Config
	if err := json.Unmarshal(body, &config); err != nil {
		return nil, fmt.Errorf("malformed config response: %w", err)
	}

	return &config, nil
}

// GetAllConfigs fetches the full token-name → config mapping used to
// populate the insertable-block palette.
func (c *Client) GetAllConfigs(ctx context.Context) (map[string]registry.Config, error) {
	body, err := c.get(ctx, "/admin/shortcodes/all")
	if err != nil {
		return nil, err
	}

	var all map[string]registry.Config
	if err := json.Unmarshal(body, &all); err != nil {
		return nil, fmt.Errorf("malformed shortcode list response: %w", err)
	}

	return all, nil
}
