package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MediaAsset is one entry of the media picker grid.
type MediaAsset struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// ListMedia fetches the media library listing.
func (c *Client) ListMedia(ctx context.Context) ([]MediaAsset, error) {
	body, err := c.get(ctx, "/admin/media/list")
	if err != nil {
		return nil, err
	}

	var resp struct {
		Assets []MediaAsset `json:"assets"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed media list response: %w", err)
	}

	return resp.Assets, nil
}

// UploadMedia uploads one file as multipart form data and returns the
// stored asset.
func (c *Client) UploadMedia(ctx context.Context, fileName string, content io.Reader) (*MediaAsset, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/media/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var asset MediaAsset
	if err := json.Unmarshal(respBody, &asset); err != nil {
		return nil, fmt.Errorf("malformed upload response: %w", err)
	}

	return &asset, nil
}
