package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MediaAsset is one uploaded file served to the builder's media picker.
type MediaAsset struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	StoragePath string    `json:"storage_path"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateMediaAssetParams struct {
	FileName    string
	StoragePath string
	ContentType string
	SizeBytes   int64
}

const createMediaAsset = `
INSERT INTO media_assets (id, file_name, storage_path, content_type, size_bytes)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, file_name, storage_path, content_type, size_bytes, created_at
`

func (s *SQLStore) CreateMediaAsset(ctx context.Context, arg CreateMediaAssetParams) (MediaAsset, error) {
	var asset MediaAsset

	row := s.connPool.QueryRow(ctx, createMediaAsset,
		uuid.New(),
		arg.FileName,
		arg.StoragePath,
		arg.ContentType,
		arg.SizeBytes,
	)

	err := row.Scan(&asset.ID, &asset.FileName, &asset.StoragePath, &asset.ContentType, &asset.SizeBytes, &asset.CreatedAt)
	if err != nil {
		return MediaAsset{}, fmt.Errorf("failed to create media asset: %w", err)
	}

	return asset, nil
}

type ListMediaAssetsParams struct {
	Limit  int32
	Offset int32
}

const listMediaAssets = `
SELECT id, file_name, storage_path, content_type, size_bytes, created_at
FROM media_assets
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

func (s *SQLStore) ListMediaAssets(ctx context.Context, arg ListMediaAssetsParams) ([]MediaAsset, error) {
	rows, err := s.connPool.Query(ctx, listMediaAssets, arg.Limit, arg.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list media assets: %w", err)
	}
	defer rows.Close()

	var assets []MediaAsset
	for rows.Next() {
		var asset MediaAsset
		if err := rows.Scan(&asset.ID, &asset.FileName, &asset.StoragePath, &asset.ContentType, &asset.SizeBytes, &asset.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan media asset row: %w", err)
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}
