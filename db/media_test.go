package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestMediaAsset(t *testing.T) MediaAsset {
	asset, err := testStore.CreateMediaAsset(context.Background(), CreateMediaAssetParams{
		FileName:    "photo.jpg",
		StoragePath: uuid.New().String() + ".jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1234,
	})
	require.NoError(t, err)
	require.NotEmpty(t, asset.ID)
	require.Equal(t, "photo.jpg", asset.FileName)
	require.NotZero(t, asset.CreatedAt)

	return asset
}

func TestCreateMediaAsset(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	createTestMediaAsset(t)
}

func TestListMediaAssets(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	created := createTestMediaAsset(t)

	assets, err := testStore.ListMediaAssets(context.Background(), ListMediaAssetsParams{Limit: 50, Offset: 0})
	require.NoError(t, err)
	require.NotEmpty(t, assets)

	found := false
	for _, asset := range assets {
		if asset.ID == created.ID {
			found = true
			require.Equal(t, created.StoragePath, asset.StoragePath)
		}
	}
	require.True(t, found)
}
