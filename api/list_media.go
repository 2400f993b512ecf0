package api

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/sdeepak1/cms/db"
)

type MediaAssetResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

func newMediaAssetResponse(asset db.MediaAsset) MediaAssetResponse {
	return MediaAssetResponse{
		ID:          asset.ID.String(),
		FileName:    asset.FileName,
		URL:         path.Join("/media", asset.StoragePath),
		ContentType: asset.ContentType,
		SizeBytes:   asset.SizeBytes,
	}
}

type ListMediaRequest struct {
	PageID   int32 `form:"page_id,default=1" binding:"min=1"`
	PageSize int32 `form:"page_size,default=50" binding:"min=1,max=200"`
}

type ListMediaResponse struct {
	Assets []MediaAssetResponse `json:"assets"`
}

func (s *Service) listMedia(ctx *gin.Context) {
	var req ListMediaRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	arg := db.ListMediaAssetsParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	}

	assets, err := s.store.ListMediaAssets(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	resp := ListMediaResponse{Assets: make([]MediaAssetResponse, 0, len(assets))}
	for _, asset := range assets {
		resp.Assets = append(resp.Assets, newMediaAssetResponse(asset))
	}

	ctx.JSON(http.StatusOK, resp)
}
