package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sdeepak1/cms/db"
)

// uploadMedia stores one multipart file under a fresh UUID name and records
// it in the media library. The original file name is kept only as metadata.
func (s *Service) uploadMedia(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, s.config.MaxUploadBytes)

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrMissingFile))
		return
	}

	if file.Size > s.config.MaxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrFileTooLarge))
		return
	}

	storageName := uuid.New().String() + filepath.Ext(file.Filename)
	if err := ctx.SaveUploadedFile(file, filepath.Join(s.config.MediaDir, storageName)); err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	arg := db.CreateMediaAssetParams{
		FileName:    filepath.Base(file.Filename),
		StoragePath: storageName,
		ContentType: file.Header.Get("Content-Type"),
		SizeBytes:   file.Size,
	}

	asset, err := s.store.CreateMediaAsset(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, newMediaAssetResponse(asset))
}
