package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sdeepak1/cms/db"
)

type UpdatePageRequest struct {
	Title *string `json:"title"`
	Body  string  `json:"body"`
}

func (s *Service) updatePage(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidPageID))
		return
	}

	var req UpdatePageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if containsRenderedMarkup(req.Body) {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrRenderedMarkupInBody))
		return
	}

	arg := db.UpdatePageParams{
		ID:    id,
		Title: req.Title,
		Body:  req.Body,
	}

	page, err := s.store.UpdatePage(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrPageNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}
