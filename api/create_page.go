package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sdeepak1/cms/db"
)

// renderedMarkupMarker is the prefix of the builder's placeholder markup.
// A body containing it means the client serialized rendered HTML instead of
// token text; persisting it would corrupt the page.
const renderedMarkupMarker = `<span class="shortcode-`

func containsRenderedMarkup(body string) bool {
	return strings.Contains(body, renderedMarkupMarker)
}

type CreatePageRequest struct {
	Slug  string  `json:"slug" binding:"required,max=128"`
	Title *string `json:"title"`
	Body  string  `json:"body"`
}

func (s *Service) createPage(ctx *gin.Context) {
	var req CreatePageRequest
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

	arg := db.CreatePageParams{
		Slug:  req.Slug,
		Title: req.Title,
		Body:  req.Body,
	}

	page, err := s.store.CreatePage(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			ctx.JSON(http.StatusConflict, NewErrorResponse(ErrDuplicateSlug))
			return
		}
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}
