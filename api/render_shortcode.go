package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdeepak1/cms/render"
	"github.com/sdeepak1/cms/shortcode"
)

type RenderShortcodeRequest struct {
	Shortcode string `json:"shortcode" binding:"required"`
}

type RenderShortcodeResponse struct {
	HTML string `json:"html"`
}

// renderShortcode renders exactly one bracket token to HTML.
func (s *Service) renderShortcode(ctx *gin.Context) {
	var req RenderShortcodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	html, err := s.renderer.Render(ctx, req.Shortcode)
	if err != nil {
		switch {
		case errors.Is(err, shortcode.ErrNotSingleToken):
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidShortcodeToken))
		case errors.Is(err, render.ErrUnknownShortcode):
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrUnknownShortcode))
		default:
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, RenderShortcodeResponse{HTML: html})
}
