package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdeepak1/cms/db"
)

// getPageBySlug is the public page lookup used by the site frontend. The
// body is served as stored: token text the frontend materializes and
// hydrates.
func (s *Service) getPageBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	page, err := s.store.GetPageBySlug(ctx, slug)
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
