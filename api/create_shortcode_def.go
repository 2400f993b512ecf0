package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sdeepak1/cms/db"
	"github.com/sdeepak1/cms/registry"
	"github.com/sdeepak1/cms/shortcode"
)

type CreateShortcodeDefRequest struct {
	Name     string          `json:"name" binding:"required,max=64"`
	Title    string          `json:"title"`
	Template string          `json:"template" binding:"required"`
	Markdown bool            `json:"markdown"`
	Fields   json.RawMessage `json:"fields"`
}

// createShortcodeDef registers a new shortcode definition. The name must
// satisfy the token grammar, otherwise saved pages could never scan it back
// out. Any cached config and renders for the name are invalidated.
func (s *Service) createShortcodeDef(ctx *gin.Context) {
	var req CreateShortcodeDefRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if !shortcode.ValidName(req.Name) {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidShortcodeName))
		return
	}

	if len(req.Fields) > 0 {
		var fields []registry.Field
		if err := json.Unmarshal(req.Fields, &fields); err != nil {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidFieldSchema))
			return
		}
	}

	arg := db.CreateShortcodeDefParams{
		Name:     req.Name,
		Title:    req.Title,
		Template: req.Template,
		Markdown: req.Markdown,
		Fields:   req.Fields,
	}

	def, err := s.store.CreateShortcodeDef(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			ctx.JSON(http.StatusConflict, NewErrorResponse(ErrDuplicateShortcode))
			return
		}
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if s.redisStore != nil {
		if err := s.redisStore.DeleteShortcodeConfig(ctx, def.Name); err != nil {
			log.Warn().Err(err).Str("name", def.Name).Msg("failed to invalidate cached shortcode config")
		}
	}

	ctx.JSON(http.StatusOK, def)
}
