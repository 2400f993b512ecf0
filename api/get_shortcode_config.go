package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdeepak1/cms/db"
	"github.com/sdeepak1/cms/shortcode"
)

type ShortcodeConfigResponse struct {
	Title  string          `json:"title"`
	Fields json.RawMessage `json:"fields"`
}

func newShortcodeConfigResponse(def db.ShortcodeDef) ShortcodeConfigResponse {
	fields := def.Fields
	if len(fields) == 0 {
		fields = json.RawMessage("[]")
	}
	return ShortcodeConfigResponse{Title: def.Title, Fields: fields}
}

// getShortcodeConfig serves the editable field schema for one token name.
// Names outside the token grammar are rejected before touching the store.
func (s *Service) getShortcodeConfig(ctx *gin.Context) {
	name := ctx.Param("name")

	if !shortcode.ValidName(name) {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidShortcodeName))
		return
	}

	def, err := s.store.GetShortcodeDef(ctx, name)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrUnknownShortcode))
			return
		}
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, newShortcodeConfigResponse(def))
}
