package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sdeepak1/cms/shortcode"
)

// listShortcodes serves the full name → config mapping for the builder's
// block palette. Definitions whose names fall outside the token grammar are
// skipped: the builder could never scan them back out of a page body.
func (s *Service) listShortcodes(ctx *gin.Context) {
	defs, err := s.store.ListShortcodeDefs(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	configs := make(map[string]ShortcodeConfigResponse, len(defs))
	for _, def := range defs {
		if !shortcode.ValidName(def.Name) {
			log.Warn().Str("name", def.Name).Msg("skipping shortcode definition with invalid name")
			continue
		}
		configs[def.Name] = newShortcodeConfigResponse(def)
	}

	ctx.JSON(http.StatusOK, configs)
}
