package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// shortcode rendering and configs
	router.POST(ShortcodeRenderURL, service.renderShortcode)
	router.POST(ShortcodesURL, service.createShortcodeDef)
	router.GET(ShortcodeConfigURL, service.getShortcodeConfig)
	router.GET(ShortcodeConfigAllURL, service.listShortcodes)

	// public page lookup for the site frontend
	router.GET(PageBySlugURL, service.getPageBySlug)

	// page persistence
	router.POST(PagesURL, service.createPage)
	router.GET(PagesURL, service.listPages)
	router.GET(PageByIDURL, service.getPage)
	router.PUT(PageByIDURL, service.updatePage)
	router.DELETE(PageByIDURL, service.deletePage)

	// media library
	router.GET(MediaListURL, service.listMedia)
	router.POST(MediaUploadURL, service.uploadMedia)
	router.Static("/media", service.config.MediaDir)

	server.Handler = router
	service.router = router
}
