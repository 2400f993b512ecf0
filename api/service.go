package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sdeepak1/cms/db"
	"github.com/sdeepak1/cms/render"
	"github.com/sdeepak1/cms/tmpstore"
	"github.com/sdeepak1/cms/util"
)

const (
	// api routes
	ShortcodeRenderURL    = "/shortcode/render"
	ShortcodesURL         = "/admin/shortcodes"
	ShortcodeConfigURL    = "/admin/shortcodes/:name/config"
	ShortcodeConfigAllURL = "/admin/shortcodes/all"
	PagesURL              = "/admin/pages"
	PageByIDURL           = "/admin/pages/:id"
	PageBySlugURL         = "/pages/:slug"
	MediaListURL          = "/admin/media/list"
	MediaUploadURL        = "/admin/media/upload"
)

var (
	// api errors
	ErrInvalidParams         = errors.New("invalid params")
	ErrInvalidShortcodeToken = errors.New("body must contain exactly one shortcode token")
	ErrInvalidShortcodeName  = errors.New("invalid shortcode name")
	ErrInvalidFieldSchema    = errors.New("invalid field schema")
	ErrUnknownShortcode      = errors.New("unknown shortcode")
	ErrDuplicateShortcode    = errors.New("shortcode name already taken")
	ErrInvalidPageID         = errors.New("invalid page id")
	ErrPageNotFound          = errors.New("page not found")
	ErrDuplicateSlug         = errors.New("page slug already taken")
	ErrRenderedMarkupInBody  = errors.New("page body must not contain rendered shortcode markup")
	ErrFileTooLarge          = errors.New("uploaded file is too large")
	ErrMissingFile           = errors.New("missing file form field")
)

type Service struct {
	config     util.Config
	store      db.Store
	redisStore tmpstore.Store
	renderer   *render.Renderer
	server     *http.Server
	router     http.Handler
}

// Returns new service instance with provided config, store and renderer.
func NewService(
	config util.Config,
	store db.Store,
	rs tmpstore.Store,
	renderer *render.Renderer,
) (*Service, error) {

	service := &Service{
		config:     config,
		store:      store,
		redisStore: rs,
		renderer:   renderer,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time spent writing the response
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
