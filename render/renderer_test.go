package render

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sdeepak1/cms/db"
	mockdb "github.com/sdeepak1/cms/db/mock"
	"github.com/sdeepak1/cms/shortcode"
	"github.com/sdeepak1/cms/tmpstore"
	mocktmpstore "github.com/sdeepak1/cms/tmpstore/mock"
)

var galleryFields = json.RawMessage(`[
	{"name": "title", "label": "Title", "type": "text"},
	{"name": "count", "label": "Count", "type": "number", "default": "4"}
]`)

func galleryDef() db.ShortcodeDef {
	return db.ShortcodeDef{
		Name:     "gallery",
		Title:    "Gallery",
		Template: `<div class="gallery" data-count="{{.count}}">{{.title}}</div>`,
		Fields:   galleryFields,
	}
}

func TestRender_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().GetShortcodeDef(gomock.Any(), "gallery").Times(1).Return(galleryDef(), nil)

	r := NewRenderer(store, nil)

	html, err := r.Render(context.Background(), `[gallery title="My Photos" count=9]`)
	require.NoError(t, err)
	require.Equal(t, `<div class="gallery" data-count="9">My Photos</div>`, html)
}

func TestRender_DefaultsFillMissingAttrs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().GetShortcodeDef(gomock.Any(), "gallery").Times(1).Return(galleryDef(), nil)

	r := NewRenderer(store, nil)

	html, err := r.Render(context.Background(), `[gallery title=X]`)
	require.NoError(t, err)
	require.Equal(t, `<div class="gallery" data-count="4">X</div>`, html)
}

func TestRender_EscapesAttributeValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().GetShortcodeDef(gomock.Any(), "gallery").Times(1).Return(galleryDef(), nil)

	r := NewRenderer(store, nil)

	html, err := r.Render(context.Background(), `[gallery title="<script>alert(1)</script>"]`)
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
}

func TestRender_NotAToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().GetShortcodeDef(gomock.Any(), gomock.Any()).Times(0)

	r := NewRenderer(store, nil)

	_, err := r.Render(context.Background(), "not a token")
	require.ErrorIs(t, err, shortcode.ErrNotSingleToken)
}

func TestRender_UnknownShortcode(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().GetShortcodeDef(gomock.Any(), "nope").Times(1).Return(db.ShortcodeDef{}, db.ErrNotFound)

	r := NewRenderer(store, nil)

	_, err := r.Render(context.Background(), "[nope]")
	require.ErrorIs(t, err, ErrUnknownShortcode)
}

func TestRender_MarkdownDefinition(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)

	def := db.ShortcodeDef{
		Name:     "note",
		Template: "**{{.text}}**",
		Markdown: true,
		Fields:   json.RawMessage(`[{"name": "text", "type": "text"}]`),
	}
	store.EXPECT().GetShortcodeDef(gomock.Any(), "note").Times(1).Return(def, nil)

	r := NewRenderer(store, nil)

	html, err := r.Render(context.Background(), "[note text=important]")
	require.NoError(t, err)
	require.Contains(t, html, "<strong>important</strong>")
}

func TestRender_CacheHitSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	cache := mocktmpstore.NewMockStore(ctrl)

	token := "[gallery count=2]"

	cache.EXPECT().GetRenderedHTML(gomock.Any(), token).Times(1).Return("<div>cached</div>", nil)
	store.EXPECT().GetShortcodeDef(gomock.Any(), gomock.Any()).Times(0)

	r := NewRenderer(store, cache)

	html, err := r.Render(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "<div>cached</div>", html)
}

func TestRender_CacheMissRendersAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	cache := mocktmpstore.NewMockStore(ctrl)

	token := "[gallery title=X]"
	expected := `<div class="gallery" data-count="4">X</div>`

	cache.EXPECT().GetRenderedHTML(gomock.Any(), token).Times(1).Return("", tmpstore.ErrCacheMiss)
	store.EXPECT().GetShortcodeDef(gomock.Any(), "gallery").Times(1).Return(galleryDef(), nil)
	cache.EXPECT().SetRenderedHTML(gomock.Any(), token, expected).Times(1).Return(nil)

	r := NewRenderer(store, cache)

	html, err := r.Render(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, expected, html)
}

func TestRender_BadTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)

	def := db.ShortcodeDef{Name: "broken", Template: "{{.unclosed"}
	store.EXPECT().GetShortcodeDef(gomock.Any(), "broken").Times(1).Return(def, nil)

	r := NewRenderer(store, nil)

	_, err := r.Render(context.Background(), "[broken]")
	require.Error(t, err)
}
