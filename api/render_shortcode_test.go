package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sdeepak1/cms/db"
	mockdb "github.com/sdeepak1/cms/db/mock"
)

func TestRenderShortcode(t *testing.T) {
	galleryDef := db.ShortcodeDef{
		Name:     "gallery",
		Title:    "Gallery",
		Template: `<div class="gallery" data-count="{{.count}}"></div>`,
		Fields:   json.RawMessage(`[{"name": "count", "label": "Count", "type": "number", "default": "4"}]`),
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "EmptyBody",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetShortcodeDef(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidParams.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "shortcode", res.Fields[0].FieldName)
				require.Equal(t, getBindingErrorMessage("required"), res.Fields[0].ErrorMessage)
			},
		},
		{
			name: "NotAToken",
			body: gin.H{"shortcode": "just some text"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetShortcodeDef(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidShortcodeToken.Error(), res.Error)
			},
		},
		{
			name: "MultipleTokens",
			body: gin.H{"shortcode": "[gallery][divider]"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetShortcodeDef(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidShortcodeToken.Error(), res.Error)
			},
		},
		{
			name: "UnknownShortcode",
			body: gin.H{"shortcode": "[mystery]"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetShortcodeDef(gomock.Any(), gomock.Eq("mystery")).
					Times(1).
					Return(db.ShortcodeDef{}, db.ErrNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrUnknownShortcode.Error(), res.Error)
			},
		},
		{
			name: "InternalError",
			body: gin.H{"shortcode": "[gallery]"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetShortcodeDef(gomock.Any(), gomock.Eq("gallery")).
					Times(1).
					Return(db.ShortcodeDef{}, pgx.ErrTxClosed)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			body: gin.H{"shortcode": "[gallery count=9]"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetShortcodeDef(gomock.Any(), gomock.Eq("gallery")).
					Times(1).
					Return(galleryDef, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res RenderShortcodeResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
				require.Equal(t, `<div class="gallery" data-count="9"></div>`, res.HTML)
			},
		},
		{
			name: "OKDefaultApplies",
			body: gin.H{"shortcode": "[gallery]"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetShortcodeDef(gomock.Any(), gomock.Eq("gallery")).
					Times(1).
					Return(galleryDef, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res RenderShortcodeResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
				require.Equal(t, `<div class="gallery" data-count="4"></div>`, res.HTML)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbCtrl := gomock.NewController(t)
			defer dbCtrl.Finish()
			store := mockdb.NewMockStore(dbCtrl)

			tc.buildStubs(store)

			service := newTestService(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, ShortcodeRenderURL, bytes.NewReader(data))
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
