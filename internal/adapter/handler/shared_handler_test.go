package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/mocks"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/access"
)

func TestSharedHandler_Get(t *testing.T) {
	token := strings.Repeat("0f", 32)

	t.Run("returns album without owner details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		albumSvc := mocks.NewMockAlbumService(ctrl)
		h := handler.NewSharedHandler(albumSvc)

		router := setupRouter()
		router.GET("/albums/shared/:token", h.Get)

		a := newAlbum(uuid.New(), "Public trip")
		a.IsPublic = true
		a.ShareToken = &token
		a.Photos = []entity.Photo{{ID: uuid.New(), URL: "https://signed/p"}}
		albumSvc.EXPECT().GetShared(gomock.Any(), token).Return(a, nil)

		req := httptest.NewRequest(http.MethodGet, "/albums/shared/"+token, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "Public trip", resp["title"])
		assert.NotContains(t, resp, "owner_id")
		assert.NotContains(t, resp, "share_token")
		assert.Len(t, resp["photos"], 1)
	})

	t.Run("malformed token never reaches the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewSharedHandler(mocks.NewMockAlbumService(ctrl))

		router := setupRouter()
		router.GET("/albums/shared/:token", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/albums/shared/not-a-token", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, apperror.CodeInvalidArgument, resp["code"])
		assert.Equal(t, "invalid share token format", resp["error"])
	})

	t.Run("unknown and private albums look the same", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		albumSvc := mocks.NewMockAlbumService(ctrl)
		h := handler.NewSharedHandler(albumSvc)

		router := setupRouter()
		router.GET("/albums/shared/:token", h.Get)

		albumSvc.EXPECT().GetShared(gomock.Any(), gomock.Any()).Return(nil, access.ErrSharedAlbumNotFound).Times(2)

		bodies := make([]string, 0, 2)
		for _, tok := range []string{token, strings.Repeat("aa", 32)} {
			req := httptest.NewRequest(http.MethodGet, "/albums/shared/"+tok, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusNotFound, w.Code)
			bodies = append(bodies, w.Body.String())
		}
		assert.Equal(t, bodies[0], bodies[1])
	})
}
