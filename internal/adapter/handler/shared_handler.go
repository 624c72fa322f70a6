package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/httputil"
)

type SharedHandler struct {
	albumSvc AlbumService
}

func NewSharedHandler(albumSvc AlbumService) *SharedHandler {
	return &SharedHandler{albumSvc: albumSvc}
}

// Get godoc
//
//	@Summary		View a shared album
//	@Description	Anonymous access to a public album through its share token
//	@Tags			shared
//	@Produce		json
//	@Param			token	path		string	true	"Share token (64 hex characters)"
//	@Success		200		{object}	response.SharedAlbumResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Failure		429		{object}	httputil.ErrorResponse
//	@Router			/albums/shared/{token} [get]
func (h *SharedHandler) Get(c *gin.Context) {
	var uri request.SharedAlbumURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.HandleError(c, apperror.InvalidArgument("invalid share token format", domain.ErrInvalidShareToken))
		return
	}

	a, err := h.albumSvc.GetShared(c.Request.Context(), uri.Token)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SharedAlbumFromEntity(a))
}
