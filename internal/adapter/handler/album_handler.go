package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/album"
)

type AlbumHandler struct {
	albumSvc AlbumService
}

func NewAlbumHandler(albumSvc AlbumService) *AlbumHandler {
	return &AlbumHandler{albumSvc: albumSvc}
}

// Create godoc
//
//	@Summary		Create an album
//	@Tags			albums
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.CreateAlbumRequest	true	"Album data"
//	@Success		201		{object}	response.AlbumResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Router			/albums [post]
func (h *AlbumHandler) Create(c *gin.Context) {
	var req request.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	a, err := h.albumSvc.Create(c.Request.Context(), httputil.GetUserID(c), album.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.AlbumFromEntity(a))
}

// List godoc
//
//	@Summary		List own albums
//	@Description	Albums owned by the caller, newest first, each with its photos
//	@Tags			albums
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.AlbumsListResponse
//	@Failure		401	{object}	httputil.ErrorResponse
//	@Router			/albums [get]
func (h *AlbumHandler) List(c *gin.Context) {
	albums, err := h.albumSvc.List(c.Request.Context(), httputil.GetUserID(c))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.AlbumsFromEntities(albums))
}

// Get godoc
//
//	@Summary	Get an album
//	@Tags		albums
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Album ID"
//	@Success	200	{object}	response.AlbumResponse
//	@Failure	400	{object}	httputil.ErrorResponse
//	@Failure	403	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/albums/{id} [get]
func (h *AlbumHandler) Get(c *gin.Context) {
	albumID, ok := bindID(c, "album")
	if !ok {
		return
	}

	a, err := h.albumSvc.Get(c.Request.Context(), albumID, httputil.GetUserID(c))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.AlbumFromEntity(a))
}

// Update godoc
//
//	@Summary	Update album title or description
//	@Tags		albums
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Album ID"
//	@Param		request	body		request.UpdateAlbumRequest	true	"Fields to change"
//	@Success	200		{object}	response.AlbumResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	403		{object}	httputil.ErrorResponse
//	@Failure	404		{object}	httputil.ErrorResponse
//	@Router		/albums/{id} [patch]
func (h *AlbumHandler) Update(c *gin.Context) {
	albumID, ok := bindID(c, "album")
	if !ok {
		return
	}

	var req request.UpdateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	a, err := h.albumSvc.Update(c.Request.Context(), albumID, httputil.GetUserID(c), album.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.AlbumFromEntity(a))
}

// Share godoc
//
//	@Summary		Make an album public or private
//	@Description	Going public mints a new share token; going private revokes it
//	@Tags			albums
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Album ID"
//	@Param			request	body		request.ShareAlbumRequest	true	"Visibility"
//	@Success		200		{object}	response.AlbumResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Router			/albums/{id}/share [patch]
func (h *AlbumHandler) Share(c *gin.Context) {
	albumID, ok := bindID(c, "album")
	if !ok {
		return
	}

	var req request.ShareAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	a, err := h.albumSvc.SetPublic(c.Request.Context(), albumID, httputil.GetUserID(c), *req.IsPublic)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.AlbumFromEntity(a))
}

// Delete godoc
//
//	@Summary		Delete an empty album
//	@Description	Albums that still hold photos are refused
//	@Tags			albums
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Album ID"
//	@Success		204
//	@Failure		400	{object}	httputil.ErrorResponse
//	@Failure		403	{object}	httputil.ErrorResponse
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/albums/{id} [delete]
func (h *AlbumHandler) Delete(c *gin.Context) {
	albumID, ok := bindID(c, "album")
	if !ok {
		return
	}

	if err := h.albumSvc.Delete(c.Request.Context(), albumID, httputil.GetUserID(c)); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
