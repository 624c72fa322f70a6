package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/photo"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/upload"
)

// multipartOverhead is the room left for form fields and part headers on top
// of the file size limit.
const multipartOverhead = 1 << 20

type PhotoHandler struct {
	photoSvc    PhotoService
	uploadSvc   UploadService
	maxFileSize int64
}

func NewPhotoHandler(photoSvc PhotoService, uploadSvc UploadService, maxFileSize int64) *PhotoHandler {
	if maxFileSize <= 0 {
		maxFileSize = upload.DefaultMaxFileSize
	}
	return &PhotoHandler{photoSvc: photoSvc, uploadSvc: uploadSvc, maxFileSize: maxFileSize}
}

// Upload godoc
//
//	@Summary		Upload a photo
//	@Description	Stores the image, extracts its capture date and dominant color and adds it to the album
//	@Tags			photos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id					path		string	true	"Album ID"
//	@Param			file				formData	file	true	"JPEG, PNG, GIF or WebP image"
//	@Param			title				formData	string	true	"Photo title"
//	@Param			description			formData	string	false	"Photo description"
//	@Param			acquisition_date	formData	string	false	"RFC3339 capture date used when the image has none"
//	@Success		201					{object}	response.PhotoResponse
//	@Failure		400					{object}	httputil.ErrorResponse
//	@Failure		403					{object}	httputil.ErrorResponse
//	@Failure		404					{object}	httputil.ErrorResponse
//	@Failure		503					{object}	httputil.ErrorResponse
//	@Router			/albums/{id}/photos [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	albumID, ok := bindID(c, "album")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			httputil.HandleError(c, apperror.InvalidFile(
				fmt.Sprintf("file too large: maximum size is %d MB", h.maxFileSize>>20), domain.ErrInvalidFile))
			return
		}
		httputil.HandleError(c, apperror.InvalidFile("no file provided", domain.ErrInvalidFile))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		httputil.HandleError(c, apperror.InvalidFile("failed to read file", domain.ErrInvalidFile))
		return
	}

	var acquired *time.Time
	if raw := strings.TrimSpace(c.PostForm("acquisition_date")); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httputil.HandleError(c, apperror.InvalidArgument("acquisition_date must be an RFC3339 timestamp", domain.ErrInvalidArgument))
			return
		}
		t = t.UTC()
		acquired = &t
	}

	p, err := h.uploadSvc.Ingest(c.Request.Context(), upload.IngestInput{
		AlbumID:         albumID,
		UserID:          httputil.GetUserID(c),
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		Data:            data,
		Filename:        header.Filename,
		ContentType:     header.Header.Get("Content-Type"),
		Size:            header.Size,
		AcquisitionDate: acquired,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.PhotoFromEntity(p))
}

// List godoc
//
//	@Summary	List photos of an album
//	@Tags		photos
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"Album ID"
//	@Param		page	query		int		false	"Page number"	default(1)
//	@Param		limit	query		int		false	"Page size"		default(50)
//	@Param		order	query		string	false	"asc or desc by acquisition date"	default(desc)
//	@Success	200		{object}	response.PhotosListResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	403		{object}	httputil.ErrorResponse
//	@Failure	404		{object}	httputil.ErrorResponse
//	@Router		/albums/{id}/photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	var req request.ListPhotosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	albumID, ok := bindID(c, "album")
	if !ok {
		return
	}

	params, err := pagination.NewParams(req.Page, req.Limit, req.Order)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	photos, info, err := h.photoSvc.List(c.Request.Context(), albumID, httputil.GetUserID(c), params)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PhotosListFromEntities(photos, info))
}

// Search godoc
//
//	@Summary		Search photos
//	@Description	Case-insensitive substring match on title, description and original file name across the caller's albums
//	@Tags			photos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q		query		string	true	"Search text (at least 2 characters)"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			limit	query		int		false	"Page size"		default(50)
//	@Param			order	query		string	false	"asc or desc by acquisition date"	default(desc)
//	@Success		200		{object}	response.PhotosListResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/photos/search [get]
func (h *PhotoHandler) Search(c *gin.Context) {
	var req request.SearchPhotosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	params, err := pagination.NewParams(req.Page, req.Limit, req.Order)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	photos, info, err := h.photoSvc.Search(c.Request.Context(), httputil.GetUserID(c), req.Query, params)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PhotosListFromEntities(photos, info))
}

// Get godoc
//
//	@Summary	Get a photo
//	@Tags		photos
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Photo ID"
//	@Success	200	{object}	response.PhotoResponse
//	@Failure	400	{object}	httputil.ErrorResponse
//	@Failure	403	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/photos/{id} [get]
func (h *PhotoHandler) Get(c *gin.Context) {
	photoID, ok := bindID(c, "photo")
	if !ok {
		return
	}

	p, err := h.photoSvc.Get(c.Request.Context(), photoID, httputil.GetUserID(c))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PhotoFromEntity(p))
}

// Update godoc
//
//	@Summary	Update photo title or description
//	@Tags		photos
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Photo ID"
//	@Param		request	body		request.UpdatePhotoRequest	true	"Fields to change"
//	@Success	200		{object}	response.PhotoResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	403		{object}	httputil.ErrorResponse
//	@Failure	404		{object}	httputil.ErrorResponse
//	@Router		/photos/{id} [patch]
func (h *PhotoHandler) Update(c *gin.Context) {
	photoID, ok := bindID(c, "photo")
	if !ok {
		return
	}

	var req request.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	p, err := h.photoSvc.Update(c.Request.Context(), photoID, httputil.GetUserID(c), photo.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PhotoFromEntity(p))
}

// Delete godoc
//
//	@Summary	Delete a photo
//	@Tags		photos
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Photo ID"
//	@Success	204
//	@Failure	400	{object}	httputil.ErrorResponse
//	@Failure	403	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/photos/{id} [delete]
func (h *PhotoHandler) Delete(c *gin.Context) {
	photoID, ok := bindID(c, "photo")
	if !ok {
		return
	}

	if err := h.photoSvc.Delete(c.Request.Context(), photoID, httputil.GetUserID(c)); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

// BatchDelete godoc
//
//	@Summary		Delete several photos
//	@Description	Photos the caller cannot delete are skipped; the rest are removed
//	@Tags			photos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Album ID"
//	@Param			request	body		request.DeletePhotosRequest	true	"Photo IDs"
//	@Success		200		{object}	response.BatchDeleteResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/albums/{id}/photos/batch [delete]
func (h *PhotoHandler) BatchDelete(c *gin.Context) {
	var req request.DeletePhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.photoSvc.DeleteMany(c.Request.Context(), httputil.GetUserID(c), req.IDs)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.BatchDeleteFromResult(result))
}

// bindID reads the :id path segment and rejects anything that is not a
// canonical UUID before the service is called.
func bindID(c *gin.Context, resource string) (string, bool) {
	var uri request.ResourceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.HandleError(c, apperror.InvalidArgument("invalid "+resource+" id", domain.ErrInvalidID))
		return "", false
	}
	return uri.ID, true
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}
