package domain

import "errors"

var (
	ErrAlbumNotFound       = errors.New("album not found")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrSharedAlbumNotFound = errors.New("shared album not found")
	ErrAlbumHasPhotos      = errors.New("album has photos")
	ErrShareTokenTaken     = errors.New("share token already in use")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidShareToken   = errors.New("invalid share token")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidFile         = errors.New("invalid file")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
