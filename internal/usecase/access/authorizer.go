package access

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/validation"
)

// ErrSharedAlbumNotFound is returned for every failed share-token lookup so
// callers cannot tell a malformed token lookup from a private or deleted album.
var ErrSharedAlbumNotFound = apperror.NotFound("shared album not found", domain.ErrSharedAlbumNotFound)

type Authorizer struct {
	albums repository.AlbumRepository
	photos repository.PhotoRepository
	logger *zap.Logger
}

func NewAuthorizer(albums repository.AlbumRepository, photos repository.PhotoRepository, logger *zap.Logger) *Authorizer {
	return &Authorizer{albums: albums, photos: photos, logger: logger}
}

func ParseAlbumID(albumID string) (uuid.UUID, error) {
	id, err := validation.ParseID(albumID)
	if err != nil {
		return uuid.Nil, apperror.InvalidArgument("invalid album id", err)
	}
	return id, nil
}

func ParsePhotoID(photoID string) (uuid.UUID, error) {
	id, err := validation.ParseID(photoID)
	if err != nil {
		return uuid.Nil, apperror.InvalidArgument("invalid photo id", err)
	}
	return id, nil
}

func CheckUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return apperror.InvalidArgument("invalid user id", domain.ErrInvalidID)
	}
	return nil
}

// OwnedAlbum loads the album without its photos and checks that userID owns it.
func (a *Authorizer) OwnedAlbum(ctx context.Context, albumID string, userID uuid.UUID) (*entity.Album, error) {
	return a.ownedAlbum(ctx, albumID, userID, a.albums.GetByID)
}

func (a *Authorizer) OwnedAlbumWithPhotos(ctx context.Context, albumID string, userID uuid.UUID) (*entity.Album, error) {
	return a.ownedAlbum(ctx, albumID, userID, a.albums.GetByIDWithPhotos)
}

func (a *Authorizer) ownedAlbum(
	ctx context.Context,
	albumID string,
	userID uuid.UUID,
	load func(context.Context, uuid.UUID) (*entity.Album, error),
) (*entity.Album, error) {
	id, err := ParseAlbumID(albumID)
	if err != nil {
		return nil, err
	}
	if err := CheckUser(userID); err != nil {
		return nil, err
	}

	album, err := load(ctx, id)
	if err != nil {
		return nil, albumLookupError(err)
	}

	if !album.IsOwnedBy(userID) {
		return nil, apperror.Forbidden("you do not have access to this album", domain.ErrForbidden)
	}

	return album, nil
}

// SharedAlbum resolves a public album by token. Only a short token prefix is
// ever logged.
func (a *Authorizer) SharedAlbum(ctx context.Context, token string) (*entity.Album, error) {
	prefix := valueobject.TokenPrefix(token)

	if !validation.IsShareToken(token) {
		a.logger.Warn("shared album access with malformed token", zap.String("token_prefix", prefix))
		return nil, apperror.InvalidArgument("invalid share token format", domain.ErrInvalidShareToken)
	}

	album, err := a.albums.GetByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			a.logger.Warn("shared album access denied", zap.String("token_prefix", prefix))
			return nil, ErrSharedAlbumNotFound
		}
		return nil, apperror.Internal(err)
	}

	if !album.IsShared() || !validation.ConstantTimeEqual(*album.ShareToken, token) {
		a.logger.Warn("shared album access denied", zap.String("token_prefix", prefix))
		return nil, ErrSharedAlbumNotFound
	}

	a.logger.Info("shared album accessed", zap.String("token_prefix", prefix), zap.String("album_id", album.ID.String()))
	return album, nil
}

// OwnedPhoto resolves ownership through the photo's album.
func (a *Authorizer) OwnedPhoto(ctx context.Context, photoID string, userID uuid.UUID) (*entity.Photo, error) {
	id, err := ParsePhotoID(photoID)
	if err != nil {
		return nil, err
	}
	if err := CheckUser(userID); err != nil {
		return nil, err
	}

	photo, err := a.photos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			return nil, apperror.NotFound("photo not found", err)
		}
		return nil, apperror.Internal(err)
	}

	album, err := a.albums.GetByID(ctx, photo.AlbumID)
	if err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			return nil, apperror.NotFound("photo not found", domain.ErrPhotoNotFound)
		}
		return nil, apperror.Internal(err)
	}

	if !album.IsOwnedBy(userID) {
		return nil, apperror.Forbidden("you do not have access to this photo", domain.ErrForbidden)
	}

	return photo, nil
}

func albumLookupError(err error) error {
	if errors.Is(err, domain.ErrAlbumNotFound) {
		return apperror.NotFound("album not found", err)
	}
	return apperror.Internal(err)
}
