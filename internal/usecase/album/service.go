package album

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
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/access"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/photo"
)

const maxTokenAttempts = 3

type Service struct {
	albumRepo repository.AlbumRepository
	authz     *access.Authorizer
	urls      *photo.URLSigner
	logger    *zap.Logger
	newToken  func() (valueobject.ShareToken, error)
}

func NewService(
	albumRepo repository.AlbumRepository,
	authz *access.Authorizer,
	urls *photo.URLSigner,
	logger *zap.Logger,
) *Service {
	return &Service{
		albumRepo: albumRepo,
		authz:     authz,
		urls:      urls,
		logger:    logger,
		newToken:  valueobject.NewShareToken,
	}
}

type CreateInput struct {
	Title       string
	Description string
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	Description *string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entity.Album, error) {
	if err := access.CheckUser(userID); err != nil {
		return nil, err
	}
	if err := entity.ValidateDetails(input.Title, input.Description); err != nil {
		return nil, apperror.InvalidArgument(err.Error(), domain.ErrInvalidArgument)
	}

	album := entity.NewAlbum(userID, input.Title, input.Description)
	album.Photos = []entity.Photo{}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, apperror.Wrap(err, "creating album")
	}

	return album, nil
}

// List returns the caller's albums, newest first, with their photos.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]entity.Album, error) {
	if err := access.CheckUser(userID); err != nil {
		return nil, err
	}

	albums, err := s.albumRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err, "listing albums")
	}

	for i := range albums {
		s.urls.SignAll(ctx, albums[i].Photos)
	}
	return albums, nil
}

func (s *Service) Get(ctx context.Context, albumID string, userID uuid.UUID) (*entity.Album, error) {
	album, err := s.authz.OwnedAlbumWithPhotos(ctx, albumID, userID)
	if err != nil {
		return nil, err
	}

	s.urls.SignAll(ctx, album.Photos)
	return album, nil
}

func (s *Service) GetShared(ctx context.Context, token string) (*entity.Album, error) {
	album, err := s.authz.SharedAlbum(ctx, token)
	if err != nil {
		return nil, err
	}

	s.urls.SignAll(ctx, album.Photos)
	return album, nil
}

func (s *Service) Update(ctx context.Context, albumID string, userID uuid.UUID, input UpdateInput) (*entity.Album, error) {
	album, err := s.authz.OwnedAlbumWithPhotos(ctx, albumID, userID)
	if err != nil {
		return nil, err
	}

	title, description := album.Title, album.Description
	if input.Title != nil {
		title = *input.Title
	}
	if input.Description != nil {
		description = *input.Description
	}
	if err := entity.ValidateDetails(title, description); err != nil {
		return nil, apperror.InvalidArgument(err.Error(), domain.ErrInvalidArgument)
	}

	album.Update(title, description)
	if err := s.albumRepo.Update(ctx, album); err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			return nil, apperror.NotFound("album not found", err)
		}
		return nil, apperror.Wrap(err, "updating album")
	}

	s.urls.SignAll(ctx, album.Photos)
	return album, nil
}

// Delete removes an empty album. Albums that still hold photos are refused.
func (s *Service) Delete(ctx context.Context, albumID string, userID uuid.UUID) error {
	album, err := s.authz.OwnedAlbum(ctx, albumID, userID)
	if err != nil {
		return err
	}

	hasPhotos, err := s.albumRepo.HasPhotos(ctx, album.ID)
	if err != nil {
		return apperror.Wrap(err, "checking album photos")
	}
	if hasPhotos {
		return errAlbumNotEmpty(domain.ErrAlbumHasPhotos)
	}

	if err := s.albumRepo.Delete(ctx, album.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlbumHasPhotos):
			return errAlbumNotEmpty(err)
		case errors.Is(err, domain.ErrAlbumNotFound):
			return apperror.NotFound("album not found", err)
		}
		return apperror.Wrap(err, "deleting album")
	}

	return nil
}

// SetPublic moves the album between private and public. Every transition to
// public mints a fresh token; going private revokes the current one.
func (s *Service) SetPublic(ctx context.Context, albumID string, userID uuid.UUID, isPublic bool) (*entity.Album, error) {
	album, err := s.authz.OwnedAlbumWithPhotos(ctx, albumID, userID)
	if err != nil {
		return nil, err
	}

	if !isPublic {
		if err := s.albumRepo.UpdateSharing(ctx, album.ID, false, nil); err != nil {
			return nil, sharingError(err)
		}
		album.MakePrivate()
		s.logger.Info("album made private",
			zap.String("album_id", album.ID.String()),
			zap.String("user_id", userID.String()),
		)
		s.urls.SignAll(ctx, album.Photos)
		return album, nil
	}

	for attempt := 1; ; attempt++ {
		token, err := s.newToken()
		if err != nil {
			return nil, apperror.Wrap(err, "generating share token")
		}

		raw := token.String()
		err = s.albumRepo.UpdateSharing(ctx, album.ID, true, &raw)
		if err == nil {
			album.MakePublic(token)
			s.logger.Info("album shared",
				zap.String("album_id", album.ID.String()),
				zap.String("user_id", userID.String()),
				zap.String("token_prefix", token.Prefix()),
			)
			s.urls.SignAll(ctx, album.Photos)
			return album, nil
		}

		if !errors.Is(err, domain.ErrShareTokenTaken) || attempt >= maxTokenAttempts {
			return nil, sharingError(err)
		}
		s.logger.Warn("share token collision, retrying", zap.Int("attempt", attempt))
	}
}

func errAlbumNotEmpty(cause error) error {
	return apperror.InvalidArgument("cannot delete album with photos, delete all photos first", cause)
}

func sharingError(err error) error {
	if errors.Is(err, domain.ErrAlbumNotFound) {
		return apperror.NotFound("album not found", err)
	}
	return apperror.Wrap(err, "updating album sharing")
}
