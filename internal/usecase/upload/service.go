package upload

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/access"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/photo"
)

type Service struct {
	authz     *access.Authorizer
	photoRepo repository.PhotoRepository
	blobs     storage.BlobStore
	extractor storage.MetadataExtractor
	filter    *Filter
	urls      *photo.URLSigner
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	authz *access.Authorizer,
	photoRepo repository.PhotoRepository,
	blobs storage.BlobStore,
	extractor storage.MetadataExtractor,
	filter *Filter,
	urls *photo.URLSigner,
	logger *zap.Logger,
) *Service {
	return &Service{
		authz:     authz,
		photoRepo: photoRepo,
		blobs:     blobs,
		extractor: extractor,
		filter:    filter,
		urls:      urls,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

type IngestInput struct {
	AlbumID         string
	UserID          uuid.UUID
	Title           string
	Description     string
	Data            []byte
	Filename        string
	ContentType     string
	Size            int64
	AcquisitionDate *time.Time
}

// Ingest authorizes the album, accepts the file, stores it, extracts its
// metadata and persists the photo record. Nothing is written before the
// acceptance checks pass.
func (s *Service) Ingest(ctx context.Context, input IngestInput) (*entity.Photo, error) {
	album, err := s.authz.OwnedAlbum(ctx, input.AlbumID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := entity.ValidateDetails(input.Title, input.Description); err != nil {
		return nil, apperror.InvalidArgument(err.Error(), domain.ErrInvalidArgument)
	}

	accepted, err := s.filter.Accept(input.Data, input.Filename, input.ContentType, input.Size)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filename := fmt.Sprintf("%d-%s.%s", now.UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", ""), accepted.Extension)
	key := entity.StorageKey(filename)

	if err := s.blobs.Put(ctx, key, bytes.NewReader(input.Data), accepted.MimeType, accepted.Size); err != nil {
		s.logger.Error("storing photo failed", zap.String("key", key), zap.Error(err))
		return nil, apperror.Unavailable("failed to store file", fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err))
	}

	meta := s.extractor.Extract(ctx, input.Data)
	if meta.DominantColor == "" {
		meta.DominantColor = valueobject.DefaultColor
	}

	acquired := now
	switch {
	case meta.AcquisitionDate != nil:
		acquired = *meta.AcquisitionDate
	case input.AcquisitionDate != nil:
		acquired = *input.AcquisitionDate
	}

	p := entity.NewPhoto(entity.NewPhotoParams{
		AlbumID:         album.ID,
		Title:           input.Title,
		Description:     input.Description,
		Filename:        filename,
		OriginalName:    input.Filename,
		MimeType:        accepted.MimeType,
		Size:            accepted.Size,
		AcquisitionDate: acquired,
		DominantColor:   meta.DominantColor,
	})

	if err := s.photoRepo.Create(ctx, p); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Warn("orphaned blob after failed insert", zap.String("key", key), zap.Error(delErr))
		}
		return nil, apperror.Wrap(err, "creating photo record")
	}

	s.logger.Info("photo ingested",
		zap.String("photo_id", p.ID.String()),
		zap.String("album_id", album.ID.String()),
		zap.Int64("size", p.Size),
	)

	s.urls.Sign(ctx, p)
	return p, nil
}
