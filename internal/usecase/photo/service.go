package photo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/access"
)

const (
	MinSearchLength = 2
	MaxBatchSize    = 100
	batchWorkers    = 8
)

type Service struct {
	photoRepo repository.PhotoRepository
	authz     *access.Authorizer
	blobs     storage.BlobStore
	urls      *URLSigner
	logger    *zap.Logger
}

func NewService(
	photoRepo repository.PhotoRepository,
	authz *access.Authorizer,
	blobs storage.BlobStore,
	urls *URLSigner,
	logger *zap.Logger,
) *Service {
	return &Service{
		photoRepo: photoRepo,
		authz:     authz,
		blobs:     blobs,
		urls:      urls,
		logger:    logger,
	}
}

type UpdateInput struct {
	Title       *string
	Description *string
}

type BatchResult struct {
	Deleted []uuid.UUID
	Skipped []string
}

func (s *Service) Get(ctx context.Context, photoID string, userID uuid.UUID) (*entity.Photo, error) {
	p, err := s.authz.OwnedPhoto(ctx, photoID, userID)
	if err != nil {
		return nil, err
	}

	s.urls.Sign(ctx, p)
	return p, nil
}

func (s *Service) List(ctx context.Context, albumID string, userID uuid.UUID, params pagination.Params) ([]entity.Photo, *pagination.Info, error) {
	album, err := s.authz.OwnedAlbum(ctx, albumID, userID)
	if err != nil {
		return nil, nil, err
	}

	photos, info, err := s.photoRepo.ListByAlbum(ctx, album.ID, params)
	if err != nil {
		return nil, nil, apperror.Wrap(err, "listing photos")
	}

	s.urls.SignAll(ctx, photos)
	return photos, info, nil
}

// Search matches title, description or original filename across all of the
// caller's albums.
func (s *Service) Search(ctx context.Context, userID uuid.UUID, query string, params pagination.Params) ([]entity.Photo, *pagination.Info, error) {
	if err := access.CheckUser(userID); err != nil {
		return nil, nil, err
	}

	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinSearchLength {
		return nil, nil, apperror.InvalidArgument(
			fmt.Sprintf("search query must be at least %d characters", MinSearchLength),
			domain.ErrInvalidArgument,
		)
	}

	photos, info, err := s.photoRepo.Search(ctx, userID, q, params)
	if err != nil {
		return nil, nil, apperror.Wrap(err, "searching photos")
	}

	s.urls.SignAll(ctx, photos)
	return photos, info, nil
}

func (s *Service) Update(ctx context.Context, photoID string, userID uuid.UUID, input UpdateInput) (*entity.Photo, error) {
	p, err := s.authz.OwnedPhoto(ctx, photoID, userID)
	if err != nil {
		return nil, err
	}

	title, description := p.Title, p.Description
	if input.Title != nil {
		title = *input.Title
	}
	if input.Description != nil {
		description = *input.Description
	}
	if err := entity.ValidateDetails(title, description); err != nil {
		return nil, apperror.InvalidArgument(err.Error(), domain.ErrInvalidArgument)
	}

	p.Update(title, description)
	if err := s.photoRepo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			return nil, apperror.NotFound("photo not found", err)
		}
		return nil, apperror.Wrap(err, "updating photo")
	}

	s.urls.Sign(ctx, p)
	return p, nil
}

// Delete removes the blob on a best-effort basis and then the record.
func (s *Service) Delete(ctx context.Context, photoID string, userID uuid.UUID) error {
	p, err := s.authz.OwnedPhoto(ctx, photoID, userID)
	if err != nil {
		return err
	}

	s.deleteBlob(ctx, p)

	if err := s.photoRepo.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			return apperror.NotFound("photo not found", err)
		}
		return apperror.Wrap(err, "deleting photo")
	}

	s.logger.Info("photo deleted", zap.String("photo_id", p.ID.String()))
	return nil
}

// DeleteMany authorizes every id independently and skips the ones the caller
// cannot delete. Only failures unrelated to the item itself abort the batch.
func (s *Service) DeleteMany(ctx context.Context, userID uuid.UUID, ids []string) (*BatchResult, error) {
	if err := access.CheckUser(userID); err != nil {
		return nil, err
	}
	if len(ids) > MaxBatchSize {
		return nil, apperror.InvalidArgument(
			fmt.Sprintf("at most %d photos can be deleted at once", MaxBatchSize),
			domain.ErrInvalidArgument,
		)
	}

	result := &BatchResult{Deleted: []uuid.UUID{}, Skipped: []string{}}
	if len(ids) == 0 {
		return result, nil
	}

	owned := make([]*entity.Photo, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, id := range ids {
		g.Go(func() error {
			p, err := s.authz.OwnedPhoto(gctx, id, userID)
			if err == nil {
				owned[i] = p
				return nil
			}
			if isItemError(err) {
				s.logger.Warn("skipping photo in batch delete", zap.String("photo_id", id), zap.Error(err))
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(owned))
	valid := make([]*entity.Photo, 0, len(owned))
	for i, p := range owned {
		if p == nil {
			result.Skipped = append(result.Skipped, ids[i])
			continue
		}
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		valid = append(valid, p)
	}

	if len(valid) == 0 {
		return result, nil
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, batchWorkers)
	for _, p := range valid {
		wg.Add(1)
		sem <- struct{}{}
		go func(p *entity.Photo) {
			defer wg.Done()
			defer func() { <-sem }()
			s.deleteBlob(ctx, p)
		}(p)
	}
	wg.Wait()

	validIDs := make([]uuid.UUID, len(valid))
	for i, p := range valid {
		validIDs[i] = p.ID
	}

	deleted, err := s.photoRepo.DeleteMany(ctx, validIDs)
	if err != nil {
		return nil, apperror.Wrap(err, "deleting photos")
	}

	result.Deleted = validIDs
	s.logger.Info("photos batch deleted",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", deleted),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

func (s *Service) deleteBlob(ctx context.Context, p *entity.Photo) {
	if err := s.blobs.Delete(ctx, p.StorageKey()); err != nil {
		s.logger.Warn("deleting photo blob failed", zap.String("key", p.StorageKey()), zap.Error(err))
	}
}

func isItemError(err error) bool {
	return apperror.HasCode(err, apperror.CodeNotFound) ||
		apperror.HasCode(err, apperror.CodeForbidden) ||
		apperror.HasCode(err, apperror.CodeInvalidArgument)
}
