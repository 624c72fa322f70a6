package photo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
)

// URLSigner fills Photo.URL with a time-limited read URL. Signing failures
// leave the URL empty and are logged.
type URLSigner struct {
	blobs  storage.BlobStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewURLSigner(blobs storage.BlobStore, ttl time.Duration, logger *zap.Logger) *URLSigner {
	return &URLSigner{blobs: blobs, ttl: ttl, logger: logger}
}

func (s *URLSigner) Sign(ctx context.Context, p *entity.Photo) {
	url, err := s.blobs.SignURL(ctx, p.StorageKey(), s.ttl)
	if err != nil {
		s.logger.Warn("signing photo url failed", zap.String("photo_id", p.ID.String()), zap.Error(err))
		p.URL = ""
		return
	}
	p.URL = url
}

func (s *URLSigner) SignAll(ctx context.Context, photos []entity.Photo) {
	for i := range photos {
		s.Sign(ctx, &photos[i])
	}
}
