package storage

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/config"
)

func NewBlobStore(ctx context.Context, blob config.BlobConfig, s3cfg config.S3Config) (storage.BlobStore, error) {
	switch blob.Backend {
	case config.BlobBackendS3:
		return NewS3Store(s3cfg), nil
	case config.BlobBackendMinIO:
		return NewMinIOStore(ctx, s3cfg)
	default:
		return nil, fmt.Errorf("unknown blob backend %q", blob.Backend)
	}
}
