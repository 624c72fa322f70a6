package storage

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

import (
	"context"
	"io"
	"time"
)

type BlobStore interface {
	Put(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	Delete(ctx context.Context, key string) error
	SignURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ImageMetadata is what can be learned from the image bytes themselves.
// AcquisitionDate is nil when no embedded capture date could be read.
type ImageMetadata struct {
	AcquisitionDate *time.Time
	DominantColor   string
}

type MetadataExtractor interface {
	Extract(ctx context.Context, data []byte) ImageMetadata
}
