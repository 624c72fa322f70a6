package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/album"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/photo"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/upload"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AlbumService interface {
	Create(ctx context.Context, userID uuid.UUID, input album.CreateInput) (*entity.Album, error)
	List(ctx context.Context, userID uuid.UUID) ([]entity.Album, error)
	Get(ctx context.Context, albumID string, userID uuid.UUID) (*entity.Album, error)
	GetShared(ctx context.Context, token string) (*entity.Album, error)
	Update(ctx context.Context, albumID string, userID uuid.UUID, input album.UpdateInput) (*entity.Album, error)
	Delete(ctx context.Context, albumID string, userID uuid.UUID) error
	SetPublic(ctx context.Context, albumID string, userID uuid.UUID, isPublic bool) (*entity.Album, error)
}

type PhotoService interface {
	Get(ctx context.Context, photoID string, userID uuid.UUID) (*entity.Photo, error)
	List(ctx context.Context, albumID string, userID uuid.UUID, params pagination.Params) ([]entity.Photo, *pagination.Info, error)
	Search(ctx context.Context, userID uuid.UUID, query string, params pagination.Params) ([]entity.Photo, *pagination.Info, error)
	Update(ctx context.Context, photoID string, userID uuid.UUID, input photo.UpdateInput) (*entity.Photo, error)
	Delete(ctx context.Context, photoID string, userID uuid.UUID) error
	DeleteMany(ctx context.Context, userID uuid.UUID, ids []string) (*photo.BatchResult, error)
}

type UploadService interface {
	Ingest(ctx context.Context, input upload.IngestInput) (*entity.Photo, error)
}
