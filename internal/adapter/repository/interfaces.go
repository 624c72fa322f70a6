package repository

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/pagination"
)

type AlbumRepository interface {
	Create(ctx context.Context, album *entity.Album) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Album, error)
	GetByIDWithPhotos(ctx context.Context, id uuid.UUID) (*entity.Album, error)
	GetByShareToken(ctx context.Context, token string) (*entity.Album, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Album, error)
	Update(ctx context.Context, album *entity.Album) error
	UpdateSharing(ctx context.Context, id uuid.UUID, isPublic bool, shareToken *string) error
	HasPhotos(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)
	ListByAlbum(ctx context.Context, albumID uuid.UUID, params pagination.Params) ([]entity.Photo, *pagination.Info, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string, params pagination.Params) ([]entity.Photo, *pagination.Info, error)
	Update(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}
