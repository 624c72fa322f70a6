package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
)

type AlbumResponse struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	IsPublic    bool            `json:"is_public"`
	ShareToken  *string         `json:"share_token,omitempty"`
	Photos      []PhotoResponse `json:"photos"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SharedAlbumResponse is what anonymous visitors see: no owner and no token.
type SharedAlbumResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Photos      []PhotoResponse `json:"photos"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AlbumsListResponse struct {
	Albums []AlbumResponse `json:"albums"`
}

func AlbumFromEntity(a *entity.Album) AlbumResponse {
	return AlbumResponse{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		Title:       a.Title,
		Description: a.Description,
		IsPublic:    a.IsPublic,
		ShareToken:  a.ShareToken,
		Photos:      PhotosFromEntities(a.Photos),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func AlbumsFromEntities(albums []entity.Album) AlbumsListResponse {
	resp := AlbumsListResponse{Albums: make([]AlbumResponse, 0, len(albums))}
	for i := range albums {
		resp.Albums = append(resp.Albums, AlbumFromEntity(&albums[i]))
	}
	return resp
}

func SharedAlbumFromEntity(a *entity.Album) SharedAlbumResponse {
	return SharedAlbumResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Photos:      PhotosFromEntities(a.Photos),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
