package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/photo"
)

type PhotoResponse struct {
	ID              uuid.UUID `json:"id"`
	AlbumID         uuid.UUID `json:"album_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Filename        string    `json:"filename"`
	OriginalName    string    `json:"original_name"`
	MimeType        string    `json:"mime_type"`
	Size            int64     `json:"size"`
	AcquisitionDate time.Time `json:"acquisition_date"`
	DominantColor   string    `json:"dominant_color"`
	URL             string    `json:"url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PhotosListResponse struct {
	Photos     []PhotoResponse `json:"photos"`
	Pagination pagination.Info `json:"pagination"`
}

type BatchDeleteResponse struct {
	DeletedCount int         `json:"deleted_count"`
	Deleted      []uuid.UUID `json:"deleted"`
	Skipped      []string    `json:"skipped"`
}

func PhotoFromEntity(p *entity.Photo) PhotoResponse {
	return PhotoResponse{
		ID:              p.ID,
		AlbumID:         p.AlbumID,
		Title:           p.Title,
		Description:     p.Description,
		Filename:        p.Filename,
		OriginalName:    p.OriginalName,
		MimeType:        p.MimeType,
		Size:            p.Size,
		AcquisitionDate: p.AcquisitionDate,
		DominantColor:   p.DominantColor,
		URL:             p.URL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func PhotosFromEntities(photos []entity.Photo) []PhotoResponse {
	resp := make([]PhotoResponse, 0, len(photos))
	for i := range photos {
		resp = append(resp, PhotoFromEntity(&photos[i]))
	}
	return resp
}

func PhotosListFromEntities(photos []entity.Photo, info *pagination.Info) PhotosListResponse {
	resp := PhotosListResponse{Photos: PhotosFromEntities(photos)}
	if info != nil {
		resp.Pagination = *info
	}
	return resp
}

func BatchDeleteFromResult(r *photo.BatchResult) BatchDeleteResponse {
	resp := BatchDeleteResponse{
		DeletedCount: len(r.Deleted),
		Deleted:      r.Deleted,
		Skipped:      r.Skipped,
	}
	if resp.Deleted == nil {
		resp.Deleted = []uuid.UUID{}
	}
	if resp.Skipped == nil {
		resp.Skipped = []string{}
	}
	return resp
}
