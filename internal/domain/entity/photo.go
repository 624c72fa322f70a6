package entity

import (
	"path"
	"time"

	"github.com/google/uuid"
)

// PhotoFolder is the blob store folder every photo key lives under.
const PhotoFolder = "photos"

type Photo struct {
	ID              uuid.UUID
	AlbumID         uuid.UUID
	Title           string
	Description     string
	Filename        string
	OriginalName    string
	MimeType        string
	Size            int64
	AcquisitionDate time.Time
	DominantColor   string
	URL             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewPhotoParams struct {
	AlbumID         uuid.UUID
	Title           string
	Description     string
	Filename        string
	OriginalName    string
	MimeType        string
	Size            int64
	AcquisitionDate time.Time
	DominantColor   string
}

func NewPhoto(p NewPhotoParams) *Photo {
	now := time.Now().UTC()
	return &Photo{
		ID:              uuid.New(),
		AlbumID:         p.AlbumID,
		Title:           p.Title,
		Description:     p.Description,
		Filename:        p.Filename,
		OriginalName:    p.OriginalName,
		MimeType:        p.MimeType,
		Size:            p.Size,
		AcquisitionDate: p.AcquisitionDate.UTC(),
		DominantColor:   p.DominantColor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (p *Photo) Update(title, description string) {
	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
}

func (p *Photo) StorageKey() string {
	return StorageKey(p.Filename)
}

func StorageKey(filename string) string {
	return path.Join(PhotoFolder, filename)
}
