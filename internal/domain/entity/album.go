package entity

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/valueobject"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

type Album struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	IsPublic    bool
	ShareToken  *string
	Photos      []Photo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewAlbum(ownerID uuid.UUID, title, description string) *Album {
	now := time.Now().UTC()
	return &Album{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (a *Album) Update(title, description string) {
	a.Title = title
	a.Description = description
	a.UpdatedAt = time.Now().UTC()
}

func (a *Album) IsOwnedBy(userID uuid.UUID) bool {
	return a.OwnerID == userID
}

func (a *Album) HasPhotos() bool {
	return len(a.Photos) > 0
}

// MakePublic replaces any previous token; each transition into the public
// state gets a fresh one.
func (a *Album) MakePublic(token valueobject.ShareToken) {
	t := token.String()
	a.IsPublic = true
	a.ShareToken = &t
	a.UpdatedAt = time.Now().UTC()
}

func (a *Album) MakePrivate() {
	a.IsPublic = false
	a.ShareToken = nil
	a.UpdatedAt = time.Now().UTC()
}

// IsShared reports whether the album is reachable through its share token.
func (a *Album) IsShared() bool {
	return a.IsPublic && a.ShareToken != nil
}

// ValidateDetails checks the user-editable text fields shared by albums and photos.
func ValidateDetails(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.New("title must be at most 200 characters")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return errors.New("description must be at most 1000 characters")
	}
	return nil
}
