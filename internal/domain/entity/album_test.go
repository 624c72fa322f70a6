package entity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/valueobject"
)

func TestAlbum_Sharing(t *testing.T) {
	a := NewAlbum(uuid.New(), "Trip", "")
	assert.False(t, a.IsShared())

	a.MakePublic(valueobject.ShareToken(strings.Repeat("a", 64)))
	require.NotNil(t, a.ShareToken)
	assert.True(t, a.IsShared())

	a.MakePrivate()
	assert.False(t, a.IsPublic)
	assert.Nil(t, a.ShareToken)
	assert.False(t, a.IsShared())
}

func TestValidateDetails(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantErr     string
	}{
		{name: "valid", title: "Trip"},
		{name: "blank title", title: "   ", wantErr: "title is required"},
		{name: "title at limit in runes", title: strings.Repeat("é", MaxTitleLength)},
		{name: "title too long", title: strings.Repeat("a", MaxTitleLength+1), wantErr: "title must be at most"},
		{name: "description too long", title: "ok", description: strings.Repeat("a", MaxDescriptionLength+1), wantErr: "description must be at most"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDetails(tt.title, tt.description)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStorageKey(t *testing.T) {
	p := NewPhoto(NewPhotoParams{Filename: "123-abc.png"})
	assert.Equal(t, "photos/123-abc.png", p.StorageKey())
}
