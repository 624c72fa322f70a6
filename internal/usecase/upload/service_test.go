package upload_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-albums-backend/internal/mocks"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/access"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/photo"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/upload"
)

var (
	keyFormat = regexp.MustCompile(`^photos/\d+-[0-9a-f]{32}\.jpg$`)
)

type fixture struct {
	svc       *upload.Service
	albums    *mocks.MockAlbumRepository
	photos    *mocks.MockPhotoRepository
	blobs     *mocks.MockBlobStore
	extractor *mocks.MockMetadataExtractor
}

func newFixture(ctrl *gomock.Controller) fixture {
	albums := mocks.NewMockAlbumRepository(ctrl)
	photos := mocks.NewMockPhotoRepository(ctrl)
	blobs := mocks.NewMockBlobStore(ctrl)
	extractor := mocks.NewMockMetadataExtractor(ctrl)
	logger := zap.NewNop()

	authz := access.NewAuthorizer(albums, photos, logger)
	urls := photo.NewURLSigner(blobs, time.Hour, logger)
	return fixture{
		svc:       upload.NewService(authz, photos, blobs, extractor, upload.NewFilter(1<<20), urls, logger),
		albums:    albums,
		photos:    photos,
		blobs:     blobs,
		extractor: extractor,
	}
}

func jpegInput(albumID uuid.UUID, userID uuid.UUID) upload.IngestInput {
	return upload.IngestInput{
		AlbumID:     albumID.String(),
		UserID:      userID,
		Title:       "Harbour",
		Description: "Morning light",
		Data:        jpegBytes,
		Filename:    "harbour.JPG",
		ContentType: "image/jpeg",
		Size:        int64(len(jpegBytes)),
	}
}

func TestService_Ingest(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file and persists photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")
		taken := time.Date(2023, 9, 14, 8, 0, 0, 0, time.UTC)

		var storedKey string
		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), "image/jpeg", int64(len(jpegBytes))).
			DoAndReturn(func(_ context.Context, key string, _ any, _ string, _ int64) error {
				storedKey = key
				return nil
			})
		f.extractor.EXPECT().Extract(ctx, jpegBytes).
			Return(storage.ImageMetadata{AcquisitionDate: &taken, DominantColor: "#336699"})
		f.photos.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.blobs.EXPECT().SignURL(ctx, gomock.Any(), time.Hour).Return("https://signed/p", nil)

		p, err := f.svc.Ingest(ctx, jpegInput(a.ID, userID))

		require.NoError(t, err)
		assert.Regexp(t, keyFormat, storedKey)
		assert.Equal(t, storedKey, p.StorageKey())
		assert.Equal(t, a.ID, p.AlbumID)
		assert.Equal(t, "harbour.JPG", p.OriginalName)
		assert.Equal(t, "image/jpeg", p.MimeType)
		assert.Equal(t, taken, p.AcquisitionDate)
		assert.Equal(t, "#336699", p.DominantColor)
		assert.Equal(t, "https://signed/p", p.URL)
	})

	t.Run("invalid bytes are rejected before storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")

		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)

		in := jpegInput(a.ID, userID)
		in.Data = []byte{0xFF}
		in.Size = 1
		_, err := f.svc.Ingest(ctx, in)

		assert.ErrorIs(t, err, domain.ErrInvalidFile)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidFile))
	})

	t.Run("declared type must match content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")

		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)

		in := jpegInput(a.ID, userID)
		in.ContentType = "image/png"
		in.Filename = "harbour.png"
		_, err := f.svc.Ingest(ctx, in)

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidFile))
	})

	t.Run("other user's album is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		a := entity.NewAlbum(uuid.New(), "Theirs", "")

		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)

		_, err := f.svc.Ingest(ctx, jpegInput(a.ID, uuid.New()))

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing album is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		id := uuid.New()

		f.albums.EXPECT().GetByID(ctx, id).Return(nil, domain.ErrAlbumNotFound)

		_, err := f.svc.Ingest(ctx, jpegInput(id, uuid.New()))

		assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
	})

	t.Run("storage failure persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")

		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := f.svc.Ingest(ctx, jpegInput(a.ID, userID))

		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		assert.True(t, apperror.HasCode(err, apperror.CodeUnavailable))
	})

	t.Run("failed insert removes the stored blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")

		var storedKey string
		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ any, _ string, _ int64) error {
				storedKey = key
				return nil
			})
		f.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(storage.ImageMetadata{DominantColor: "#000000"})
		f.photos.EXPECT().Create(ctx, gomock.Any()).Return(assert.AnError)
		f.blobs.EXPECT().Delete(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, storedKey, key)
			return nil
		})

		_, err := f.svc.Ingest(ctx, jpegInput(a.ID, userID))

		assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
	})

	t.Run("supplied date is used when the image has none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")
		supplied := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(storage.ImageMetadata{DominantColor: "#ffffff"})
		f.photos.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.blobs.EXPECT().SignURL(ctx, gomock.Any(), gomock.Any()).Return("", assert.AnError)

		in := jpegInput(a.ID, userID)
		in.AcquisitionDate = &supplied
		p, err := f.svc.Ingest(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, supplied, p.AcquisitionDate)
		assert.Empty(t, p.URL)
	})

	t.Run("embedded date wins over supplied date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")
		embedded := time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)
		supplied := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(storage.ImageMetadata{AcquisitionDate: &embedded})
		f.photos.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.blobs.EXPECT().SignURL(ctx, gomock.Any(), gomock.Any()).Return("u", nil)

		in := jpegInput(a.ID, userID)
		in.AcquisitionDate = &supplied
		p, err := f.svc.Ingest(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, embedded, p.AcquisitionDate)
		assert.Equal(t, valueobject.DefaultColor, p.DominantColor)
	})

	t.Run("falls back to upload time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")

		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(storage.ImageMetadata{})
		f.photos.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.blobs.EXPECT().SignURL(ctx, gomock.Any(), gomock.Any()).Return("u", nil)

		before := time.Now().UTC().Add(-time.Second)
		p, err := f.svc.Ingest(ctx, jpegInput(a.ID, userID))

		require.NoError(t, err)
		assert.WithinDuration(t, before, p.AcquisitionDate, 5*time.Second)
	})

	t.Run("title is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		userID := uuid.New()
		a := entity.NewAlbum(userID, "Trip", "")

		f.albums.EXPECT().GetByID(ctx, a.ID).Return(a, nil)

		in := jpegInput(a.ID, userID)
		in.Title = ""
		_, err := f.svc.Ingest(ctx, in)

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidArgument))
	})
}
