package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/photo-albums-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/identity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/validation"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/access"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/album"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/photo"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/upload"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"
	maxFileSize    = 2 << 20
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Blobs      *memBlobStore
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterBindings())
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()

	// Repositories
	albumRepo := pgRepo.NewAlbumRepo(pool)
	photoRepo := pgRepo.NewPhotoRepo(pool)

	// Blob storage is kept in memory to avoid an S3 dependency
	blobs := newMemBlobStore()
	extractor := storage.NewMetadataExtractor(storage.DefaultMaxPixels, logger)

	// Use cases
	authz := access.NewAuthorizer(albumRepo, photoRepo, logger)
	urls := photo.NewURLSigner(blobs, time.Hour, logger)
	albumSvc := album.NewService(albumRepo, authz, urls, logger)
	photoSvc := photo.NewService(photoRepo, authz, blobs, urls, logger)
	uploadSvc := upload.NewService(authz, photoRepo, blobs, extractor, upload.NewFilter(maxFileSize), urls, logger)

	router := server.NewRouter(server.RouterConfig{
		AlbumHandler:   handler.NewAlbumHandler(albumSvc),
		PhotoHandler:   handler.NewPhotoHandler(photoSvc, uploadSvc, maxFileSize),
		SharedHandler:  handler.NewSharedHandler(albumSvc),
		AuthMiddleware: middleware.NewAuthMiddleware(identity.NewJWTVerifier(testJWTSecret), logger),
		RateLimiter:    middleware.NewRateLimiter(nil, logger),
		RateLimit:      config.RateLimitConfig{Enabled: false},
		CORS:           config.CORSConfig{Origins: []string{"http://localhost:5173"}},
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Blobs:     blobs,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) patch(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPatch, path, body, headers)
}

func (app *TestApp) delete(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, body, headers)
}

// upload posts a multipart photo to the album.
func (app *TestApp) upload(t *testing.T, albumID, title, filename, contentType string, data []byte, headers map[string]string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("title", title))

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+"/albums/"+albumID+"/photos", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

// newUser mints a token for a fresh identity, as the identity service would.
func newUser(t *testing.T) (uuid.UUID, map[string]string) {
	t.Helper()

	userID := uuid.New()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, identity.Claims{
		Email: userID.String() + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return userID, map[string]string{"Authorization": "Bearer " + token}
}

func solidPNG(t *testing.T, c color.Color) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type memBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{objects: make(map[string][]byte)}
}

func (s *memBlobStore) Put(_ context.Context, key string, reader io.Reader, _ string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memBlobStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memBlobStore) SignURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://blobs.example.com/%s?expires=%d", key, int(expiry.Seconds())), nil
}

func (s *memBlobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
