package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/identity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/validation"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/access"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/album"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/photo"
	"github.com/marcos-nsantos/photo-albums-backend/internal/usecase/upload"
)

//	@title						Photo Albums API
//	@version					1.0
//	@description				Albums, photo uploads and public share links.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := validation.RegisterBindings(); err != nil {
		logger.Fatal("failed to register validators", zap.Error(err))
	}

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.MigrationsPath != "" {
		if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Repositories
	albumRepo := postgres.NewAlbumRepo(pool)
	photoRepo := postgres.NewPhotoRepo(pool)

	// Infrastructure services
	blobs, err := storage.NewBlobStore(ctx, cfg.Blob, cfg.S3)
	if err != nil {
		logger.Fatal("failed to create blob store", zap.Error(err))
	}
	extractor := storage.NewMetadataExtractor(cfg.Upload.MaxPixels, logger)
	validator := identity.NewValidator(cfg.Identity, redisClient, logger)

	// Use cases
	authz := access.NewAuthorizer(albumRepo, photoRepo, logger)
	urls := photo.NewURLSigner(blobs, cfg.Blob.SignedURLExpiry(), logger)
	albumSvc := album.NewService(albumRepo, authz, urls, logger)
	photoSvc := photo.NewService(photoRepo, authz, blobs, urls, logger)
	uploadSvc := upload.NewService(authz, photoRepo, blobs, extractor, upload.NewFilter(cfg.Upload.MaxFileSize), urls, logger)

	// Handlers
	albumHandler := handler.NewAlbumHandler(albumSvc)
	photoHandler := handler.NewPhotoHandler(photoSvc, uploadSvc, cfg.Upload.MaxFileSize)
	sharedHandler := handler.NewSharedHandler(albumSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(validator, logger)
	rateLimiter := middleware.NewRateLimiter(redisClient, logger)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AlbumHandler:   albumHandler,
		PhotoHandler:   photoHandler,
		SharedHandler:  sharedHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		RateLimit:      cfg.RateLimit,
		CORS:           cfg.CORS,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
