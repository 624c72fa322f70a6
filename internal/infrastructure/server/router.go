package server

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	albumHandler   *handler.AlbumHandler
	photoHandler   *handler.PhotoHandler
	sharedHandler  *handler.SharedHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	limits         config.RateLimitConfig
	cors           config.CORSConfig
	logger         *zap.Logger
}

type RouterConfig struct {
	AlbumHandler   *handler.AlbumHandler
	PhotoHandler   *handler.PhotoHandler
	SharedHandler  *handler.SharedHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	RateLimit      config.RateLimitConfig
	CORS           config.CORSConfig
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		albumHandler:   cfg.AlbumHandler,
		photoHandler:   cfg.PhotoHandler,
		sharedHandler:  cfg.SharedHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		limits:         cfg.RateLimit,
		cors:           cfg.CORS,
		logger:         cfg.Logger,
	}

	if !r.limits.Enabled {
		r.rateLimiter = nil
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger, "/health"))
	r.engine.Use(middleware.CORS(r.cors))
	r.engine.Use(gzip.Gzip(gzip.DefaultCompression))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")

	// Anonymous share links are limited by client IP.
	api.GET("/albums/shared/:token",
		r.rateLimiter.Limit(middleware.ScopeShared, r.limits.SharedPerMin),
		r.sharedHandler.Get,
	)

	authed := api.Group("")
	authed.Use(r.authMiddleware.RequireAuth())
	authed.Use(r.rateLimiter.Limit(middleware.ScopeGlobal, r.limits.RequestsPerMin))

	albums := authed.Group("/albums")
	{
		albums.POST("", r.albumHandler.Create)
		albums.GET("", r.albumHandler.List)
		albums.GET("/:id", r.albumHandler.Get)
		albums.PATCH("/:id", r.albumHandler.Update)
		albums.PATCH("/:id/share",
			r.rateLimiter.Limit(middleware.ScopeShare, r.limits.SharePerMin),
			r.albumHandler.Share,
		)
		albums.DELETE("/:id", r.albumHandler.Delete)

		albums.POST("/:id/photos",
			r.rateLimiter.Limit(middleware.ScopeUpload, r.limits.UploadPerMin),
			r.photoHandler.Upload,
		)
		albums.GET("/:id/photos", r.photoHandler.List)
		albums.DELETE("/:id/photos/batch", r.photoHandler.BatchDelete)
	}

	photos := authed.Group("/photos")
	{
		photos.GET("/search", r.photoHandler.Search)
		photos.GET("/:id", r.photoHandler.Get)
		photos.PATCH("/:id", r.photoHandler.Update)
		photos.DELETE("/:id", r.photoHandler.Delete)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
