package identity

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/identity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/infrastructure/config"
)

// NewValidator builds the validator selected by AUTH_MODE, wrapped in the
// Redis cache when a client is available and AUTH_CACHE_TTL is positive.
func NewValidator(cfg config.IdentityConfig, redisClient *redis.Client, logger *zap.Logger) identity.TokenValidator {
	var v identity.TokenValidator
	if cfg.Mode == config.AuthModeJWT {
		v = NewJWTVerifier(cfg.JWTSecret)
	} else {
		v = NewHTTPValidator(cfg.ServiceURL, cfg.Timeout, logger)
	}

	if redisClient != nil && cfg.CacheTTL > 0 {
		v = NewCachedValidator(v, redisClient, cfg.CacheTTL, logger)
	}
	return v
}
