package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/identity"
)

const cacheKeyPrefix = "identity:"

// CachedValidator memoizes successful validations in Redis. Only the token
// hash is used as key and rejections are never cached.
type CachedValidator struct {
	next   identity.TokenValidator
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedValidator(next identity.TokenValidator, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedValidator {
	return &CachedValidator{next: next, client: client, ttl: ttl, logger: logger}
}

func (v *CachedValidator) Validate(ctx context.Context, token string) (*identity.Identity, error) {
	key := cacheKey(token)

	raw, err := v.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var id identity.Identity
		if jsonErr := json.Unmarshal(raw, &id); jsonErr == nil {
			return &id, nil
		}
	case !errors.Is(err, redis.Nil):
		v.logger.Warn("identity cache read failed", zap.Error(err))
	}

	id, err := v.next.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(id); err == nil {
		if err := v.client.Set(ctx, key, payload, v.ttl).Err(); err != nil {
			v.logger.Warn("identity cache write failed", zap.Error(err))
		}
	}

	return id, nil
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
