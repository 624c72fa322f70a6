package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/httputil"
)

const (
	ScopeGlobal = "global"
	ScopeShared = "shared"
	ScopeUpload = "upload"
	ScopeShare  = "share"
)

type RateLimiter struct {
	client     *redis.Client
	windowSize time.Duration
	logger     *zap.Logger
}

func NewRateLimiter(client *redis.Client, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client:     client,
		windowSize: time.Minute,
		logger:     logger,
	}
}

// Limit applies a sliding one-minute window per scope and caller. Authenticated
// callers are keyed by user id, anonymous ones by client IP. Redis errors let
// the request through.
func (rl *RateLimiter) Limit(scope string, requestsPerMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.client == nil || requestsPerMin <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", scope, callerKey(c))

		allowed, remaining, err := rl.isAllowed(ctx, key, requestsPerMin)
		if err != nil {
			rl.logger.Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(requestsPerMin))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			rejectRateLimited(c, rl.windowSize)
			return
		}

		c.Next()
	}
}

func rejectRateLimited(c *gin.Context, retryAfter time.Duration) {
	c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
	httputil.HandleError(c, apperror.New(apperror.CodeRateLimited, "too many requests, please try again later", http.StatusTooManyRequests))
	c.Abort()
}

func callerKey(c *gin.Context) string {
	if id, ok := c.Get(UserIDKey); ok {
		if uid, ok := id.(uuid.UUID); ok && uid != uuid.Nil {
			return "user:" + uid.String()
		}
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string, limit int) (bool, int, error) {
	now := time.Now()
	windowStart := now.Add(-rl.windowSize).UnixMicro()

	pipe := rl.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixMicro()),
		Member: fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()[:8]),
	})

	countCmd := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, rl.windowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, limit, err
	}

	count := int(countCmd.Val())
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= limit, remaining, nil
}
