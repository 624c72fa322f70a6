package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/identity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/httputil"
)

const (
	UserIDKey    = httputil.UserIDKey
	UserEmailKey = httputil.UserEmailKey
	BearerPrefix = "Bearer "
)

type AuthMiddleware struct {
	validator identity.TokenValidator
	logger    *zap.Logger
}

func NewAuthMiddleware(validator identity.TokenValidator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{validator: validator, logger: logger}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "invalid authorization format")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		id, err := m.validator.Validate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrTokenInvalid) {
				httputil.ErrorWithCode(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "invalid or expired token")
			} else {
				m.logger.Error("token validation failed", zap.Error(err), zap.String("request_id", c.GetString(RequestIDKey)))
				httputil.ErrorWithCode(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "failed to validate token")
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, id.UserID)
		c.Set(UserEmailKey, id.Email)
		c.Next()
	}
}
