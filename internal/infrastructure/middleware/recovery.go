package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/httputil"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				c.Abort()
				return
			}

			logger.Error("panic recovered",
				zap.Any("error", rec),
				zap.String("route", c.FullPath()),
				zap.String("stack", string(debug.Stack())),
				zap.String("request_id", c.GetString(RequestIDKey)),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			httputil.ErrorWithCode(c, http.StatusInternalServerError, apperror.CodeInternal, "internal server error")
			c.Abort()
		}()
		c.Next()
	}
}
