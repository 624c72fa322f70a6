package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
)

func newIdentityServer(t *testing.T, handler http.HandlerFunc) *HTTPValidator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPValidator(srv.URL+"/", 2*time.Second, zap.NewNop())
}

func TestHTTPValidator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns identity for valid token", func(t *testing.T) {
		userID := uuid.New()
		v := newIdentityServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/validate", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "good-token", body["token"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"valid": true,
				"user":  map[string]string{"id": userID.String(), "email": "ana@example.com"},
			})
		})

		id, err := v.Validate(ctx, "good-token")

		require.NoError(t, err)
		assert.Equal(t, userID, id.UserID)
		assert.Equal(t, "ana@example.com", id.Email)
	})

	t.Run("rejects when service says invalid", func(t *testing.T) {
		v := newIdentityServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"valid": false})
		})

		id, err := v.Validate(ctx, "bad")

		assert.Nil(t, id)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects on 401", func(t *testing.T) {
		v := newIdentityServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := v.Validate(ctx, "expired")

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		v := newIdentityServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"valid": true,
				"user":  map[string]string{"id": "42", "email": "x@example.com"},
			})
		})

		_, err := v.Validate(ctx, "token")

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		v := newIdentityServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		})

		_, err := v.Validate(ctx, "token")

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("surfaces server failures", func(t *testing.T) {
		v := newIdentityServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := v.Validate(ctx, "token")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("empty token never reaches the service", func(t *testing.T) {
		called := false
		v := newIdentityServer(t, func(http.ResponseWriter, *http.Request) { called = true })

		_, err := v.Validate(ctx, "")

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		assert.False(t, called)
	})
}
