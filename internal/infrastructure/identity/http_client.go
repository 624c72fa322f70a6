package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/identity"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/validation"
)

const (
	validatePath    = "/auth/validate"
	maxResponseSize = 64 << 10
)

type validateRequest struct {
	Token string `json:"token"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
	User  *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// HTTPValidator introspects tokens against the external identity service.
type HTTPValidator struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewHTTPValidator(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPValidator {
	return &HTTPValidator{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

func (v *HTTPValidator) Validate(ctx context.Context, token string) (*identity.Identity, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	body, err := json.Marshal(validateRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("encoding validate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+validatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building validate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error("identity service unreachable", zap.Error(err))
		return nil, fmt.Errorf("calling identity service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrTokenInvalid
	case resp.StatusCode >= 300:
		v.logger.Error("identity service returned unexpected status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("identity service status %d", resp.StatusCode)
	}

	var out validateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		v.logger.Warn("identity service returned malformed body", zap.Error(err))
		return nil, domain.ErrTokenInvalid
	}

	if !out.Valid || out.User == nil {
		return nil, domain.ErrTokenInvalid
	}

	userID, err := validation.ParseID(out.User.ID)
	if err != nil {
		v.logger.Warn("identity service returned invalid user id")
		return nil, domain.ErrTokenInvalid
	}

	return &identity.Identity{UserID: userID, Email: out.User.Email}, nil
}
