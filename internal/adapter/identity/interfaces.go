package identity

//go:generate mockgen -source=interfaces.go -destination=../../mocks/identity_mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
)

type Identity struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
}

// TokenValidator resolves a bearer token to the caller's identity. Rejected
// credentials are reported as domain.ErrTokenInvalid.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*Identity, error)
}
