package validation

import (
	"crypto/subtle"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
)

const uuidLength = 36

var shareTokenPattern = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)

// ParseID accepts only the canonical hyphenated UUID form.
func ParseID(s string) (uuid.UUID, error) {
	if len(s) != uuidLength {
		return uuid.Nil, domain.ErrInvalidID
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return id, nil
}

func IsUUID(s string) bool {
	_, err := ParseID(s)
	return err == nil
}

func IsShareToken(s string) bool {
	return shareTokenPattern.MatchString(s)
}

func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// RegisterBindings adds the custom tags used by request DTOs to gin's validator.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("sharetoken", shareToken); err != nil {
		return err
	}
	return v.RegisterValidation("uuidstrict", uuidStrict)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func shareToken(fl validator.FieldLevel) bool {
	return IsShareToken(fl.Field().String())
}

func uuidStrict(fl validator.FieldLevel) bool {
	return IsUUID(fl.Field().String())
}
