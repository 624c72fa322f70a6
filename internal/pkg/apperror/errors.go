package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInvalidFile     = "INVALID_FILE"
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeUnavailable     = "UNAVAILABLE"
	CodeRateLimited     = "RATE_LIMITED"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func InvalidArgument(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeInvalidArgument,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        cause,
	}
}

func InvalidFile(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeInvalidFile,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        cause,
	}
}

func NotFound(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
		Err:        cause,
	}
}

func Forbidden(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    message,
		StatusCode: http.StatusForbidden,
		Err:        cause,
	}
}

func Unauthorized(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Err:        cause,
	}
}

func Unavailable(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeUnavailable,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Err:        cause,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// Wrap keeps the code of an AppError found in err's chain and replaces its
// message. Any other error becomes an internal error annotated with message.
func Wrap(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:       appErr.Code,
			Message:    message,
			StatusCode: appErr.StatusCode,
			Err:        err,
		}
	}
	return Internal(fmt.Errorf("%s: %w", message, err))
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
