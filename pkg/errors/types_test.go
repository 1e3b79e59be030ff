package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_HTTPCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{name: "not found", err: NotFound("search", "abc"), want: http.StatusNotFound},
		{name: "validation", err: ValidationError("page", "must be at least 1"), want: http.StatusBadRequest},
		{name: "missing field", err: MissingFieldError("name"), want: http.StatusBadRequest},
		{name: "unknown collection", err: UnknownCollection("genome"), want: http.StatusBadRequest},
		{name: "unauthorized", err: New(ErrCodeUnauthorized, "no token"), want: http.StatusUnauthorized},
		{name: "rate limit", err: New(ErrCodeRateLimit, "slow down"), want: http.StatusTooManyRequests},
		{name: "timeout", err: New(ErrCodeTimeout, "too slow"), want: http.StatusGatewayTimeout},
		{name: "provider execution", err: New(ErrCodeProviderExecution, "boom"), want: http.StatusInternalServerError},
		{name: "internal", err: New(ErrCodeInternal, "boom"), want: http.StatusInternalServerError},
		{name: "explicit override", err: &AppError{Code: ErrCodeNotFound, HTTPCode: http.StatusGone}, want: http.StatusGone},
		{name: "zero value falls back to code", err: &AppError{Code: ErrCodeValidation}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.GetHTTPCode())
		})
	}
}

func TestAppError_Details(t *testing.T) {
	err := UnknownCollection("genome")
	assert.Equal(t, ErrCodeUnknownCollection, err.Code)
	assert.Equal(t, "unsupported collection type: genome", err.Message)
	assert.Equal(t, map[string]any{"collection_type": "genome"}, err.Details)

	err = ValidationError("per_page", "must be between 1 and 100")
	assert.Equal(t, "per_page", err.Details["field"])
	assert.Equal(t, "VALIDATION: validation failed for field 'per_page': must be between 1 and 100", err.Error())
}

func TestWrapAndAs(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	wrapped := fmt.Errorf("listing history: %w", Wrap(cause, ErrCodeInternal, "internal server error"))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, appErr.Error(), "caused by: disk I/O error")

	_, ok = As(cause)
	assert.False(t, ok)
}
