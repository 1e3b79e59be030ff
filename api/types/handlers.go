package types

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/killallgit/biomed-search/internal/services/history"
	"github.com/killallgit/biomed-search/internal/services/search"
	apperrors "github.com/killallgit/biomed-search/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// QueryInt reads an integer query parameter, using def when it is absent.
// Sends a validation error and returns false when the value is not an integer.
func QueryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		SendError(c, apperrors.ValidationError(name, "must be an integer"))
		return 0, false
	}
	return value, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeValidation),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendError maps err onto a structured error response. Search and history
// sentinels get their own codes; anything else is an internal error.
func SendError(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.GetHTTPCode(), ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
		Details: appErr.Details,
	})
}

func toAppError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, search.ErrUnknownCollectionType):
		return apperrors.New(apperrors.ErrCodeUnknownCollection, err.Error()).WithCause(err)
	case errors.Is(err, search.ErrValidation):
		return apperrors.New(apperrors.ErrCodeValidation, err.Error()).WithCause(err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.New(apperrors.ErrCodeTimeout, "request timed out").WithCause(err)
	case errors.Is(err, search.ErrProviderExecution):
		return apperrors.New(apperrors.ErrCodeProviderExecution, "search operation failed").WithCause(err)
	case errors.Is(err, history.ErrNotFound):
		return apperrors.New(apperrors.ErrCodeNotFound, "search history entry not found").WithCause(err)
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "internal server error")
	}
}

// SendBadRequest sends a standardized validation error response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeValidation),
	})
}

// SendUnauthorized sends a standardized unauthorized response
func SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeUnauthorized),
	})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeNotFound),
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
