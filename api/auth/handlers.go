package auth

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/internal/services/auth"
)

// Handler manages auth endpoints and middleware
type Handler struct {
	validator types.TokenValidator
	logger    *zap.Logger
}

// NewHandler creates a new auth handler. A nil validator rejects every token.
func NewHandler(validator types.TokenValidator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// Me returns the caller's user context
// @Summary Get current user
// @Description Get the authorization context derived from the caller's bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} search.UserContext
// @Failure 401 {object} types.ErrorResponse
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	user := types.UserFromContext(c)
	if !user.IsAuthenticated {
		types.SendUnauthorized(c, "Unauthorized")
		return
	}
	types.SendSuccess(c, user)
}

// AuthMiddleware requires a valid bearer token
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if types.UserFromContext(c).IsAuthenticated {
			c.Next()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			types.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		claims, err := h.validate(c, token)
		if err != nil {
			message := "Invalid or expired token"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token expired"
			}
			types.SendUnauthorized(c, message)
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware validates a bearer token if present but doesn't require it
func (h *Handler) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := h.validate(c, token)
		if err != nil {
			h.logger.Debug("ignoring invalid bearer token", zap.Error(err))
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

func (h *Handler) validate(c *gin.Context, token string) (*auth.Claims, error) {
	if h.validator == nil {
		return nil, auth.ErrNoVerifier
	}
	return h.validator.ValidateToken(c.Request.Context(), token)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(types.ClaimsKey, claims)
	c.Set(types.UserKey, auth.UserContextFromClaims(claims))
}
