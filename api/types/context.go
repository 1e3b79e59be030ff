package types

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/biomed-search/internal/services/search"
)

// Context keys set by the auth and request middleware
const (
	ClaimsKey    = "claims"
	UserKey      = "user"
	RequestIDKey = "request_id"
)

// UserFromContext returns the caller's user context. Requests that carried no
// valid token get an anonymous context.
func UserFromContext(c *gin.Context) *search.UserContext {
	if v, ok := c.Get(UserKey); ok {
		if user, ok := v.(*search.UserContext); ok && user != nil {
			return user
		}
	}
	return &search.UserContext{}
}
