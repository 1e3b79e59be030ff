package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers auth routes
func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.GET("/me", handler.AuthMiddleware(), handler.Me)
}
