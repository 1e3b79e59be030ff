package history

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/biomed-search/api/types"
)

// RegisterRoutes registers search history and saved search routes. The router
// group must already require authentication.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/search-history", GetHistory(deps))
	router.POST("/search-history/save", PostSave(deps))

	router.GET("/saved-searches", GetSaved(deps))
	router.POST("/saved-searches/:id/execute", PostExecute(deps))
	router.DELETE("/saved-searches/:id", DeleteSaved(deps))
}
