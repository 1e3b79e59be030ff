package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is the running build's version, set at link time
var Version = "dev"

// Get handles version requests
// @Summary      Service version
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Biomed Search API",
			"version":     Version,
			"description": "Search across clinical studies, scientific papers and data domains",
			"status":      "running",
		})
	}
}
