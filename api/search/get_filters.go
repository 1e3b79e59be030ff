package search

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/internal/services/search"
	apperrors "github.com/killallgit/biomed-search/pkg/errors"
)

// GetFilters returns the filters a collection accepts
// @Summary      Available filters
// @Description  Describe the filter names and values accepted for a collection. Value lists come from the current records.
// @Tags         search
// @Produce      json
// @Param        collection_type query string false "Collection type" default(scientific_paper)
// @Success      200 {object} map[string]any "Filter name to list of values or range descriptor"
// @Failure      400 {object} types.ErrorResponse "Unsupported collection type"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/search/filters [get]
func GetFilters(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		collection := search.CollectionType(c.DefaultQuery("collection_type", string(search.CollectionScientificPaper)))

		filters, ok, err := deps.SearchService.AvailableFilters(c.Request.Context(), collection)
		if err != nil {
			types.SendError(c, err)
			return
		}
		if !ok {
			types.SendError(c, apperrors.UnknownCollection(string(collection)))
			return
		}

		types.SendSuccess(c, filters)
	}
}
