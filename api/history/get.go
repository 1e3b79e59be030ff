package history

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/biomed-search/api/types"
	apperrors "github.com/killallgit/biomed-search/pkg/errors"
)

// GetHistory lists the caller's recent searches, newest first
// @Summary      Search history
// @Description  List the caller's recorded searches, newest first
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        page     query int false "Page number" default(1)
// @Param        per_page query int false "Entries per page" default(10)
// @Success      200 {object} history.Page
// @Failure      400 {object} types.ErrorResponse
// @Failure      401 {object} types.ErrorResponse
// @Router       /api/v1/search-history [get]
func GetHistory(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage, ok := pageParams(c, deps)
		if !ok {
			return
		}

		result, err := deps.HistoryService.History(c.Request.Context(), types.UserFromContext(c).ID, page, perPage)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, result)
	}
}

// GetSaved lists the caller's saved searches
// @Summary      Saved searches
// @Description  List the caller's saved searches, newest first
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        page     query int false "Page number" default(1)
// @Param        per_page query int false "Entries per page" default(10)
// @Success      200 {object} history.Page
// @Failure      400 {object} types.ErrorResponse
// @Failure      401 {object} types.ErrorResponse
// @Router       /api/v1/saved-searches [get]
func GetSaved(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage, ok := pageParams(c, deps)
		if !ok {
			return
		}

		result, err := deps.HistoryService.Saved(c.Request.Context(), types.UserFromContext(c).ID, page, perPage)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, result)
	}
}

func pageParams(c *gin.Context, deps *types.Dependencies) (int, int, bool) {
	cfg := deps.SearchConfig()

	page, ok := types.QueryInt(c, "page", 1)
	if !ok {
		return 0, 0, false
	}
	if page < 1 {
		types.SendError(c, apperrors.ValidationError("page", "must be at least 1"))
		return 0, 0, false
	}

	perPage, ok := types.QueryInt(c, "per_page", cfg.DefaultPerPage)
	if !ok {
		return 0, 0, false
	}
	if perPage < 1 || perPage > cfg.MaxPerPage {
		types.SendError(c, apperrors.ValidationError("per_page", "must be between 1 and "+strconv.Itoa(cfg.MaxPerPage)))
		return 0, 0, false
	}

	return page, perPage, true
}
