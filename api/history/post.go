package history

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	searchapi "github.com/killallgit/biomed-search/api/search"
	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/internal/services/search"
	apperrors "github.com/killallgit/biomed-search/pkg/errors"
)

// PostSave names a history entry and marks it saved
// @Summary      Save a search
// @Description  Mark a recorded search as saved under a name
// @Tags         history
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body types.SaveSearchRequest true "Entry to save"
// @Success      200 {object} types.HistoryEntryResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      401 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/search-history/save [post]
func PostSave(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SaveSearchRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			types.SendError(c, apperrors.MissingFieldError("name"))
			return
		}

		entry, err := deps.HistoryService.Save(c.Request.Context(), types.UserFromContext(c).ID, req.SearchID, name)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.HistoryEntryResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search saved",
			},
			Entry: entry,
		})
	}
}

// PostExecute re-runs a saved search with the default schema
// @Summary      Run a saved search
// @Description  Re-run a saved search on the first page with the default schema and record its use
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Saved search ID"
// @Success      200 {object} types.SearchResponse
// @Failure      401 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/saved-searches/{id}/execute [post]
func PostExecute(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.UserFromContext(c)
		id := c.Param("id")

		entry, err := deps.HistoryService.Get(c.Request.Context(), user.ID, id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		if !entry.IsSaved {
			types.SendError(c, apperrors.NotFound("saved search", id))
			return
		}

		collection := search.CollectionType(entry.Category)
		if collection == "" {
			collection = search.CollectionClinicalStudy
		}

		resp, err := deps.SearchService.Search(c.Request.Context(), search.Request{
			Collection: collection,
			Terms:      searchapi.SplitTerms(entry.Query),
			Filters:    search.Filters(entry.Filters),
			Page:       1,
			PerPage:    10,
			Schema:     search.SchemaDefault,
			User:       user,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		if err := deps.HistoryService.Touch(c.Request.Context(), user.ID, id, resp.Pagination.Total); err != nil {
			deps.Log().Warn("failed to record saved search use",
				zap.String("id", id),
				zap.Error(err))
		}

		types.SendSuccess(c, types.SearchResponse{Response: resp, SearchHistoryID: id})
	}
}

// DeleteSaved removes an entry from the saved searches. The history entry remains.
// @Summary      Unsave a search
// @Description  Remove a search from the saved list; it stays in the history
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Saved search ID"
// @Success      200 {object} types.BaseResponse
// @Failure      401 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/saved-searches/{id} [delete]
func DeleteSaved(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.HistoryService.Unsave(c.Request.Context(), types.UserFromContext(c).ID, c.Param("id")); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Search removed from saved searches",
		})
	}
}
