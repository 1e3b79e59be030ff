package search

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/internal/services/search"
	apperrors "github.com/killallgit/biomed-search/pkg/errors"
)

// GetSuggest returns typeahead suggestions
// @Summary      Search suggestions
// @Description  Suggest record titles matching a partial query
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Param        q               query string true  "Partial query (at least 2 characters)"
// @Param        collection_type query string false "Collection type" default(clinical_study)
// @Success      200 {object} types.SuggestResponse
// @Failure      400 {object} types.ErrorResponse "Bad request - query too short or unknown collection"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/search/suggest [get]
func GetSuggest(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if len([]rune(q)) < 2 {
			types.SendError(c, apperrors.ValidationError("q", "must be at least 2 characters"))
			return
		}

		collection := search.CollectionType(c.DefaultQuery("collection_type", string(search.CollectionClinicalStudy)))

		ctx, cancel := requestContext(c, deps)
		defer cancel()

		resp, err := deps.SearchService.Search(ctx, search.Request{
			Collection: collection,
			Terms:      []string{q},
			Page:       1,
			PerPage:    deps.SearchConfig().SuggestLimit,
			Schema:     search.SchemaCompact,
			User:       types.UserFromContext(c),
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		suggestions := make([]types.Suggestion, 0, len(resp.Results))
		for _, item := range resp.Results {
			suggestions = append(suggestions, types.Suggestion{
				Text: stringOr(item["title"], "Untitled"),
				Type: stringOr(item["type"], string(collection)),
			})
		}

		types.SendSuccess(c, types.SuggestResponse{Suggestions: suggestions})
	}
}

// stringOr renders v as a string, using fallback when it is absent or empty
func stringOr(v any, fallback string) string {
	switch s := v.(type) {
	case string:
		if s != "" {
			return s
		}
	case search.CollectionType:
		if s != "" {
			return string(s)
		}
	}
	return fallback
}
