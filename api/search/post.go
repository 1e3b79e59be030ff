package search

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/internal/services/history"
	"github.com/killallgit/biomed-search/internal/services/search"
	"github.com/killallgit/biomed-search/pkg/config"
	apperrors "github.com/killallgit/biomed-search/pkg/errors"
)

// termSeparator splits a query into alternative terms
const termSeparator = " OR "

// Post handles collection search requests
// @Summary      Search a collection
// @Description  Search clinical studies, scientific papers or data domains. The query is split on " OR " into alternative terms; filters narrow by attribute. Clinical study results always render with the study schema.
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body types.SearchRequest true "Search parameters"
// @Success      200 {object} types.SearchResponse "Rendered results with pagination"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters or unknown collection"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Failure      504 {object} types.ErrorResponse "Gateway timeout - search request timed out"
// @Router       /api/v1/search [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		request, err := buildRequest(req, deps.SearchConfig())
		if err != nil {
			types.SendError(c, err)
			return
		}
		request.User = types.UserFromContext(c)

		ctx, cancel := requestContext(c, deps)
		defer cancel()

		resp, err := deps.SearchService.Search(ctx, request)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.SearchResponse{
			Response:        resp,
			SearchHistoryID: recordHistory(c, deps, req, request, resp),
		})
	}
}

// buildRequest applies defaults and validates the enumerations and bounds
func buildRequest(req types.SearchRequest, cfg config.SearchConfig) (search.Request, error) {
	collection := search.CollectionType(req.CollectionType)
	if collection == "" {
		collection = search.CollectionClinicalStudy
	}
	if !collection.Valid() {
		return search.Request{}, apperrors.ValidationError("collection_type", "must be one of "+joinCollections())
	}

	schema := search.SchemaType(req.SchemaType)
	if schema == "" {
		schema = search.SchemaDefault
	}
	if !schema.Valid() {
		return search.Request{}, apperrors.ValidationError("schema_type", "must be one of "+joinSchemas())
	}

	page := req.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return search.Request{}, apperrors.ValidationError("page", "must be at least 1")
	}

	perPage := req.PerPage
	if perPage == 0 {
		perPage = cfg.DefaultPerPage
	}
	if perPage < 1 || perPage > cfg.MaxPerPage {
		return search.Request{}, apperrors.ValidationError("per_page", "must be between 1 and "+strconv.Itoa(cfg.MaxPerPage))
	}

	return search.Request{
		Collection: collection,
		Terms:      SplitTerms(req.Query),
		Filters:    search.Filters(req.Filters),
		Page:       page,
		PerPage:    perPage,
		Schema:     schema,
	}, nil
}

// SplitTerms splits a query on " OR " into trimmed, non-empty terms
func SplitTerms(query string) []string {
	parts := strings.Split(query, termSeparator)
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		if term := strings.TrimSpace(part); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// recordHistory stores the search for authenticated callers and returns the entry ID.
// History is best effort; failures never fail the search.
func recordHistory(c *gin.Context, deps *types.Dependencies, req types.SearchRequest, request search.Request, resp *search.Response) string {
	if deps.HistoryService == nil || request.User == nil || !request.User.IsAuthenticated {
		return ""
	}

	id, err := deps.HistoryService.Record(c.Request.Context(), history.Entry{
		UserID:       request.User.ID,
		Query:        req.Query,
		Category:     string(request.Collection),
		Filters:      req.Filters,
		ResultsCount: resp.Pagination.Total,
	})
	if err != nil {
		deps.Log().Warn("failed to record search history",
			zap.String("user_id", request.User.ID),
			zap.Error(err))
		return ""
	}
	return id
}

func joinCollections() string {
	return strings.Join(search.CollectionNames(), ", ")
}

func joinSchemas() string {
	return strings.Join(search.SchemaNames(), ", ")
}

func requestContext(c *gin.Context, deps *types.Dependencies) (context.Context, context.CancelFunc) {
	if timeout := deps.SearchConfig().RequestTimeout; timeout > 0 {
		return context.WithTimeout(c.Request.Context(), timeout)
	}
	return context.WithCancel(c.Request.Context())
}
