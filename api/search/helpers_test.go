package search

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/internal/database"
	"github.com/killallgit/biomed-search/internal/seed"
	"github.com/killallgit/biomed-search/internal/services/history"
	"github.com/killallgit/biomed-search/internal/services/search"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// setupTestDeps returns dependencies backed by an in-memory database loaded
// with the shipped seed fixture. History writes are synchronous.
func setupTestDeps(t *testing.T) *types.Dependencies {
	t.Helper()

	db, err := database.InMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fixture, err := seed.Load("../../config/seed.yaml")
	require.NoError(t, err)
	_, err = seed.Apply(context.Background(), db.DB, fixture)
	require.NoError(t, err)

	historyService, err := history.NewService(history.NewRepository(db.DB), history.DefaultPoolSize)
	require.NoError(t, err)
	t.Cleanup(historyService.Close)

	return &types.Dependencies{
		DB:             db,
		SearchService:  search.NewService(db.DB, search.WithClock(func() time.Time { return fixedNow })),
		HistoryService: historyService,
	}
}

// setupRouter mounts the search routes, acting as user when it is non-nil
func setupRouter(deps *types.Dependencies, user *search.UserContext) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if user != nil {
		router.Use(func(c *gin.Context) {
			c.Set(types.UserKey, user)
			c.Next()
		})
	}
	RegisterRoutes(router.Group("/api/v1/search"), deps)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func titles(results []map[string]any) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r["title"].(string))
	}
	return out
}

