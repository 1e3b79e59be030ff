package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/biomed-search/api/auth"
	"github.com/killallgit/biomed-search/api/health"
	"github.com/killallgit/biomed-search/api/history"
	"github.com/killallgit/biomed-search/api/search"
	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/api/version"
	_ "github.com/killallgit/biomed-search/docs/swagger"
	"github.com/killallgit/biomed-search/internal/metrics"
	searchService "github.com/killallgit/biomed-search/internal/services/search"
	"github.com/killallgit/biomed-search/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.Config == nil {
		cfg, err := config.GetConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		deps.Config = cfg
	}
	cfg := deps.Config

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	if cfg.Monitoring.Enabled {
		path := cfg.Monitoring.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Initialize the search service if not already set
	if deps.SearchService == nil && deps.DB != nil && deps.DB.DB != nil {
		deps.SearchService = searchService.NewService(deps.DB.DB,
			searchService.WithLogger(deps.Log()),
			searchService.WithRecorder(metrics.NewSearchRecorder(searchService.CollectionNames(), searchService.SchemaNames())),
		)
	}

	authHandler := auth.NewHandler(deps.TokenValidator, deps.Log())

	// API v1 routes; a valid bearer token is picked up everywhere, required only where noted
	v1 := engine.Group("/api/v1")
	v1.Use(authHandler.OptionalAuthMiddleware())

	rateLimit := func(rps, burst int) gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled || rps <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		if burst <= 0 {
			burst = rps
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}

	// Auth routes with general rate limiting
	authGroup := v1.Group("")
	authGroup.Use(rateLimit(cfg.RateLimiting.DefaultRPS, cfg.RateLimiting.DefaultBurst))
	auth.RegisterRoutes(authGroup, authHandler)

	if deps.SearchService == nil {
		return nil
	}

	// Register search routes with dedicated rate limiting
	searchGroup := v1.Group("/search")
	searchGroup.Use(rateLimit(cfg.RateLimiting.SearchRPS, cfg.RateLimiting.SearchBurst))
	search.RegisterRoutes(searchGroup, deps)

	// History routes need an authenticated caller and a history store
	if deps.HistoryService != nil {
		historyGroup := v1.Group("")
		historyGroup.Use(
			rateLimit(cfg.RateLimiting.DefaultRPS, cfg.RateLimiting.DefaultBurst),
			authHandler.AuthMiddleware(),
		)
		history.RegisterRoutes(historyGroup, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
