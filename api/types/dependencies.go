package types

import (
	"context"

	"go.uber.org/zap"

	"github.com/killallgit/biomed-search/internal/database"
	"github.com/killallgit/biomed-search/internal/services/auth"
	"github.com/killallgit/biomed-search/internal/services/history"
	"github.com/killallgit/biomed-search/internal/services/search"
	"github.com/killallgit/biomed-search/pkg/config"
)

// TokenValidator verifies bearer tokens
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	SearchService  *search.Service
	HistoryService history.Service
	TokenValidator TokenValidator
	Logger         *zap.Logger
	Config         *config.Config
}

// Log returns the configured logger, or a no-op logger when none is set
func (d *Dependencies) Log() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// SearchConfig returns the search limits, filling unset values with the built-in defaults
func (d *Dependencies) SearchConfig() config.SearchConfig {
	var cfg config.SearchConfig
	if d != nil && d.Config != nil {
		cfg = d.Config.Search
	}
	if cfg.DefaultPerPage <= 0 {
		cfg.DefaultPerPage = 10
	}
	if cfg.MaxPerPage <= 0 {
		cfg.MaxPerPage = 100
	}
	if cfg.SuggestLimit <= 0 {
		cfg.SuggestLimit = 5
	}
	return cfg
}
