package history

import (
	"context"

	"github.com/killallgit/biomed-search/internal/models"
)

// Repository defines the interface for search history data access.
// Every lookup is scoped to the owning user.
type Repository interface {
	// Create operations
	Create(ctx context.Context, entry *models.SearchHistory) error

	// Read operations
	List(ctx context.Context, userID string, savedOnly bool, page, perPage int) ([]models.SearchHistory, int64, error)
	Get(ctx context.Context, userID, id string) (*models.SearchHistory, error)

	// Update operations
	MarkSaved(ctx context.Context, userID, id, name string) (*models.SearchHistory, error)
	Unsave(ctx context.Context, userID, id string) error
	Touch(ctx context.Context, userID, id string, resultsCount int64) error
}

// Service defines the interface for search history business logic
type Service interface {
	// Record persists entry and returns its ID once the row is written
	Record(ctx context.Context, entry Entry) (string, error)

	History(ctx context.Context, userID string, page, perPage int) (*Page, error)
	Saved(ctx context.Context, userID string, page, perPage int) (*Page, error)
	Get(ctx context.Context, userID, id string) (*models.SearchHistory, error)
	Save(ctx context.Context, userID, id, name string) (*models.SearchHistory, error)
	Unsave(ctx context.Context, userID, id string) error
	Touch(ctx context.Context, userID, id string, resultsCount int64) error

	// Close waits for queued writes and releases the worker pool
	Close()
}
