package history

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/killallgit/biomed-search/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a new search history repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Create inserts a new entry
func (r *RepositoryImpl) Create(ctx context.Context, entry *models.SearchHistory) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return errors.Wrap(err, "creating search history entry")
	}
	return nil
}

// List returns one page of a user's entries, newest first, and the user's total
func (r *RepositoryImpl) List(ctx context.Context, userID string, savedOnly bool, page, perPage int) ([]models.SearchHistory, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.SearchHistory{}).Where("user_id = ?", userID)
		if savedOnly {
			q = q.Where("is_saved = ?", true)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "counting search history")
	}

	var entries []models.SearchHistory
	err := scope().
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&entries).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "listing search history")
	}
	return entries, total, nil
}

// Get returns a user's entry by ID
func (r *RepositoryImpl) Get(ctx context.Context, userID, id string) (*models.SearchHistory, error) {
	var entry models.SearchHistory
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "entry %s", id)
		}
		return nil, errors.Wrap(err, "getting search history entry")
	}
	return &entry, nil
}

// MarkSaved flags an entry as saved under name
func (r *RepositoryImpl) MarkSaved(ctx context.Context, userID, id, name string) (*models.SearchHistory, error) {
	updates := map[string]any{"is_saved": true}
	if name != "" {
		updates["name"] = name
	}

	if err := r.update(ctx, userID, id, updates); err != nil {
		return nil, err
	}
	return r.Get(ctx, userID, id)
}

// Unsave clears the saved flag, keeping the entry in plain history
func (r *RepositoryImpl) Unsave(ctx context.Context, userID, id string) error {
	return r.update(ctx, userID, id, map[string]any{"is_saved": false})
}

// Touch records another use of an entry
func (r *RepositoryImpl) Touch(ctx context.Context, userID, id string, resultsCount int64) error {
	return r.update(ctx, userID, id, map[string]any{
		"use_count":     gorm.Expr("use_count + ?", 1),
		"last_used":     r.now(),
		"results_count": resultsCount,
	})
}

func (r *RepositoryImpl) update(ctx context.Context, userID, id string, updates map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.SearchHistory{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "updating search history entry")
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "entry %s", id)
	}
	return nil
}
