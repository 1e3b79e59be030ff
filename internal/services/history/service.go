package history

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/killallgit/biomed-search/internal/models"
)

const (
	DefaultPoolSize     = 4
	DefaultWriteTimeout = 5 * time.Second
)

// ServiceImpl implements the Service interface. Inserts from Record run on an
// ants pool that caps how many writers hit the database at once.
type ServiceImpl struct {
	repository   Repository
	pool         *ants.Pool
	pending      sync.WaitGroup
	logger       *zap.Logger
	writeTimeout time.Duration
	now          func() time.Time
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*ServiceImpl)

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *ServiceImpl) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWriteTimeout bounds each queued write
func WithWriteTimeout(d time.Duration) ServiceOption {
	return func(s *ServiceImpl) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// WithClock sets the clock used for timestamps
func WithClock(now func() time.Time) ServiceOption {
	return func(s *ServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a history service. A poolSize of zero writes synchronously.
func NewService(repository Repository, poolSize int, opts ...ServiceOption) (*ServiceImpl, error) {
	s := &ServiceImpl{
		repository:   repository,
		logger:       zap.NewNop(),
		writeTimeout: DefaultWriteTimeout,
		now:          func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	if poolSize > 0 {
		pool, err := ants.NewPool(poolSize,
			ants.WithPanicHandler(func(p any) {
				s.logger.Error("search history write panicked", zap.Any("panic", p))
			}),
		)
		if err != nil {
			return nil, errors.Wrap(err, "creating history worker pool")
		}
		s.pool = pool
	}

	return s, nil
}

// Record persists the entry and returns its ID. Inserts run on the ants pool
// to bound concurrent writers, but Record waits for its own insert so the ID
// it returns can be saved or re-run immediately.
func (s *ServiceImpl) Record(ctx context.Context, entry Entry) (string, error) {
	if entry.UserID == "" {
		return "", errors.New("recording search history requires a user")
	}

	now := s.now()
	row := &models.SearchHistory{
		ID:           ksuid.New().String(),
		UserID:       entry.UserID,
		Query:        strings.TrimSpace(entry.Query),
		Category:     entry.Category,
		Filters:      entry.Filters,
		ResultsCount: entry.ResultsCount,
		CreatedAt:    now,
		LastUsed:     now,
		UseCount:     1,
	}

	// The insert outlives a cancelled request so a returned ID is never orphaned.
	write := func() error {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
		defer cancel()

		if err := s.repository.Create(writeCtx, row); err != nil {
			s.logger.Error("failed to record search history",
				zap.String("id", row.ID),
				zap.String("user_id", row.UserID),
				zap.Error(err),
			)
			return errors.Wrap(err, "recording search history")
		}
		return nil
	}

	if s.pool == nil {
		if err := write(); err != nil {
			return "", err
		}
		return row.ID, nil
	}

	done := make(chan error, 1)
	s.pending.Add(1)
	if err := s.pool.Submit(func() {
		defer s.pending.Done()
		done <- write()
	}); err != nil {
		s.pending.Done()
		return "", errors.Wrap(err, "queueing search history write")
	}

	select {
	case err := <-done:
		if err != nil {
			return "", err
		}
		return row.ID, nil
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), "waiting for search history write")
	}
}

// History returns a page of the user's searches, newest first
func (s *ServiceImpl) History(ctx context.Context, userID string, page, perPage int) (*Page, error) {
	items, total, err := s.repository.List(ctx, userID, false, page, perPage)
	if err != nil {
		return nil, err
	}
	return newPage(items, page, perPage, total), nil
}

// Saved returns a page of the user's saved searches, newest first
func (s *ServiceImpl) Saved(ctx context.Context, userID string, page, perPage int) (*Page, error) {
	items, total, err := s.repository.List(ctx, userID, true, page, perPage)
	if err != nil {
		return nil, err
	}
	return newPage(items, page, perPage, total), nil
}

// Get returns one of the user's entries
func (s *ServiceImpl) Get(ctx context.Context, userID, id string) (*models.SearchHistory, error) {
	return s.repository.Get(ctx, userID, id)
}

// Save marks an entry as a saved search
func (s *ServiceImpl) Save(ctx context.Context, userID, id, name string) (*models.SearchHistory, error) {
	if id == "" {
		return nil, errors.New("search id is required")
	}
	return s.repository.MarkSaved(ctx, userID, id, strings.TrimSpace(name))
}

// Unsave removes an entry from the saved searches
func (s *ServiceImpl) Unsave(ctx context.Context, userID, id string) error {
	return s.repository.Unsave(ctx, userID, id)
}

// Touch records a re-run of an entry
func (s *ServiceImpl) Touch(ctx context.Context, userID, id string, resultsCount int64) error {
	return s.repository.Touch(ctx, userID, id, resultsCount)
}

// Close waits for queued writes and releases the worker pool
func (s *ServiceImpl) Close() {
	s.pending.Wait()
	if s.pool != nil {
		s.pool.Release()
	}
}

var _ Service = (*ServiceImpl)(nil)
