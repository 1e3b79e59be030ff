package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is what a provider is bound to when it is constructed
type Deps struct {
	DB     *gorm.DB
	Now    func() time.Time
	Logger *zap.Logger
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now().UTC()
	}
	return d.Now()
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Provider translates a generic query into a filtered, paginated fetch over one collection.
// The set of providers is closed: ClinicalStudyProvider, ScientificPaperProvider and
// DataDomainProvider.
type Provider interface {
	// Collection returns the collection type the provider serves
	Collection() CollectionType

	// Search returns the requested page of matches and the page info.
	// PageInfo is returned even when the page is empty.
	Search(ctx context.Context, q Query) ([]Result, PageInfo, error)

	// AvailableFilters maps each filter name to its allowed values or a range descriptor
	AvailableFilters(ctx context.Context) (map[string]any, error)

	provider()
}

// ProviderFactory builds a provider bound to the given dependencies
type ProviderFactory func(Deps) Provider

type baseProvider struct {
	deps Deps
}

func (baseProvider) provider() {}

// page counts every match of where, then fetches the requested page into dest.
// Both statements share the predicate so the total and the page agree.
func (b baseProvider) page(ctx context.Context, q Query, model any, where Expression, dest any, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	if err := applyExpr(b.deps.DB.WithContext(ctx).Model(model), where).Count(&total).Error; err != nil {
		return 0, executionError(err, "counting %s", q.Collection)
	}

	err := applyExpr(b.deps.DB.WithContext(ctx).Model(model), where).
		Scopes(scopes...).
		Order("id ASC").
		Offset(q.Offset()).
		Limit(q.PerPage).
		Find(dest).Error
	if err != nil {
		return 0, executionError(err, "fetching %s", q.Collection)
	}
	return total, nil
}

// distinct lists the non-empty values of a column in ascending order
func (b baseProvider) distinct(ctx context.Context, model any, col string) ([]string, error) {
	values := []string{}
	err := b.deps.DB.WithContext(ctx).
		Model(model).
		Where(col + " IS NOT NULL AND " + col + " <> ''").
		Distinct(col).
		Order(col).
		Pluck(col, &values).Error
	if err != nil {
		return nil, executionError(err, "listing distinct %s", col)
	}
	return values, nil
}

func pageInfo(q Query, total int64, ignored []string) PageInfo {
	return PageInfo{
		Page:           q.Page,
		PerPage:        q.PerPage,
		Total:          total,
		IgnoredFilters: ignored,
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func logSearch(log *zap.Logger, q Query, total int64, ignored []string) {
	log.Debug("provider search",
		zap.String("collection", string(q.Collection)),
		zap.Strings("terms", q.Terms),
		zap.Int("page", q.Page),
		zap.Int("per_page", q.PerPage),
		zap.Int64("total", total),
		zap.Strings("ignored_filters", ignored),
	)
}
