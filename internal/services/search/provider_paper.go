package search

import (
	"context"
	"strconv"
	"time"

	"github.com/killallgit/biomed-search/internal/models"
)

var paperColumns = columnSet{
	"journal": {name: "journal"},
}

// dateRanges maps a date_range filter value to how far back it reaches
var dateRanges = map[string]time.Duration{
	"last_week":  7 * 24 * time.Hour,
	"last_month": 30 * 24 * time.Hour,
	"last_year":  365 * 24 * time.Hour,
}

var dateRangeOrder = []string{"last_week", "last_month", "last_year"}

var citationBuckets = []string{"0-10", "11-50", "51-100", "100+"}

// privilegedRoles may see restricted papers
var privilegedRoles = map[string]bool{
	RoleAdmin:      true,
	RoleResearcher: true,
	RolePremium:    true,
}

// ScientificPaperProvider searches published papers and narrows them by the caller's access
type ScientificPaperProvider struct {
	baseProvider
}

// NewScientificPaperProvider creates a scientific paper provider
func NewScientificPaperProvider(deps Deps) Provider {
	return &ScientificPaperProvider{baseProvider{deps: deps}}
}

func (p *ScientificPaperProvider) Collection() CollectionType {
	return CollectionScientificPaper
}

func (p *ScientificPaperProvider) Search(ctx context.Context, q Query) ([]Result, PageInfo, error) {
	generic := Filters{}
	derived := []Expression{}
	var ignored []string

	for _, name := range q.Filters.Names() {
		value := q.Filters[name]
		switch name {
		case "date_range":
			expr, ok := p.dateRangeExpr(value)
			if !ok {
				ignored = append(ignored, name)
				continue
			}
			derived = append(derived, expr)
		case "citations":
			expr, ok := citationsExpr(value)
			if !ok {
				ignored = append(ignored, name)
				continue
			}
			derived = append(derived, expr)
		default:
			generic[name] = value
		}
	}

	filterExpr, unknown := compileFilters(generic, paperColumns)
	ignored = append(ignored, unknown...)

	where := And(
		termsExpr(q.Terms, "title", "abstract", "journal", "CAST(keywords AS TEXT)"),
		filterExpr,
		And(derived...),
		accessExpr(q.User),
	)

	var papers []models.ScientificPaper
	total, err := p.page(ctx, q, &models.ScientificPaper{}, where, &papers)
	if err != nil {
		return nil, PageInfo{}, err
	}

	results := make([]Result, 0, len(papers))
	for i := range papers {
		results = append(results, paperResult(&papers[i]))
	}

	logSearch(p.deps.logger(), q, total, ignored)
	return results, pageInfo(q, total, ignored), nil
}

func (p *ScientificPaperProvider) AvailableFilters(ctx context.Context) (map[string]any, error) {
	journals, err := p.distinct(ctx, &models.ScientificPaper{}, "journal")
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"journal":    journals,
		"date_range": append([]string(nil), dateRangeOrder...),
		"citations":  append([]string(nil), citationBuckets...),
	}, nil
}

// dateRangeExpr resolves a relative date window against the provider clock.
// An empty value places no constraint.
func (p *ScientificPaperProvider) dateRangeExpr(value any) (Expression, bool) {
	if isFalsy(value) {
		return nil, true
	}
	name, ok := value.(string)
	if !ok {
		return nil, false
	}
	window, ok := dateRanges[name]
	if !ok {
		return nil, false
	}
	cutoff := p.deps.now().UTC().Add(-window)
	return Range("publication_date", cutoff, nil), true
}

// citationsExpr accepts one bucket or a list of buckets
func citationsExpr(value any) (Expression, bool) {
	if isFalsy(value) {
		return nil, true
	}
	if values, ok := asList(value); ok {
		if len(values) == 0 {
			return nil, true
		}
		alternatives := make([]Expression, 0, len(values))
		for _, v := range values {
			expr, ok := citationBucket(v)
			if !ok {
				return nil, false
			}
			alternatives = append(alternatives, expr)
		}
		return Or(alternatives...), true
	}
	return citationBucket(value)
}

func citationBucket(value any) (Expression, bool) {
	bucket, ok := value.(string)
	if !ok {
		return nil, false
	}
	switch bucket {
	case "0-10":
		return Range("citations_count", 0, 10), true
	case "11-50":
		return Range("citations_count", 11, 50), true
	case "51-100":
		return Range("citations_count", 51, 100), true
	case "100+":
		return Gt("citations_count", 100), true
	default:
		return nil, false
	}
}

// accessExpr hides restricted papers from anonymous and unprivileged callers and
// limits non-admins with an organization to their own or organization-agnostic papers
func accessExpr(user *UserContext) Expression {
	var exprs []Expression
	role := user.EffectiveRole()

	if user == nil || !privilegedRoles[role] {
		exprs = append(exprs, Eq("is_restricted", false))
	}
	if user != nil && user.OrgID != "" && role != RoleAdmin {
		exprs = append(exprs, NullOrEq("organization_id", user.OrgID))
	}

	if len(exprs) == 0 {
		return nil
	}
	return And(exprs...)
}

func paperResult(paper *models.ScientificPaper) Result {
	var doi any
	if paper.DOI != nil {
		doi = *paper.DOI
	}

	return Result{
		ID:             strconv.FormatUint(uint64(paper.ID), 10),
		Type:           CollectionScientificPaper,
		Title:          paper.Title,
		Description:    paper.Abstract,
		RelevanceScore: float64Ptr(1),
		Data: map[string]any{
			"authors":          orEmpty(paper.Authors),
			"publication_date": formatTime(paper.PublicationDate),
			"journal":          paper.Journal,
			"doi":              doi,
			"keywords":         orEmpty(paper.Keywords),
			"citations_count":  paper.CitationsCount,
			"references":       orEmpty(paper.ReferenceList),
		},
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
