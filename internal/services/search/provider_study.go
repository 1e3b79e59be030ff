package search

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/killallgit/biomed-search/internal/models"
)

// maxDataProducts caps the data products attached to each study result
const maxDataProducts = 2

// studyColumns covers every persisted study attribute; only duration takes ranges
var studyColumns = columnSet{
	"title":               {name: "title"},
	"description":         {name: "description"},
	"status":              {name: "status"},
	"phase":               {name: "phase"},
	"drug":                {name: "drug"},
	"indication_category": {name: "indication_category"},
	"procedure_category":  {name: "procedure_category"},
	"severity":            {name: "severity"},
	"risk_level":          {name: "risk_level"},
	"institution":         {name: "institution"},
	"participant_count":   {name: "participant_count"},
	"start_date":          {name: "start_date"},
	"end_date":            {name: "end_date"},
	"relevance_score":     {name: "relevance_score"},
	"duration":            {name: "duration", rangeable: true},
}

// ClinicalStudyProvider searches clinical studies
type ClinicalStudyProvider struct {
	baseProvider
}

// NewClinicalStudyProvider creates a clinical study provider
func NewClinicalStudyProvider(deps Deps) Provider {
	return &ClinicalStudyProvider{baseProvider{deps: deps}}
}

func (p *ClinicalStudyProvider) Collection() CollectionType {
	return CollectionClinicalStudy
}

func (p *ClinicalStudyProvider) Search(ctx context.Context, q Query) ([]Result, PageInfo, error) {
	filterExpr, ignored := compileFilters(q.Filters, studyColumns)
	where := And(termsExpr(q.Terms, "title", "description", "drug"), filterExpr)

	var studies []models.ClinicalStudy
	total, err := p.page(ctx, q, &models.ClinicalStudy{}, where, &studies, withDataProducts)
	if err != nil {
		return nil, PageInfo{}, err
	}

	results := make([]Result, 0, len(studies))
	for i := range studies {
		results = append(results, studyResult(&studies[i]))
	}

	logSearch(p.deps.logger(), q, total, ignored)
	return results, pageInfo(q, total, ignored), nil
}

func (p *ClinicalStudyProvider) AvailableFilters(ctx context.Context) (map[string]any, error) {
	filters := map[string]any{
		"status":     []string{"Recruiting", "Active", "Completed", "Not yet recruiting"},
		"phase":      []string{"Phase I", "Phase II", "Phase III", "Phase IV"},
		"severity":   []string{"Mild", "Moderate", "Severe"},
		"risk_level": []string{"Low", "Medium", "High"},
		"duration":   map[string]any{"type": "range", "min": 0, "max": nil},
	}

	for _, col := range []string{"drug", "indication_category", "procedure_category"} {
		values, err := p.distinct(ctx, &models.ClinicalStudy{}, col)
		if err != nil {
			return nil, err
		}
		filters[col] = values
	}
	return filters, nil
}

func withDataProducts(db *gorm.DB) *gorm.DB {
	return db.Preload("DataProducts", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func studyResult(s *models.ClinicalStudy) Result {
	products := s.DataProducts
	if len(products) > maxDataProducts {
		products = products[:maxDataProducts]
	}

	summaries := make([]DataProductSummary, 0, len(products))
	for _, dp := range products {
		summaries = append(summaries, DataProductSummary{
			ID:          dp.ID,
			Title:       dp.Title,
			Description: dp.Description,
			Type:        dp.Type,
			Format:      dp.Format,
			Size:        dp.Size,
			AccessLevel: dp.AccessLevel,
		})
	}

	return Result{
		ID:             strconv.FormatUint(uint64(s.ID), 10),
		Type:           CollectionClinicalStudy,
		Title:          s.Title,
		Description:    s.Description,
		RelevanceScore: float64Ptr(s.RelevanceScore),
		Data: map[string]any{
			"status":              s.Status,
			"phase":               s.Phase,
			"drug":                s.Drug,
			"indication_category": s.IndicationCategory,
			"procedure_category":  s.ProcedureCategory,
			"severity":            s.Severity,
			"risk_level":          s.RiskLevel,
			"duration":            s.Duration,
			"start_date":          formatTime(s.StartDate),
			"end_date":            formatTime(s.EndDate),
			"institution":         s.Institution,
			"participant_count":   s.ParticipantCount,
		},
		DataProducts: summaries,
	}
}
