package search

import (
	"context"
	"strconv"

	"github.com/killallgit/biomed-search/internal/models"
)

// domainColumns are equality-only; range objects are reported as ignored
var domainColumns = columnSet{
	"data_format": {name: "data_format"},
	"owner":       {name: "owner"},
	"domain_name": {name: "domain_name"},
	"description": {name: "description"},
}

// DataDomainProvider searches data domain metadata
type DataDomainProvider struct {
	baseProvider
}

// NewDataDomainProvider creates a data domain provider
func NewDataDomainProvider(deps Deps) Provider {
	return &DataDomainProvider{baseProvider{deps: deps}}
}

func (p *DataDomainProvider) Collection() CollectionType {
	return CollectionDataDomain
}

func (p *DataDomainProvider) Search(ctx context.Context, q Query) ([]Result, PageInfo, error) {
	filterExpr, ignored := compileFilters(q.Filters, domainColumns)
	where := And(termsExpr(q.Terms, "domain_name", "description", "owner"), filterExpr)

	var domains []models.DataDomainMetadata
	total, err := p.page(ctx, q, &models.DataDomainMetadata{}, where, &domains)
	if err != nil {
		return nil, PageInfo{}, err
	}

	results := make([]Result, 0, len(domains))
	for i := range domains {
		results = append(results, domainResult(&domains[i]))
	}

	logSearch(p.deps.logger(), q, total, ignored)
	return results, pageInfo(q, total, ignored), nil
}

func (p *DataDomainProvider) AvailableFilters(ctx context.Context) (map[string]any, error) {
	owners, err := p.distinct(ctx, &models.DataDomainMetadata{}, "owner")
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"data_format": []string{"CSV", "JSON", "XML"},
		"owner":       owners,
	}, nil
}

func domainResult(d *models.DataDomainMetadata) Result {
	return Result{
		ID:             strconv.FormatUint(uint64(d.ID), 10),
		Type:           CollectionDataDomain,
		Title:          d.DomainName,
		Description:    d.Description,
		RelevanceScore: float64Ptr(1),
		Data: map[string]any{
			"schema_definition": d.SchemaDefinition,
			"validation_rules":  d.ValidationRules,
			"data_format":       d.DataFormat,
			"sample_data":       d.SampleData,
			"owner":             d.Owner,
			"created_at":        formatTime(&d.CreatedAt),
			"updated_at":        formatTime(&d.UpdatedAt),
		},
	}
}
