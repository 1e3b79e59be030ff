package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStudyResult() Result {
	score := 0.8
	return Result{
		ID:             "1",
		Type:           CollectionClinicalStudy,
		Title:          "Aspirin for Stroke Prevention",
		Description:    "Low dose aspirin",
		RelevanceScore: &score,
		Data: map[string]any{
			"status":      "Recruiting",
			"phase":       "Phase III",
			"drug":        "Aspirin",
			"duration":    12,
			"institution": "Mercy General",
			"title":       "Overridden title",
		},
		DataProducts: []DataProductSummary{{ID: 7, Title: "Baseline vitals", AccessLevel: "Public"}},
	}
}

func TestPageInfo_Pagination(t *testing.T) {
	tests := []struct {
		name string
		info PageInfo
		want Pagination
	}{
		{
			name: "zero value renders the first page of ten",
			info: PageInfo{},
			want: Pagination{Page: 1, PerPage: 10},
		},
		{
			name: "empty result set",
			info: PageInfo{Page: 1, PerPage: 10, Total: 0},
			want: Pagination{Page: 1, PerPage: 10, Total: 0, Pages: 0},
		},
		{
			name: "first of several pages",
			info: PageInfo{Page: 1, PerPage: 10, Total: 25},
			want: Pagination{Page: 1, PerPage: 10, Total: 25, Pages: 3, HasNext: true},
		},
		{
			name: "middle page",
			info: PageInfo{Page: 2, PerPage: 10, Total: 25},
			want: Pagination{Page: 2, PerPage: 10, Total: 25, Pages: 3, HasNext: true, HasPrev: true},
		},
		{
			name: "last page",
			info: PageInfo{Page: 3, PerPage: 10, Total: 30},
			want: Pagination{Page: 3, PerPage: 10, Total: 30, Pages: 3, HasPrev: true},
		},
		{
			name: "page past the end",
			info: PageInfo{Page: 5, PerPage: 10, Total: 12},
			want: Pagination{Page: 5, PerPage: 10, Total: 12, Pages: 2, HasPrev: true},
		},
		{
			name: "zero per page yields zero pages",
			info: PageInfo{Page: 1, PerPage: 0, Total: 12},
			want: Pagination{Page: 1, PerPage: 0, Total: 12, Pages: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Pagination())
		})
	}
}

func TestDefaultTransformer_ReproducesResults(t *testing.T) {
	results := []Result{
		sampleStudyResult(),
		{ID: "2", Type: CollectionDataDomain, Title: "lab_results", Data: map[string]any{"owner": "lab-ops"}},
	}

	resp := DefaultTransformer{}.Transform(results, PageInfo{Page: 1, PerPage: 10, Total: 2})

	require.Len(t, resp.Results, 2)
	for i, r := range results {
		item := resp.Results[i]
		assert.Equal(t, r.ID, item["id"])
		assert.Equal(t, r.Type, item["type"])
		assert.Equal(t, r.Title, item["title"])
		assert.Equal(t, r.Description, item["description"])
		assert.Equal(t, r.Data, item["data"])
		assert.Len(t, item, 5)
	}
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.Nil(t, resp.Notices)
}

func TestCompactTransformer(t *testing.T) {
	resp := CompactTransformer{}.Transform([]Result{sampleStudyResult()}, PageInfo{Page: 1, PerPage: 10, Total: 1})

	require.Len(t, resp.Results, 1)
	assert.Equal(t, map[string]any{
		"id":    "1",
		"title": "Aspirin for Stroke Prevention",
		"type":  CollectionClinicalStudy,
	}, resp.Results[0])
}

func TestDetailedTransformer_FlattensData(t *testing.T) {
	resp := DetailedTransformer{}.Transform([]Result{sampleStudyResult()}, PageInfo{Page: 1, PerPage: 10, Total: 1})

	require.Len(t, resp.Results, 1)
	item := resp.Results[0]
	assert.Equal(t, "Recruiting", item["status"])
	assert.Equal(t, 12, item["duration"])
	assert.Equal(t, "Overridden title", item["title"], "data keys replace base keys")
	assert.NotContains(t, item, "data")
}

func TestPaperTransformer_Defaults(t *testing.T) {
	results := []Result{
		{
			ID:    "3",
			Type:  CollectionScientificPaper,
			Title: "Cancer Genomics",
			Data: map[string]any{
				"journal":         "Nature",
				"citations_count": 150,
				"authors":         nil,
			},
		},
	}

	resp := PaperTransformer{}.Transform(results, PageInfo{Page: 1, PerPage: 10, Total: 1})

	require.Len(t, resp.Results, 1)
	assert.Equal(t, map[string]any{
		"authors":          []string{},
		"publication_date": nil,
		"journal":          "Nature",
		"doi":              nil,
		"keywords":         []string{},
		"citations_count":  150,
		"references":       []string{},
	}, resp.Results[0]["data"])

	empty := PaperTransformer{}.Transform([]Result{{ID: "4"}}, PageInfo{Page: 1, PerPage: 10, Total: 1})
	assert.Equal(t, 0, empty.Results[0]["data"].(map[string]any)["citations_count"])
}

func TestDomainTransformer(t *testing.T) {
	results := []Result{
		{
			ID:          "5",
			Type:        CollectionDataDomain,
			Title:       "patient_vitals",
			Description: "Vital signs",
			Data: map[string]any{
				"data_format":       "JSON",
				"schema_definition": map[string]any{"type": "object"},
				"validation_rules":  map[string]any{"required": []any{"patient_id"}},
				"sample_data":       map[string]any{"patient_id": "p-1"},
				"owner":             "clinical-data-team",
				"created_at":        "2025-01-01T00:00:00Z",
				"updated_at":        "2025-02-01T00:00:00Z",
			},
		},
	}

	resp := DomainTransformer{}.Transform(results, PageInfo{Page: 1, PerPage: 10, Total: 1})

	require.Len(t, resp.Results, 1)
	assert.Equal(t, map[string]any{
		"id":          "5",
		"domain_name": "patient_vitals",
		"description": "Vital signs",
		"schema": map[string]any{
			"format":           "JSON",
			"definition":       map[string]any{"type": "object"},
			"validation_rules": map[string]any{"required": []any{"patient_id"}},
		},
		"examples": map[string]any{
			"sample_data": map[string]any{"patient_id": "p-1"},
		},
		"ownership": map[string]any{
			"owner":      "clinical-data-team",
			"created_at": "2025-01-01T00:00:00Z",
			"updated_at": "2025-02-01T00:00:00Z",
		},
	}, resp.Results[0])
}

func TestStudyTransformer(t *testing.T) {
	transformer := &StudyTransformer{}
	resp := transformer.Transform([]Result{sampleStudyResult()}, PageInfo{Page: 1, PerPage: 10, Total: 1})

	require.Len(t, resp.Results, 1)
	item := resp.Results[0]
	assert.Equal(t, 0.8, item["relevance_score"])
	assert.Equal(t, []DataProductSummary{{ID: 7, Title: "Baseline vitals", AccessLevel: "Public"}}, item["data_products"])
	assert.NotContains(t, item, "type")

	details, ok := item["study_details"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, details, len(studyDetailKeys))
	assert.Equal(t, "Aspirin", details["drug"])
	assert.Nil(t, details["severity"])
	assert.NotContains(t, details, "title")

	bare := transformer.Transform([]Result{{ID: "9"}}, PageInfo{Page: 1, PerPage: 10, Total: 1})
	assert.Equal(t, []DataProductSummary{}, bare.Results[0]["data_products"])
	assert.Equal(t, 1.0, bare.Results[0]["relevance_score"])
}

func TestTransformers_EmptyResults(t *testing.T) {
	for _, factory := range []TransformerFactory{
		func() Transformer { return DefaultTransformer{} },
		func() Transformer { return CompactTransformer{} },
		func() Transformer { return DetailedTransformer{} },
		func() Transformer { return PaperTransformer{} },
		func() Transformer { return DomainTransformer{} },
		func() Transformer { return &StudyTransformer{} },
	} {
		transformer := factory()
		t.Run(string(transformer.Schema()), func(t *testing.T) {
			resp := transformer.Transform(nil, PageInfo{})

			assert.NotNil(t, resp.Results)
			assert.Empty(t, resp.Results)
			assert.Equal(t, Pagination{Page: 1, PerPage: 10}, resp.Pagination)
		})
	}
}
