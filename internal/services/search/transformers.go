package search

// DefaultTransformer keeps each result's data map intact
type DefaultTransformer struct{ baseTransformer }

func (DefaultTransformer) Schema() SchemaType { return SchemaDefault }

func (DefaultTransformer) Transform(results []Result, info PageInfo) Response {
	return render(results, info, func(r Result) map[string]any {
		return map[string]any{
			"id":          r.ID,
			"type":        r.Type,
			"title":       r.Title,
			"description": r.Description,
			"data":        r.Data,
		}
	})
}

// CompactTransformer renders only identity fields
type CompactTransformer struct{ baseTransformer }

func (CompactTransformer) Schema() SchemaType { return SchemaCompact }

func (CompactTransformer) Transform(results []Result, info PageInfo) Response {
	return render(results, info, func(r Result) map[string]any {
		return map[string]any{
			"id":    r.ID,
			"title": r.Title,
			"type":  r.Type,
		}
	})
}

// DetailedTransformer lifts data keys to the top level of each item.
// A data key with the same name as a base field replaces it.
type DetailedTransformer struct{ baseTransformer }

func (DetailedTransformer) Schema() SchemaType { return SchemaDetailed }

func (DetailedTransformer) Transform(results []Result, info PageInfo) Response {
	return render(results, info, func(r Result) map[string]any {
		item := map[string]any{
			"id":          r.ID,
			"type":        r.Type,
			"title":       r.Title,
			"description": r.Description,
		}
		for k, v := range r.Data {
			item[k] = v
		}
		return item
	})
}

// PaperTransformer renders bibliographic data with explicit defaults
type PaperTransformer struct{ baseTransformer }

func (PaperTransformer) Schema() SchemaType { return SchemaScientificPaper }

func (PaperTransformer) Transform(results []Result, info PageInfo) Response {
	return render(results, info, func(r Result) map[string]any {
		return map[string]any{
			"id":          r.ID,
			"type":        r.Type,
			"title":       r.Title,
			"description": r.Description,
			"data": map[string]any{
				"authors":          valueOr(r.Data, "authors", []string{}),
				"publication_date": valueOr(r.Data, "publication_date", nil),
				"journal":          valueOr(r.Data, "journal", nil),
				"doi":              valueOr(r.Data, "doi", nil),
				"keywords":         valueOr(r.Data, "keywords", []string{}),
				"citations_count":  valueOr(r.Data, "citations_count", 0),
				"references":       valueOr(r.Data, "references", []string{}),
			},
		}
	})
}

// DomainTransformer groups domain metadata into schema, examples and ownership
type DomainTransformer struct{ baseTransformer }

func (DomainTransformer) Schema() SchemaType { return SchemaDataDomain }

func (DomainTransformer) Transform(results []Result, info PageInfo) Response {
	return render(results, info, func(r Result) map[string]any {
		return map[string]any{
			"id":          r.ID,
			"domain_name": r.Title,
			"description": r.Description,
			"schema": map[string]any{
				"format":           r.Data["data_format"],
				"definition":       r.Data["schema_definition"],
				"validation_rules": r.Data["validation_rules"],
			},
			"examples": map[string]any{
				"sample_data": r.Data["sample_data"],
			},
			"ownership": map[string]any{
				"owner":      r.Data["owner"],
				"created_at": r.Data["created_at"],
				"updated_at": r.Data["updated_at"],
			},
		}
	})
}

// StudyTransformer is the clinical study rendering. Clinical study searches always use it.
type StudyTransformer struct {
	baseTransformer
	user *UserContext
}

func (*StudyTransformer) Schema() SchemaType { return SchemaClinicalStudyCustom }

// SetUserContext records the caller for per-row redaction
func (t *StudyTransformer) SetUserContext(user *UserContext) {
	t.user = user
}

func (t *StudyTransformer) Transform(results []Result, info PageInfo) Response {
	return render(results, info, func(r Result) map[string]any {
		products := r.DataProducts
		if products == nil {
			products = []DataProductSummary{}
		}

		relevance := 1.0
		if r.RelevanceScore != nil {
			relevance = *r.RelevanceScore
		}

		details := make(map[string]any, len(studyDetailKeys))
		for _, k := range studyDetailKeys {
			details[k] = r.Data[k]
		}

		return map[string]any{
			"id":              r.ID,
			"title":           r.Title,
			"description":     r.Description,
			"relevance_score": relevance,
			"study_details":   details,
			"data_products":   products,
		}
	})
}

var studyDetailKeys = []string{
	"status",
	"phase",
	"drug",
	"institution",
	"participant_count",
	"start_date",
	"end_date",
	"indication_category",
	"procedure_category",
	"severity",
	"risk_level",
	"duration",
}

// valueOr returns data[key] unless it is missing or nil
func valueOr(data map[string]any, key string, def any) any {
	if v, ok := data[key]; ok && v != nil {
		return v
	}
	return def
}
