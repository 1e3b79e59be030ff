package search

// Transformer reshapes provider results into a public response. The set is closed:
// DefaultTransformer, CompactTransformer, DetailedTransformer, PaperTransformer,
// DomainTransformer and StudyTransformer.
type Transformer interface {
	// Schema returns the schema type the transformer renders
	Schema() SchemaType

	// Transform renders items and pagination. Pagination is identical across variants.
	Transform(results []Result, info PageInfo) Response

	transformer()
}

// UserContextAware is implemented by transformers that want the caller's context
// before Transform runs
type UserContextAware interface {
	SetUserContext(user *UserContext)
}

// TransformerFactory builds a fresh transformer for one request
type TransformerFactory func() Transformer

// Response is the rendered search response
type Response struct {
	Results    []map[string]any `json:"results"`
	Pagination Pagination       `json:"pagination"`
	Notices    *Notices         `json:"notices,omitempty"`
}

// Notices reports request parts that were dropped instead of failing the search
type Notices struct {
	IgnoredFilters []string `json:"ignored_filters,omitempty"`
	SchemaFallback string   `json:"schema_fallback,omitempty"`
}

type baseTransformer struct{}

func (baseTransformer) transformer() {}

// render applies item to every result and attaches the pagination block
func render(results []Result, info PageInfo, item func(Result) map[string]any) Response {
	items := make([]map[string]any, 0, len(results))
	for _, r := range results {
		items = append(items, item(r))
	}
	return Response{
		Results:    items,
		Pagination: info.Pagination(),
	}
}
