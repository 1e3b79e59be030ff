package types

// SearchRequest represents a collection search request
type SearchRequest struct {
	Query          string         `json:"query" binding:"required,min=2" example:"aspirin OR stroke"`
	CollectionType string         `json:"collection_type,omitempty" example:"clinical_study"`
	SchemaType     string         `json:"schema_type,omitempty" example:"default"`
	Page           int            `json:"page,omitempty" example:"1"`
	PerPage        int            `json:"per_page,omitempty" example:"10"`
	Filters        map[string]any `json:"filters,omitempty" swaggertype:"object"`
}

// SaveSearchRequest marks a history entry as a saved search
type SaveSearchRequest struct {
	SearchID string `json:"search_id" binding:"required" example:"2aKXFkGr9zUzfHzwX8cPvYvDxqU"`
	Name     string `json:"name" binding:"required,max=200" example:"Phase III cardiology"`
}
