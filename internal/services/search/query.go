package search

import (
	"sort"
	"time"
)

// CollectionType selects which record kind and provider handle a search
type CollectionType string

const (
	CollectionClinicalStudy   CollectionType = "clinical_study"
	CollectionScientificPaper CollectionType = "scientific_paper"
	CollectionDataDomain      CollectionType = "data_domain"
)

// Collections lists every supported collection type
func Collections() []CollectionType {
	return []CollectionType{CollectionClinicalStudy, CollectionScientificPaper, CollectionDataDomain}
}

// CollectionNames returns Collections as plain strings
func CollectionNames() []string {
	names := make([]string, 0, len(Collections()))
	for _, c := range Collections() {
		names = append(names, string(c))
	}
	return names
}

// Valid reports whether c is one of the supported collection types
func (c CollectionType) Valid() bool {
	for _, known := range Collections() {
		if c == known {
			return true
		}
	}
	return false
}

// SchemaType selects which transformer renders results
type SchemaType string

const (
	SchemaDefault             SchemaType = "default"
	SchemaCompact             SchemaType = "compact"
	SchemaDetailed            SchemaType = "detailed"
	SchemaScientificPaper     SchemaType = "scientific_paper"
	SchemaDataDomain          SchemaType = "data_domain"
	SchemaClinicalStudyCustom SchemaType = "clinical_study_custom"
)

// Schemas lists every supported schema type
func Schemas() []SchemaType {
	return []SchemaType{
		SchemaDefault,
		SchemaCompact,
		SchemaDetailed,
		SchemaScientificPaper,
		SchemaDataDomain,
		SchemaClinicalStudyCustom,
	}
}

// SchemaNames returns Schemas as plain strings
func SchemaNames() []string {
	names := make([]string, 0, len(Schemas()))
	for _, s := range Schemas() {
		names = append(names, string(s))
	}
	return names
}

// Valid reports whether s is one of the supported schema types
func (s SchemaType) Valid() bool {
	for _, known := range Schemas() {
		if s == known {
			return true
		}
	}
	return false
}

// Filters maps a filter name to a scalar, a list of scalars (OR) or a
// {"min": x, "max": y} range object.
type Filters map[string]any

// Names returns the filter names in a stable order
func (f Filters) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UserContext is the authorization view of the caller. The search core only reads it.
type UserContext struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	ID              string `json:"id,omitempty"`
	Email           string `json:"email,omitempty"`
	Role            string `json:"role,omitempty"`
	OrgID           string `json:"org_id,omitempty"`
}

// EffectiveRole returns the caller's role, "user" when none is set
func (u *UserContext) EffectiveRole() string {
	if u == nil || u.Role == "" {
		return RoleUser
	}
	return u.Role
}

const (
	RoleAdmin      = "admin"
	RoleResearcher = "researcher"
	RolePremium    = "premium"
	RoleUser       = "user"
)

// Query is a single search request bound to one collection
type Query struct {
	Terms      []string
	Collection CollectionType
	Filters    Filters
	Page       int
	PerPage    int
	Schema     SchemaType
	User       *UserContext
}

// Offset is the number of matching records skipped before this page
func (q Query) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// DataProductSummary is the public view of a study's data product
type DataProductSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Format      string `json:"format"`
	Size        string `json:"size"`
	AccessLevel string `json:"access_level"`
}

// Result is one matched record before rendering
type Result struct {
	ID             string
	Type           CollectionType
	Title          string
	Description    string
	RelevanceScore *float64
	Data           map[string]any
	DataProducts   []DataProductSummary
}

// PageInfo describes the page a provider returned. Total counts every record
// matching the term, filter and authorization predicates.
type PageInfo struct {
	Page    int
	PerPage int
	Total   int64
	// IgnoredFilters lists filter names the provider could not apply
	IgnoredFilters []string
}

// Pagination is the rendered pagination block
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// Pagination renders the page block. A zero PageInfo renders as page 1 of 10.
func (p PageInfo) Pagination() Pagination {
	page, perPage := p.Page, p.PerPage
	if page == 0 && perPage == 0 {
		page, perPage = 1, 10
	}

	pages := 0
	if perPage > 0 {
		pages = int((p.Total + int64(perPage) - 1) / int64(perPage))
	}

	return Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   p.Total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

func formatTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
