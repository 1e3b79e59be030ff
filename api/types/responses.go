package types

import (
	"github.com/killallgit/biomed-search/internal/models"
	"github.com/killallgit/biomed-search/internal/services/search"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// SearchResponse is a rendered search. SearchHistoryID is set when the search
// was recorded for an authenticated caller.
type SearchResponse struct {
	*search.Response
	SearchHistoryID string `json:"search_history_id,omitempty"`
}

// Suggestion is one typeahead entry
type Suggestion struct {
	Text string `json:"text" example:"Aspirin for Stroke Prevention"`
	Type string `json:"type" example:"clinical_study"`
}

// SuggestResponse for the suggest endpoint
type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// HistoryEntryResponse wraps a single history entry
type HistoryEntryResponse struct {
	BaseResponse
	Entry *models.SearchHistory `json:"entry"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`   // Error code/type
	Details any    `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Database  map[string]any `json:"database"`
}
