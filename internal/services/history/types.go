package history

import (
	"github.com/cockroachdb/errors"

	"github.com/killallgit/biomed-search/internal/models"
)

// ErrNotFound means no entry with the ID exists for the user
var ErrNotFound = errors.New("search history entry not found")

// Entry is a completed search to record
type Entry struct {
	UserID       string
	Query        string
	Category     string
	Filters      map[string]any
	ResultsCount int64
}

// Page is one page of history entries
type Page struct {
	Items   []models.SearchHistory `json:"items"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
	Total   int64                  `json:"total"`
	Pages   int                    `json:"pages"`
}

func newPage(items []models.SearchHistory, page, perPage int, total int64) *Page {
	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	if items == nil {
		items = []models.SearchHistory{}
	}
	return &Page{Items: items, Page: page, PerPage: perPage, Total: total, Pages: pages}
}
