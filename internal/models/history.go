package models

import "time"

// SearchHistory records a search run by an authenticated user. Entries marked
// saved double as saved searches.
type SearchHistory struct {
	ID           string         `json:"id" gorm:"primaryKey;size:27"`
	UserID       string         `json:"user_id" gorm:"not null;index"`
	Query        string         `json:"query"`
	Category     string         `json:"category"`
	Filters      map[string]any `json:"filters" gorm:"type:text;serializer:json"`
	ResultsCount int64          `json:"results_count"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
	IsSaved      bool           `json:"is_saved" gorm:"default:false;index"`
	LastUsed     time.Time      `json:"last_used"`
	UseCount     int            `json:"use_count" gorm:"default:1"`
	Name         *string        `json:"name"`
}

// TableName keeps the table name stable regardless of the struct name
func (SearchHistory) TableName() string {
	return "search_history"
}
