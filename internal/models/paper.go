package models

import "time"

// ScientificPaper is a published article. Keywords are stored as a JSON
// array so term matching can run against their serialized form.
type ScientificPaper struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Title           string     `json:"title" gorm:"not null;index"`
	Abstract        string     `json:"abstract" gorm:"type:text"`
	Authors         []string   `json:"authors" gorm:"type:text;serializer:json"`
	PublicationDate *time.Time `json:"publication_date" gorm:"index"`
	Journal         string     `json:"journal" gorm:"index"`
	DOI             *string    `json:"doi" gorm:"column:doi;uniqueIndex"`
	Keywords        []string   `json:"keywords" gorm:"type:text;serializer:json"`
	CitationsCount  int        `json:"citations_count" gorm:"default:0"`
	ReferenceList   []string   `json:"references" gorm:"type:text;serializer:json"`
	IsRestricted    bool       `json:"is_restricted" gorm:"default:false"`
	OrganizationID  *string    `json:"organization_id" gorm:"index"`
	CreatedAt       time.Time  `json:"created_at"`
}
