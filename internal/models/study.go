package models

import "time"

// ClinicalStudy is a registered clinical trial with its associated data products
type ClinicalStudy struct {
	ID                 uint          `json:"id" gorm:"primaryKey"`
	Title              string        `json:"title" gorm:"not null;index"`
	Description        string        `json:"description" gorm:"type:text"`
	Status             string        `json:"status" gorm:"index"`
	Phase              string        `json:"phase" gorm:"index"`
	Drug               string        `json:"drug" gorm:"index"`
	StartDate          *time.Time    `json:"start_date"`
	EndDate            *time.Time    `json:"end_date"`
	RelevanceScore     float64       `json:"relevance_score" gorm:"default:1"`
	IndicationCategory string        `json:"indication_category"`
	ProcedureCategory  string        `json:"procedure_category"`
	Severity           string        `json:"severity"`
	RiskLevel          string        `json:"risk_level"`
	Duration           int           `json:"duration"` // weeks
	Institution        string        `json:"institution"`
	ParticipantCount   int           `json:"participant_count"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	DataProducts       []DataProduct `json:"data_products,omitempty" gorm:"foreignKey:StudyID;constraint:OnDelete:CASCADE"`
}

// DataProduct is a dataset published alongside a clinical study
type DataProduct struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudyID     uint      `json:"study_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Type        string    `json:"type"`
	Format      string    `json:"format"`
	Size        string    `json:"size"`
	AccessLevel string    `json:"access_level" gorm:"default:Public"`
	CreatedAt   time.Time `json:"created_at"`
}
