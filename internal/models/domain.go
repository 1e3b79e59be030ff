package models

import "time"

// DataDomainMetadata describes a governed data domain and its schema
type DataDomainMetadata struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	DomainName       string         `json:"domain_name" gorm:"not null;uniqueIndex"`
	Description      string         `json:"description" gorm:"type:text"`
	SchemaDefinition map[string]any `json:"schema_definition" gorm:"type:text;serializer:json"`
	ValidationRules  map[string]any `json:"validation_rules" gorm:"type:text;serializer:json"`
	DataFormat       string         `json:"data_format" gorm:"index"`
	SampleData       any            `json:"sample_data" gorm:"type:text;serializer:json"`
	Owner            string         `json:"owner" gorm:"index"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TableName keeps the table name stable regardless of the struct name
func (DataDomainMetadata) TableName() string {
	return "data_domain_metadata"
}
