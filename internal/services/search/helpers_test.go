package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/killallgit/biomed-search/internal/database"
	"github.com/killallgit/biomed-search/internal/models"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := database.InMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn.DB
}

func testDeps(db *gorm.DB) Deps {
	return Deps{DB: db, Now: func() time.Time { return fixedNow }}
}

func seedStudies(t *testing.T, db *gorm.DB) []models.ClinicalStudy {
	t.Helper()

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	studies := []models.ClinicalStudy{
		{
			Title:              "Aspirin for Stroke Prevention",
			Description:        "Low dose aspirin in adults over 60",
			Status:             "Recruiting",
			Phase:              "Phase III",
			Drug:               "Aspirin",
			IndicationCategory: "Cardiovascular",
			ProcedureCategory:  "Oral",
			Severity:           "Moderate",
			RiskLevel:          "Low",
			Duration:           12,
			Institution:        "Mercy General",
			ParticipantCount:   400,
			StartDate:          &start,
			DataProducts: []models.DataProduct{
				{Title: "Baseline vitals", Type: "Dataset", Format: "CSV", Size: "2MB"},
				{Title: "Adverse events", Type: "Dataset", Format: "JSON", Size: "1MB"},
				{Title: "Follow-up survey", Type: "Survey", Format: "CSV", Size: "500KB"},
			},
		},
		{
			Title:              "Metformin and Longevity",
			Description:        "Metabolic effects of metformin",
			Status:             "Active",
			Phase:              "Phase II",
			Drug:               "Metformin",
			IndicationCategory: "Metabolic",
			Severity:           "Mild",
			RiskLevel:          "Medium",
			Duration:           24,
			Institution:        "Northside Research",
			ParticipantCount:   120,
		},
		{
			Title:       "Statin Withdrawal Outcomes",
			Description: "Outcomes after stopping statins",
			Status:      "Completed",
			Phase:       "Phase IV",
			Drug:        "Atorvastatin",
			Severity:    "Severe",
			RiskLevel:   "High",
			Duration:    8,
		},
	}
	require.NoError(t, db.Create(&studies).Error)
	return studies
}

func seedPapers(t *testing.T, db *gorm.DB) []models.ScientificPaper {
	t.Helper()

	recent := fixedNow.AddDate(0, 0, -3)
	older := fixedNow.AddDate(0, -6, 0)
	org := "org-1"
	otherOrg := "org-2"

	papers := []models.ScientificPaper{
		{
			Title:           "Cancer Genomics",
			Abstract:        "Somatic mutation landscapes",
			Authors:         []string{"A. Researcher"},
			Journal:         "Nature",
			Keywords:        []string{"oncology", "genomics"},
			CitationsCount:  150,
			PublicationDate: &recent,
		},
		{
			Title:           "Sleep and Memory",
			Abstract:        "Consolidation during slow wave sleep",
			Journal:         "Neuron",
			Keywords:        []string{"neuroscience"},
			CitationsCount:  5,
			PublicationDate: &older,
		},
		{
			Title:          "Restricted Trial Results",
			Abstract:       "Embargoed oncology results",
			Journal:        "Lancet",
			Keywords:       []string{"embargo"},
			CitationsCount: 40,
			IsRestricted:   true,
			OrganizationID: &org,
		},
		{
			Title:          "Partner Lab Notes",
			Abstract:       "Organization scoped findings",
			Journal:        "Lancet",
			CitationsCount: 70,
			OrganizationID: &otherOrg,
		},
	}
	require.NoError(t, db.Create(&papers).Error)
	return papers
}

func seedDomains(t *testing.T, db *gorm.DB) []models.DataDomainMetadata {
	t.Helper()

	domains := []models.DataDomainMetadata{
		{
			DomainName:       "patient_vitals",
			Description:      "Vital signs captured at each visit",
			SchemaDefinition: map[string]any{"type": "object"},
			ValidationRules:  map[string]any{"required": []any{"patient_id"}},
			DataFormat:       "JSON",
			SampleData:       map[string]any{"patient_id": "p-1", "heart_rate": float64(72)},
			Owner:            "clinical-data-team",
		},
		{
			DomainName:  "lab_results",
			Description: "Laboratory panel results",
			DataFormat:  "CSV",
			Owner:       "lab-ops",
		},
	}
	require.NoError(t, db.Create(&domains).Error)
	return domains
}

func resultIDs(results []Result) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func resultTitles(results []Result) []string {
	titles := make([]string, 0, len(results))
	for _, r := range results {
		titles = append(titles, r.Title)
	}
	return titles
}
