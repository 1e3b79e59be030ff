package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
	"gorm.io/gorm"

	"github.com/killallgit/biomed-search/internal/models"
)

const dateFmt = "2006-01-02"

// Fixture is the on-disk seed document
type Fixture struct {
	Studies []Study  `yaml:"studies"`
	Papers  []Paper  `yaml:"papers"`
	Domains []Domain `yaml:"domains"`
}

// Study is a clinical study with its data products
type Study struct {
	Title              string        `yaml:"title"`
	Description        string        `yaml:"description"`
	Status             string        `yaml:"status"`
	Phase              string        `yaml:"phase"`
	Drug               string        `yaml:"drug"`
	StartDate          string        `yaml:"start_date,omitempty"`
	EndDate            string        `yaml:"end_date,omitempty"`
	RelevanceScore     float64       `yaml:"relevance_score,omitempty"`
	IndicationCategory string        `yaml:"indication_category"`
	ProcedureCategory  string        `yaml:"procedure_category"`
	Severity           string        `yaml:"severity"`
	RiskLevel          string        `yaml:"risk_level"`
	Duration           int           `yaml:"duration"`
	Institution        string        `yaml:"institution"`
	ParticipantCount   int           `yaml:"participant_count"`
	DataProducts       []DataProduct `yaml:"data_products,omitempty"`
}

// DataProduct is a dataset attached to a study
type DataProduct struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Format      string `yaml:"format"`
	Size        string `yaml:"size"`
	AccessLevel string `yaml:"access_level,omitempty"`
}

// Paper is a scientific paper
type Paper struct {
	Title           string   `yaml:"title"`
	Abstract        string   `yaml:"abstract"`
	Authors         []string `yaml:"authors,omitempty"`
	PublicationDate string   `yaml:"publication_date,omitempty"`
	Journal         string   `yaml:"journal"`
	DOI             string   `yaml:"doi,omitempty"`
	Keywords        []string `yaml:"keywords,omitempty"`
	CitationsCount  int      `yaml:"citations_count"`
	References      []string `yaml:"references,omitempty"`
	IsRestricted    bool     `yaml:"is_restricted,omitempty"`
	OrganizationID  string   `yaml:"organization_id,omitempty"`
}

// Domain is a data domain description
type Domain struct {
	DomainName       string         `yaml:"domain_name"`
	Description      string         `yaml:"description"`
	SchemaDefinition map[string]any `yaml:"schema_definition,omitempty"`
	ValidationRules  map[string]any `yaml:"validation_rules,omitempty"`
	DataFormat       string         `yaml:"data_format"`
	SampleData       any            `yaml:"sample_data,omitempty"`
	Owner            string         `yaml:"owner"`
}

// Counts reports how many records Apply inserted
type Counts struct {
	Studies      int
	DataProducts int
	Papers       int
	Domains      int
}

// Load reads a fixture file
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture document
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

// Apply inserts every record of f in one transaction
func Apply(ctx context.Context, db *gorm.DB, f *Fixture) (Counts, error) {
	var counts Counts

	studies := make([]models.ClinicalStudy, 0, len(f.Studies))
	for i, s := range f.Studies {
		study, err := s.model()
		if err != nil {
			return Counts{}, fmt.Errorf("study %d (%q): %w", i, s.Title, err)
		}
		studies = append(studies, study)
		counts.DataProducts += len(study.DataProducts)
	}

	papers := make([]models.ScientificPaper, 0, len(f.Papers))
	for i, p := range f.Papers {
		paper, err := p.model()
		if err != nil {
			return Counts{}, fmt.Errorf("paper %d (%q): %w", i, p.Title, err)
		}
		papers = append(papers, paper)
	}

	domains := make([]models.DataDomainMetadata, 0, len(f.Domains))
	for _, d := range f.Domains {
		domains = append(domains, d.model())
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(studies) > 0 {
			if err := tx.Create(&studies).Error; err != nil {
				return fmt.Errorf("inserting studies: %w", err)
			}
		}
		if len(papers) > 0 {
			if err := tx.Create(&papers).Error; err != nil {
				return fmt.Errorf("inserting papers: %w", err)
			}
		}
		if len(domains) > 0 {
			if err := tx.Create(&domains).Error; err != nil {
				return fmt.Errorf("inserting domains: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	counts.Studies = len(studies)
	counts.Papers = len(papers)
	counts.Domains = len(domains)
	return counts, nil
}

func (s Study) model() (models.ClinicalStudy, error) {
	start, err := parseDate(s.StartDate)
	if err != nil {
		return models.ClinicalStudy{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := parseDate(s.EndDate)
	if err != nil {
		return models.ClinicalStudy{}, fmt.Errorf("end_date: %w", err)
	}

	products := make([]models.DataProduct, 0, len(s.DataProducts))
	for _, dp := range s.DataProducts {
		products = append(products, models.DataProduct{
			Title:       dp.Title,
			Description: dp.Description,
			Type:        dp.Type,
			Format:      dp.Format,
			Size:        dp.Size,
			AccessLevel: dp.AccessLevel,
		})
	}

	return models.ClinicalStudy{
		Title:              s.Title,
		Description:        s.Description,
		Status:             s.Status,
		Phase:              s.Phase,
		Drug:               s.Drug,
		StartDate:          start,
		EndDate:            end,
		RelevanceScore:     s.RelevanceScore,
		IndicationCategory: s.IndicationCategory,
		ProcedureCategory:  s.ProcedureCategory,
		Severity:           s.Severity,
		RiskLevel:          s.RiskLevel,
		Duration:           s.Duration,
		Institution:        s.Institution,
		ParticipantCount:   s.ParticipantCount,
		DataProducts:       products,
	}, nil
}

func (p Paper) model() (models.ScientificPaper, error) {
	published, err := parseDate(p.PublicationDate)
	if err != nil {
		return models.ScientificPaper{}, fmt.Errorf("publication_date: %w", err)
	}

	paper := models.ScientificPaper{
		Title:           p.Title,
		Abstract:        p.Abstract,
		Authors:         p.Authors,
		PublicationDate: published,
		Journal:         p.Journal,
		Keywords:        p.Keywords,
		CitationsCount:  p.CitationsCount,
		ReferenceList:   p.References,
		IsRestricted:    p.IsRestricted,
	}
	if p.DOI != "" {
		doi := p.DOI
		paper.DOI = &doi
	}
	if p.OrganizationID != "" {
		org := p.OrganizationID
		paper.OrganizationID = &org
	}
	return paper, nil
}

func (d Domain) model() models.DataDomainMetadata {
	return models.DataDomainMetadata{
		DomainName:       d.DomainName,
		Description:      d.Description,
		SchemaDefinition: d.SchemaDefinition,
		ValidationRules:  d.ValidationRules,
		DataFormat:       d.DataFormat,
		SampleData:       d.SampleData,
		Owner:            d.Owner,
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFmt, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
