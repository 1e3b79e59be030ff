package search

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const tracerName = "github.com/killallgit/biomed-search/search"

// Recorder receives search outcomes for metrics
type Recorder interface {
	ObserveSearch(collection, schema, outcome string, d time.Duration)
	IgnoredFilter(collection, name string)
	SchemaFallback(requested string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSearch(string, string, string, time.Duration) {}
func (nopRecorder) IgnoredFilter(string, string)                        {}
func (nopRecorder) SchemaFallback(string)                               {}

// Request is one search call
type Request struct {
	Collection CollectionType
	Terms      []string
	Filters    Filters
	Page       int
	PerPage    int
	Schema     SchemaType
	User       *UserContext
}

// Service resolves a provider and a transformer per request and runs the search
type Service struct {
	db        *gorm.DB
	providers *ProviderRegistry
	schemas   *SchemaRegistry
	logger    *zap.Logger
	tracer    trace.Tracer
	recorder  Recorder
	now       func() time.Time
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithProviders replaces the built-in provider registry
func WithProviders(r *ProviderRegistry) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.providers = r
		}
	}
}

// WithSchemas replaces the built-in schema registry
func WithSchemas(r *SchemaRegistry) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.schemas = r
		}
	}
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer used for search spans
func WithTracer(t trace.Tracer) ServiceOption {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithClock sets the clock providers use for relative date filters
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a search service over db with the built-in registries
func NewService(db *gorm.DB, opts ...ServiceOption) *Service {
	s := &Service{
		db:        db,
		providers: DefaultProviders(),
		schemas:   DefaultSchemas(),
		logger:    zap.NewNop(),
		tracer:    otel.Tracer(tracerName),
		recorder:  nopRecorder{},
		now:       func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) deps() Deps {
	return Deps{DB: s.db, Now: s.now, Logger: s.logger}
}

// Search runs req against its collection's provider and renders the result.
// Clinical study searches are always rendered with the clinical_study_custom schema,
// and an unregistered schema degrades to the default rendering with a notice.
func (s *Service) Search(ctx context.Context, req Request) (resp *Response, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "search.Search", trace.WithAttributes(
		attribute.String("search.collection", string(req.Collection)),
		attribute.String("search.schema", string(req.Schema)),
		attribute.Int("search.page", req.Page),
		attribute.Int("search.per_page", req.PerPage),
	))
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = outcomeOf(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int64("search.total", resp.Pagination.Total))
		}
		s.recorder.ObserveSearch(string(req.Collection), string(req.Schema), outcome, time.Since(start))
		span.End()
	}()

	if req.Page < 1 {
		return nil, invalidQuery("page must be at least 1, got %d", req.Page)
	}
	if req.PerPage < 1 {
		return nil, invalidQuery("per_page must be at least 1, got %d", req.PerPage)
	}

	schema := req.Schema
	if req.Collection == CollectionClinicalStudy {
		schema = SchemaClinicalStudyCustom
	}

	provider, err := s.providers.Provider(req.Collection, s.deps())
	if err != nil {
		return nil, err
	}

	query := Query{
		Terms:      req.Terms,
		Collection: req.Collection,
		Filters:    req.Filters,
		Page:       req.Page,
		PerPage:    req.PerPage,
		Schema:     schema,
		User:       req.User,
	}

	results, info, err := provider.Search(ctx, query)
	if err != nil {
		if !errors.Is(err, ErrProviderExecution) {
			err = executionError(err, "searching %s", req.Collection)
		}
		s.logger.Error("provider search failed",
			zap.String("collection", string(req.Collection)),
			zap.Strings("terms", req.Terms),
			zap.Any("filters", req.Filters),
			zap.Error(err),
		)
		return nil, err
	}

	var notices Notices
	transformer, ok := s.schemas.Transformer(schema)
	if !ok && req.Collection == CollectionClinicalStudy {
		transformer = s.studyTransformer()
	} else if !ok {
		transformer = DefaultTransformer{}
		notices.SchemaFallback = string(schema)
		s.logger.Warn("unknown schema type, using default",
			zap.String("schema", string(schema)),
			zap.String("collection", string(req.Collection)),
		)
		s.recorder.SchemaFallback(string(schema))
	}

	if req.Collection == CollectionClinicalStudy && transformer.Schema() != SchemaClinicalStudyCustom {
		transformer = s.studyTransformer()
	}

	if aware, ok := transformer.(UserContextAware); ok && req.User != nil {
		aware.SetUserContext(req.User)
	}

	rendered := transformer.Transform(results, info)

	if len(info.IgnoredFilters) > 0 {
		notices.IgnoredFilters = info.IgnoredFilters
		s.logger.Warn("ignored filters",
			zap.String("collection", string(req.Collection)),
			zap.Strings("filters", info.IgnoredFilters),
		)
		for _, name := range info.IgnoredFilters {
			s.recorder.IgnoredFilter(string(req.Collection), name)
		}
	}
	if notices.SchemaFallback != "" || len(notices.IgnoredFilters) > 0 {
		rendered.Notices = &notices
	}

	return &rendered, nil
}

// studyTransformer returns the registered clinical study transformer, or the built-in one
// when the registry entry is missing or renders a different schema
func (s *Service) studyTransformer() Transformer {
	if t, ok := s.schemas.Transformer(SchemaClinicalStudyCustom); ok && t.Schema() == SchemaClinicalStudyCustom {
		return t
	}
	return &StudyTransformer{}
}

// AvailableFilters lists the filters of collection c. ok is false when no provider is registered.
func (s *Service) AvailableFilters(ctx context.Context, c CollectionType) (map[string]any, bool, error) {
	provider, ok := s.Provider(c)
	if !ok {
		return nil, false, nil
	}

	filters, err := provider.AvailableFilters(ctx)
	if err != nil {
		s.logger.Error("listing available filters failed",
			zap.String("collection", string(c)),
			zap.Error(err),
		)
		return nil, true, err
	}
	return filters, true, nil
}

// Provider returns the provider for c, or false when none is registered
func (s *Service) Provider(c CollectionType) (Provider, bool) {
	p, err := s.providers.Provider(c, s.deps())
	if err != nil {
		return nil, false
	}
	return p, true
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrUnknownCollectionType):
		return "unknown_collection"
	case errors.Is(err, ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
