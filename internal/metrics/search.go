package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "biomed",
			Name:      "search_requests_total",
			Help:      "Total number of searches by collection, schema and outcome",
		},
		[]string{"collection", "schema", "outcome"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "biomed",
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"collection"},
	)

	IgnoredFiltersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "biomed",
			Name:      "search_ignored_filters_total",
			Help:      "Filters dropped because the collection cannot apply them",
		},
		[]string{"collection"},
	)

	SchemaFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "biomed",
			Name:      "search_schema_fallbacks_total",
			Help:      "Searches rendered with the default schema because the requested one is unknown",
		},
	)
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(IgnoredFiltersTotal)
	prometheus.MustRegister(SchemaFallbacksTotal)
}

// unknownLabel replaces any caller-supplied label value outside the known set
const unknownLabel = "unknown"

// SearchRecorder reports search outcomes to Prometheus. Collection and schema
// labels are limited to the names it was built with; ignored filter names and
// requested fallback schemas are never used as labels.
type SearchRecorder struct {
	collections map[string]struct{}
	schemas     map[string]struct{}
}

// NewSearchRecorder creates a recorder backed by the default registry
func NewSearchRecorder(collections, schemas []string) *SearchRecorder {
	return &SearchRecorder{
		collections: labelSet(collections),
		schemas:     labelSet(schemas),
	}
}

func (r *SearchRecorder) ObserveSearch(collection, schema, outcome string, d time.Duration) {
	collection = known(r.collections, collection)
	SearchRequestsTotal.WithLabelValues(collection, known(r.schemas, schema), outcome).Inc()
	SearchDuration.WithLabelValues(collection).Observe(d.Seconds())
}

func (r *SearchRecorder) IgnoredFilter(collection, _ string) {
	IgnoredFiltersTotal.WithLabelValues(known(r.collections, collection)).Inc()
}

func (r *SearchRecorder) SchemaFallback(string) {
	SchemaFallbacksTotal.Inc()
}

func labelSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func known(set map[string]struct{}, v string) string {
	if _, ok := set[v]; ok {
		return v
	}
	return unknownLabel
}
