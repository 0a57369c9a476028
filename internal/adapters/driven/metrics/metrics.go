// Package metrics provides a Prometheus implementation of driven.Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Metrics implements the interface.
var _ driven.Metrics = (*Metrics)(nil)

// Metrics names as constants for consistency.
const (
	MetricGeocodeLookups    = "smartdocs_geocode_lookups_total"
	MetricDocumentsEnriched = "smartdocs_documents_enriched_total"
	MetricSearchDuration    = "smartdocs_search_duration_seconds"
	MetricSearchErrors      = "smartdocs_search_errors_total"
)

// Metrics contains Prometheus metrics for the pipeline.
// All operations are thread-safe.
type Metrics struct {
	geocodeLookups    *prometheus.CounterVec
	documentsEnriched *prometheus.CounterVec
	searchDuration    *prometheus.HistogramVec
	searchErrors      *prometheus.CounterVec
}

// NewMetrics creates and returns a new Metrics instance with all collectors initialized.
// The metrics are not registered; call Register to register them with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		geocodeLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricGeocodeLookups,
				Help: "Geocode lookups by outcome (cache_hit, cache_negative, resolved, unresolved)",
			},
			[]string{"outcome"},
		),
		documentsEnriched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricDocumentsEnriched,
				Help: "Enriched documents by location source and date presence",
			},
			[]string{"location_source", "has_date"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricSearchDuration,
				Help:    "Search engine round trip duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0},
			},
			[]string{"operation"},
		),
		searchErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSearchErrors,
				Help: "Failed search engine round trips",
			},
			[]string{"operation"},
		),
	}
}

// Register registers all metrics with the given registry.
// Returns an error if registration fails.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors returns all Prometheus collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.geocodeLookups,
		m.documentsEnriched,
		m.searchDuration,
		m.searchErrors,
	}
}

// GeocodeLookup counts one lookup by outcome.
func (m *Metrics) GeocodeLookup(outcome string) {
	m.geocodeLookups.WithLabelValues(outcome).Inc()
}

// DocumentEnriched counts one enriched document.
func (m *Metrics) DocumentEnriched(source string, hasDate bool) {
	dated := "false"
	if hasDate {
		dated = "true"
	}
	m.documentsEnriched.WithLabelValues(source, dated).Inc()
}

// SearchCompleted records one engine round trip.
func (m *Metrics) SearchCompleted(op string, elapsed time.Duration, err error) {
	m.searchDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	if err != nil {
		m.searchErrors.WithLabelValues(op).Inc()
	}
}
