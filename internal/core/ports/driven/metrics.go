package driven

import "time"

// Geocode lookup outcomes reported to Metrics.
const (
	GeocodeCacheHit      = "cache_hit"
	GeocodeCacheNegative = "cache_negative"
	GeocodeResolved      = "resolved"
	GeocodeUnresolved    = "unresolved"
)

// Metrics receives pipeline observations.
type Metrics interface {
	// GeocodeLookup counts one lookup by outcome.
	GeocodeLookup(outcome string)

	// DocumentEnriched counts one enriched document by location source.
	DocumentEnriched(source string, hasDate bool)

	// SearchCompleted records one engine round trip.
	SearchCompleted(op string, elapsed time.Duration, err error)
}

// NopMetrics discards all observations.
type NopMetrics struct{}

// GeocodeLookup implements Metrics.
func (NopMetrics) GeocodeLookup(string) {}

// DocumentEnriched implements Metrics.
func (NopMetrics) DocumentEnriched(string, bool) {}

// SearchCompleted implements Metrics.
func (NopMetrics) SearchCompleted(string, time.Duration, error) {}
