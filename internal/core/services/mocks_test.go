package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/storage/memory"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockRecognizer implements driven.EntityRecognizer for testing.
type mockRecognizer struct {
	spans []domain.EntitySpan
	err   error
	calls int
	texts []string
}

func (m *mockRecognizer) Recognize(_ context.Context, text string) ([]domain.EntitySpan, error) {
	m.calls++
	m.texts = append(m.texts, text)
	if m.err != nil {
		return nil, m.err
	}
	return m.spans, nil
}

// placeSpans builds place-labelled spans.
func placeSpans(names ...string) []domain.EntitySpan {
	spans := make([]domain.EntitySpan, len(names))
	for i, n := range names {
		spans[i] = domain.EntitySpan{Label: domain.LabelPlace, Text: n}
	}
	return spans
}

// mockGeocoder implements driven.Geocoder for testing. Lookups are
// case-insensitive; unknown names are not found.
type mockGeocoder struct {
	mu     sync.Mutex
	points map[string]domain.GeoPoint
	err    error
	calls  []string
}

func newMockGeocoder() *mockGeocoder {
	return &mockGeocoder{points: map[string]domain.GeoPoint{
		"paris":  {Lat: 48.8566, Lon: 2.3522},
		"london": {Lat: 51.5074, Lon: -0.1278},
		"tokyo":  {Lat: 35.6762, Lon: 139.6503},
		"japan":  {Lat: 36.2048, Lon: 138.2529},
		"ghana":  {Lat: 7.9465, Lon: -1.0232},
	}}
}

func (m *mockGeocoder) Geocode(_ context.Context, name string) (domain.GeoPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	if m.err != nil {
		return domain.GeoPoint{}, m.err
	}
	p, ok := m.points[strings.ToLower(name)]
	if !ok {
		return domain.GeoPoint{}, fmt.Errorf("%q: %w", name, domain.ErrGeocodeNotFound)
	}
	return p, nil
}

func (m *mockGeocoder) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockMetrics implements driven.Metrics for testing.
type mockMetrics struct {
	lookups  []string
	enriched []string
	searches []string
}

func (m *mockMetrics) GeocodeLookup(outcome string) {
	m.lookups = append(m.lookups, outcome)
}

func (m *mockMetrics) DocumentEnriched(source string, _ bool) {
	m.enriched = append(m.enriched, source)
}

func (m *mockMetrics) SearchCompleted(op string, _ time.Duration, _ error) {
	m.searches = append(m.searches, op)
}

// recordingEngine wraps the memory engine and keeps the last request.
type recordingEngine struct {
	*memory.SearchEngine
	requests []driven.SearchRequest
	err      error
}

func newRecordingEngine() *recordingEngine {
	return &recordingEngine{SearchEngine: memory.NewSearchEngine()}
}

func (e *recordingEngine) Search(ctx context.Context, req driven.SearchRequest) (*driven.SearchResponse, error) {
	e.requests = append(e.requests, req)
	if e.err != nil {
		return nil, e.err
	}
	return e.SearchEngine.Search(ctx, req)
}

func (e *recordingEngine) last() driven.SearchRequest {
	return e.requests[len(e.requests)-1]
}

// mockEngine returns canned hits for every search.
type mockEngine struct {
	recordingEngine
	hits []driven.SearchHit
}

func (e *mockEngine) Search(_ context.Context, req driven.SearchRequest) (*driven.SearchResponse, error) {
	e.requests = append(e.requests, req)
	if e.err != nil {
		return nil, e.err
	}
	return &driven.SearchResponse{Total: int64(len(e.hits)), Hits: e.hits}, nil
}

var errEngineDown = errors.New("connection refused")

// newTestResolver returns a resolver with a fresh cache and no delay.
func newTestResolver(g driven.Geocoder) *GeocodeResolver {
	return NewGeocodeResolver(g, memory.NewGeocodeCache(), WithMinInterval(0))
}
