package cli

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results     []domain.SearchResult
	suggestions []domain.Suggestion
	lastSpec    domain.QuerySpec
	lastPrefix  string
	err         error
}

func (m *mockSearchService) Search(_ context.Context, spec domain.QuerySpec) ([]domain.SearchResult, error) {
	m.lastSpec = spec
	return m.results, m.err
}

func (m *mockSearchService) Autocomplete(_ context.Context, prefix string, _ int) ([]domain.Suggestion, error) {
	m.lastPrefix = prefix
	return m.suggestions, m.err
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	result   domain.BulkResult
	lastPath string
	lastOpts domain.EnrichOptions
	calls    []string
	err      error
}

func (m *mockIngestService) IndexDocument(
	_ context.Context, _ domain.Document, opts domain.EnrichOptions,
) (string, error) {
	m.lastOpts = opts
	m.calls = append(m.calls, "document")
	return "doc-1", m.err
}

func (m *mockIngestService) BulkIndex(
	_ context.Context, docs []domain.Document, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	m.lastOpts = opts
	m.calls = append(m.calls, "bulk")
	return domain.BulkResult{Total: len(docs), Success: len(docs)}, m.err
}

func (m *mockIngestService) IndexFile(
	_ context.Context, path string, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	m.lastPath = path
	m.lastOpts = opts
	m.calls = append(m.calls, "file")
	return m.result, m.err
}

func (m *mockIngestService) IndexDirectory(
	_ context.Context, dir string, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	m.lastPath = dir
	m.lastOpts = opts
	m.calls = append(m.calls, "directory")
	return m.result, m.err
}

func (m *mockIngestService) Reindex(_ context.Context, opts domain.EnrichOptions) (domain.BulkResult, error) {
	m.lastOpts = opts
	m.calls = append(m.calls, "reindex")
	return m.result, m.err
}

func (m *mockIngestService) Stats(_ context.Context) (domain.IndexStats, error) {
	return domain.IndexStats{Backend: "memory"}, m.err
}

// mockAnalyticsService is a mock implementation of driving.AnalyticsService.
type mockAnalyticsService struct {
	terms        []domain.TermCount
	dates        []domain.DateCount
	dashboard    domain.Dashboard
	lastInterval domain.CalendarInterval
	lastSize     int
	err          error
}

func (m *mockAnalyticsService) TopGeoreferences(_ context.Context, size int) ([]domain.TermCount, error) {
	m.lastSize = size
	return m.terms, m.err
}

func (m *mockAnalyticsService) TimeDistribution(
	_ context.Context, interval domain.CalendarInterval,
) ([]domain.DateCount, error) {
	m.lastInterval = interval
	return m.dates, m.err
}

func (m *mockAnalyticsService) TotalDocuments(_ context.Context) (int64, error) {
	return m.dashboard.TotalDocuments, m.err
}

func (m *mockAnalyticsService) DistinctGeoreferences(_ context.Context) (int64, error) {
	return m.dashboard.DistinctGeoreferences, m.err
}

func (m *mockAnalyticsService) Dashboard(_ context.Context) (domain.Dashboard, error) {
	return m.dashboard, m.err
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	search      *mockSearchService
	ingest      *mockIngestService
	analytics   *mockAnalyticsService
	ensureCalls []bool
}

// setupTestServices installs mocks with canned data and returns a cleanup
// func that restores the previous services and settings.
func setupTestServices() (*testServices, func()) {
	origSearch := searchService
	origIngest := ingestService
	origAnalytics := analyticsService
	origEnsure := ensureIndex
	origSupports := supportsFile
	origHealth := healthChecker
	origMetrics := metricsHandler
	origSettings := appSettings
	origStore := configStore

	ts := &testServices{
		search: &mockSearchService{
			results: []domain.SearchResult{
				{
					Document: domain.Document{
						ID:            "doc-1",
						Title:         "Cocoa exports rise",
						Content:       "Brazil cocoa exports rose sharply in March.",
						Date:          "1987-03-02T00:00:00",
						Georeferences: domain.StringList{"Brazil"},
					},
					Score: 4.25,
				},
			},
			suggestions: []domain.Suggestion{{ID: "doc-1", Title: "Cocoa exports rise", Score: 1.5}},
		},
		ingest: &mockIngestService{
			result: domain.BulkResult{Total: 2, Success: 2},
		},
		analytics: &mockAnalyticsService{
			terms: []domain.TermCount{{Key: "Brazil", Count: 4}, {Key: "Japan", Count: 2}},
			dates: []domain.DateCount{{Date: "1987-02", Count: 1}, {Date: "1987-03", Count: 3}},
			dashboard: domain.Dashboard{
				TotalDocuments:        6,
				DistinctGeoreferences: 2,
				TopGeoreferences:      []domain.TermCount{{Key: "Brazil", Count: 4}},
				Timeline:              []domain.DateCount{{Date: "1987-03", Count: 3}},
			},
		},
	}

	SetServices(Services{
		Search:    ts.search,
		Ingest:    ts.ingest,
		Analytics: ts.analytics,
		EnsureIndex: func(_ context.Context, recreate bool) error {
			ts.ensureCalls = append(ts.ensureCalls, recreate)
			return nil
		},
		Supports: func(string) bool { return true },
	})
	appSettings = domain.DefaultAppSettings()

	return ts, func() {
		searchService = origSearch
		ingestService = origIngest
		analyticsService = origAnalytics
		ensureIndex = origEnsure
		supportsFile = origSupports
		healthChecker = origHealth
		metricsHandler = origMetrics
		appSettings = origSettings
		configStore = origStore
	}
}

// clearServices removes every service and returns a restore func.
func clearServices() func() {
	_, cleanup := setupTestServices()
	SetServices(Services{})
	return cleanup
}
