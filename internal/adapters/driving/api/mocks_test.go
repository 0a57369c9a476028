package api

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

type mockSearchService struct {
	results     []domain.SearchResult
	suggestions []domain.Suggestion
	lastSpec    domain.QuerySpec
	lastPrefix  string
	lastSize    int
	err         error
}

func (m *mockSearchService) Search(_ context.Context, spec domain.QuerySpec) ([]domain.SearchResult, error) {
	m.lastSpec = spec
	return m.results, m.err
}

func (m *mockSearchService) Autocomplete(_ context.Context, prefix string, size int) ([]domain.Suggestion, error) {
	m.lastPrefix = prefix
	m.lastSize = size
	return m.suggestions, m.err
}

type mockAnalyticsService struct {
	terms        []domain.TermCount
	dates        []domain.DateCount
	dashboard    domain.Dashboard
	lastSize     int
	lastInterval domain.CalendarInterval
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

type mockIngestService struct {
	id       string
	bulk     domain.BulkResult
	stats    domain.IndexStats
	lastDoc  domain.Document
	lastDocs []domain.Document
	lastDir  string
	lastOpts domain.EnrichOptions
	err      error
}

func (m *mockIngestService) IndexDocument(
	_ context.Context, doc domain.Document, opts domain.EnrichOptions,
) (string, error) {
	m.lastDoc = doc
	m.lastOpts = opts
	return m.id, m.err
}

func (m *mockIngestService) BulkIndex(
	_ context.Context, docs []domain.Document, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	m.lastDocs = docs
	m.lastOpts = opts
	return m.bulk, m.err
}

func (m *mockIngestService) IndexFile(
	_ context.Context, _ string, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	m.lastOpts = opts
	return m.bulk, m.err
}

func (m *mockIngestService) IndexDirectory(
	_ context.Context, dir string, opts domain.EnrichOptions,
) (domain.BulkResult, error) {
	m.lastDir = dir
	m.lastOpts = opts
	return m.bulk, m.err
}

func (m *mockIngestService) Reindex(_ context.Context, _ domain.EnrichOptions) (domain.BulkResult, error) {
	return m.bulk, m.err
}

func (m *mockIngestService) Stats(_ context.Context) (domain.IndexStats, error) {
	return m.stats, m.err
}

type mockHealth struct {
	err error
}

func (m *mockHealth) Ping(_ context.Context) error { return m.err }

func (m *mockHealth) Name() string { return "mock" }
