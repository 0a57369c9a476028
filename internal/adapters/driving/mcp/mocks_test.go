package mcp

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results     []domain.SearchResult
	suggestions []domain.Suggestion
	lastSpec    domain.QuerySpec
	err         error
}

func (m *mockSearchService) Search(_ context.Context, spec domain.QuerySpec) ([]domain.SearchResult, error) {
	m.lastSpec = spec
	return m.results, m.err
}

func (m *mockSearchService) Autocomplete(_ context.Context, _ string, _ int) ([]domain.Suggestion, error) {
	return m.suggestions, m.err
}

// mockAnalyticsService is a mock implementation of driving.AnalyticsService.
type mockAnalyticsService struct {
	terms        []domain.TermCount
	dates        []domain.DateCount
	dashboard    domain.Dashboard
	lastInterval domain.CalendarInterval
	err          error
}

func (m *mockAnalyticsService) TopGeoreferences(_ context.Context, _ int) ([]domain.TermCount, error) {
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

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	stats domain.IndexStats
	err   error
}

func (m *mockIngestService) IndexDocument(
	_ context.Context, _ domain.Document, _ domain.EnrichOptions,
) (string, error) {
	return "", m.err
}

func (m *mockIngestService) BulkIndex(
	_ context.Context, docs []domain.Document, _ domain.EnrichOptions,
) (domain.BulkResult, error) {
	return domain.BulkResult{Total: len(docs)}, m.err
}

func (m *mockIngestService) IndexFile(
	_ context.Context, _ string, _ domain.EnrichOptions,
) (domain.BulkResult, error) {
	return domain.BulkResult{}, m.err
}

func (m *mockIngestService) IndexDirectory(
	_ context.Context, _ string, _ domain.EnrichOptions,
) (domain.BulkResult, error) {
	return domain.BulkResult{}, m.err
}

func (m *mockIngestService) Reindex(_ context.Context, _ domain.EnrichOptions) (domain.BulkResult, error) {
	return domain.BulkResult{}, m.err
}

func (m *mockIngestService) Stats(_ context.Context) (domain.IndexStats, error) {
	return m.stats, m.err
}
