package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
)

// Ensure AnalyticsService implements the interface.
var _ driving.AnalyticsService = (*AnalyticsService)(nil)

// Dashboard defaults.
const (
	DefaultTopGeoreferences = 10
	dashboardTopSize        = 10
)

const (
	aggTopGeoreferences = "top_georeferences"
	aggTimeline         = "time_distribution"
	aggDistinctPlaces   = "distinct_georeferences"
)

// AnalyticsService aggregates over the index.
type AnalyticsService struct {
	engine  driven.SearchEngine
	metrics driven.Metrics
}

// NewAnalyticsService creates an analytics service.
func NewAnalyticsService(engine driven.SearchEngine) *AnalyticsService {
	return &AnalyticsService{engine: engine, metrics: driven.NopMetrics{}}
}

// SetMetrics sets the metrics sink.
func (s *AnalyticsService) SetMetrics(m driven.Metrics) {
	if m != nil {
		s.metrics = m
	}
}

// TopGeoreferences returns the most frequent place names.
func (s *AnalyticsService) TopGeoreferences(ctx context.Context, size int) ([]domain.TermCount, error) {
	if size <= 0 {
		size = DefaultTopGeoreferences
	}
	resp, err := s.aggregate(ctx, "top_georeferences", map[string]driven.Aggregation{
		aggTopGeoreferences: &driven.TermsAggregation{Field: driven.FieldGeoreferencesKeyword, Size: size},
	})
	if err != nil {
		return nil, err
	}
	return termCounts(resp.Aggregations[aggTopGeoreferences]), nil
}

// TimeDistribution buckets documents by date, including empty buckets.
func (s *AnalyticsService) TimeDistribution(
	ctx context.Context, interval domain.CalendarInterval,
) ([]domain.DateCount, error) {
	interval, err := domain.ParseCalendarInterval(string(interval))
	if err != nil {
		return nil, err
	}
	resp, err := s.aggregate(ctx, "time_distribution", map[string]driven.Aggregation{
		aggTimeline: &driven.DateHistogramAggregation{Field: driven.FieldDate, Interval: interval},
	})
	if err != nil {
		return nil, err
	}
	return dateCounts(resp.Aggregations[aggTimeline]), nil
}

// TotalDocuments returns the number of indexed documents.
func (s *AnalyticsService) TotalDocuments(ctx context.Context) (int64, error) {
	if s.engine == nil {
		return 0, domain.ErrSearchUnavailable
	}
	return s.engine.Count(ctx)
}

// DistinctGeoreferences returns the number of distinct place names.
func (s *AnalyticsService) DistinctGeoreferences(ctx context.Context) (int64, error) {
	resp, err := s.aggregate(ctx, "distinct_georeferences", map[string]driven.Aggregation{
		aggDistinctPlaces: &driven.CardinalityAggregation{Field: driven.FieldGeoreferencesKeyword},
	})
	if err != nil {
		return 0, err
	}
	return resp.Aggregations[aggDistinctPlaces].Value, nil
}

// Dashboard runs all aggregations in one request plus a count.
func (s *AnalyticsService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	resp, err := s.aggregate(ctx, "dashboard", map[string]driven.Aggregation{
		aggTopGeoreferences: &driven.TermsAggregation{Field: driven.FieldGeoreferencesKeyword, Size: dashboardTopSize},
		aggTimeline:         &driven.DateHistogramAggregation{Field: driven.FieldDate, Interval: domain.IntervalMonth},
		aggDistinctPlaces:   &driven.CardinalityAggregation{Field: driven.FieldGeoreferencesKeyword},
	})
	if err != nil {
		return domain.Dashboard{}, err
	}

	total, err := s.engine.Count(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count documents: %w", err)
	}

	return domain.Dashboard{
		TotalDocuments:        total,
		DistinctGeoreferences: resp.Aggregations[aggDistinctPlaces].Value,
		TopGeoreferences:      termCounts(resp.Aggregations[aggTopGeoreferences]),
		Timeline:              dateCounts(resp.Aggregations[aggTimeline]),
	}, nil
}

func (s *AnalyticsService) aggregate(
	ctx context.Context, op string, aggs map[string]driven.Aggregation,
) (*driven.SearchResponse, error) {
	if s.engine == nil {
		return nil, domain.ErrSearchUnavailable
	}
	start := time.Now()
	resp, err := s.engine.Search(ctx, driven.SearchRequest{Size: 0, Aggregations: aggs})
	s.metrics.SearchCompleted(op, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func termCounts(res driven.AggregationResult) []domain.TermCount {
	out := make([]domain.TermCount, len(res.Buckets))
	for i, b := range res.Buckets {
		out[i] = domain.TermCount{Key: b.Key, Count: b.DocCount}
	}
	return out
}

func dateCounts(res driven.AggregationResult) []domain.DateCount {
	out := make([]domain.DateCount, len(res.Buckets))
	for i, b := range res.Buckets {
		out[i] = domain.DateCount{Date: b.Key, Count: b.DocCount}
	}
	return out
}
