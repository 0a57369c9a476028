package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs relevance queries against the search engine.
type SearchService struct {
	engine   driven.SearchEngine
	builder  *QueryBuilder
	pipeline driven.ResultPipeline
	resolver *GeocodeResolver
	metrics  driven.Metrics
}

// NewSearchService creates a new search service.
// The pipeline is optional (can be nil); without it results are
// deduplicated by title and truncated.
func NewSearchService(engine driven.SearchEngine, builder *QueryBuilder, pipeline driven.ResultPipeline) *SearchService {
	if builder == nil {
		builder = NewQueryBuilder(DefaultQueryWeights(), DefaultOverFetch)
	}
	return &SearchService{
		engine:   engine,
		builder:  builder,
		pipeline: pipeline,
		metrics:  driven.NopMetrics{},
	}
}

// SetGeocodeResolver enables the proximity boost for place hints.
func (s *SearchService) SetGeocodeResolver(r *GeocodeResolver) {
	s.resolver = r
}

// SetMetrics sets the metrics sink.
func (s *SearchService) SetMetrics(m driven.Metrics) {
	if m != nil {
		s.metrics = m
	}
}

// Search builds one boosted query from the spec, runs it and post-processes
// the hits. Engine errors are returned as they are.
func (s *SearchService) Search(ctx context.Context, spec domain.QuerySpec) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")

	if s.engine == nil {
		return nil, domain.ErrSearchUnavailable
	}

	spec = spec.Normalized()
	logger.Debug("Text: %q, temporal hint: %q, geo hint: %q, limit: %d",
		spec.Text, spec.TemporalHint, spec.GeoHint, spec.Limit)

	req := s.builder.Build(spec)
	if spec.GeoHint != "" && s.resolver != nil {
		if res := s.resolver.ResolveOne(ctx, spec.GeoHint); res.Resolved {
			root := req.Query.(*driven.BoolQuery)
			root.Should = append(root.Should, s.builder.GeoDistanceClause(res.Point))
			logger.Debug("Proximity boost around %s", res.Point)
		}
	}
	logger.Debug("Internal size: %d", req.Size)

	start := time.Now()
	resp, err := s.engine.Search(ctx, req)
	s.metrics.SearchCompleted("search", time.Since(start), err)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, err
	}
	logger.Debug("Raw hits: %d of %d", len(resp.Hits), resp.Total)

	results := make([]domain.SearchResult, len(resp.Hits))
	for i, hit := range resp.Hits {
		doc := hit.Document
		if doc.ID == "" {
			doc.ID = hit.ID
		}
		results[i] = domain.SearchResult{Document: doc, Score: hit.Score}
	}
	sortByRelevance(results)

	if s.pipeline != nil {
		results, err = s.pipeline.Process(ctx, spec, results)
		if err != nil {
			return nil, fmt.Errorf("post-process results: %w", err)
		}
	} else {
		results = domain.DedupeResultsByTitle(results)
	}

	if len(results) > spec.Limit {
		results = results[:spec.Limit]
	}
	logger.Debug("Final results: %d", len(results))
	return results, nil
}

// Autocomplete suggests titles for a prefix.
func (s *SearchService) Autocomplete(ctx context.Context, prefix string, size int) ([]domain.Suggestion, error) {
	prefix = strings.TrimSpace(prefix)
	if utf8.RuneCountInString(prefix) < MinAutocompletePrefix {
		return []domain.Suggestion{}, nil
	}
	if s.engine == nil {
		return nil, domain.ErrSearchUnavailable
	}
	if size <= 0 {
		size = domain.DefaultResultLimit
	}
	if size > domain.MaxResultLimit {
		size = domain.MaxResultLimit
	}

	start := time.Now()
	resp, err := s.engine.Search(ctx, s.builder.Autocomplete(prefix, size))
	s.metrics.SearchCompleted("autocomplete", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	suggestions := make([]domain.Suggestion, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		suggestions = append(suggestions, domain.Suggestion{
			ID:    hit.ID,
			Title: hit.Document.Title,
			Score: hit.Score,
		})
	}
	return suggestions, nil
}

// sortByRelevance orders by score, then by canonical date with undated
// results last. Canonical dates compare correctly as strings. Equal
// results keep the engine's order.
func sortByRelevance(results []domain.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		switch {
		case a.Document.Date == b.Document.Date:
			return false
		case a.Document.Date == "":
			return false
		case b.Document.Date == "":
			return true
		default:
			return a.Document.Date > b.Document.Date
		}
	})
}
