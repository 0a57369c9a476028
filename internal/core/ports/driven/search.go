package driven

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// SearchEngine provides indexing, boosted queries and aggregations.
// Backed by OpenSearch in production and an in-memory evaluator for local runs.
type SearchEngine interface {
	// EnsureIndex creates the index with its mapping if it does not exist.
	// When recreate is true an existing index is dropped first.
	EnsureIndex(ctx context.Context, recreate bool) error

	// Index adds or replaces one document.
	Index(ctx context.Context, id string, doc domain.Document) error

	// BulkIndex adds or replaces many documents in one call.
	// Per-document failures are reported in the result, not as an error.
	BulkIndex(ctx context.Context, reqs []IndexRequest) (domain.BulkResult, error)

	// Search executes a query tree with optional aggregations.
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)

	// Count returns the number of indexed documents.
	Count(ctx context.Context) (int64, error)

	// Ping checks that the engine is reachable.
	Ping(ctx context.Context) error

	// Name identifies the backend for stats output.
	Name() string

	// Close releases resources.
	Close() error
}

// IndexRequest is one document of a bulk call.
type IndexRequest struct {
	ID       string
	Document domain.Document
}

// SearchRequest is an engine-neutral search.
type SearchRequest struct {
	// Query is the root of the query tree. Nil matches all documents.
	Query Query

	// Size is the maximum number of hits. Zero returns aggregations only.
	Size int

	// Sort orders hits. Empty means relevance only.
	Sort []SortField

	// Source restricts the returned fields. Empty returns the whole document.
	Source []string

	// Aggregations are computed over every matching document.
	Aggregations map[string]Aggregation
}

// SearchHit represents a search result from the engine.
type SearchHit struct {
	ID       string
	Score    float64
	Document domain.Document
}

// AggregationBucket is one bucket of a terms or date histogram aggregation.
type AggregationBucket struct {
	Key      string
	DocCount int64
}

// AggregationResult holds buckets (terms, histogram) or a single value (cardinality).
type AggregationResult struct {
	Buckets []AggregationBucket
	Value   int64
}

// SearchResponse is the engine's answer.
type SearchResponse struct {
	Total        int64
	Hits         []SearchHit
	Aggregations map[string]AggregationResult
}
