package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure SearchEngine implements the interface.
var _ driven.SearchEngine = (*SearchEngine)(nil)

// SearchEngine is an in-memory implementation of driven.SearchEngine.
// It evaluates the query tree directly against stored documents with a
// simple additive score: each matching clause contributes its boost.
type SearchEngine struct {
	mu    sync.RWMutex
	docs  map[string]domain.Document
	order []string
}

// NewSearchEngine creates an empty in-memory index.
func NewSearchEngine() *SearchEngine {
	return &SearchEngine{docs: make(map[string]domain.Document)}
}

// EnsureIndex clears the index when recreate is set.
func (e *SearchEngine) EnsureIndex(_ context.Context, recreate bool) error {
	if !recreate {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.docs = make(map[string]domain.Document)
	e.order = nil
	return nil
}

// Index adds or replaces a document.
func (e *SearchEngine) Index(ctx context.Context, id string, doc domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("index: empty id: %w", domain.ErrInvalidInput)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.put(id, doc)
	return nil
}

// BulkIndex adds or replaces many documents.
func (e *SearchEngine) BulkIndex(ctx context.Context, reqs []driven.IndexRequest) (domain.BulkResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.BulkResult{}, err
	}
	result := domain.BulkResult{Total: len(reqs)}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, req := range reqs {
		if req.ID == "" {
			result.Failed++
			result.Errors = append(result.Errors, "empty document id")
			continue
		}
		e.put(req.ID, req.Document)
		result.Success++
	}
	return result, nil
}

// put stores a copy (caller must hold lock).
func (e *SearchEngine) put(id string, doc domain.Document) {
	if _, ok := e.docs[id]; !ok {
		e.order = append(e.order, id)
	}
	stored := doc.Clone()
	stored.ID = id
	e.docs[id] = stored
}

// Search evaluates the request against every stored document.
func (e *SearchEngine) Search(ctx context.Context, req driven.SearchRequest) (*driven.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.RLock()
	var hits []driven.SearchHit
	for _, id := range e.order {
		doc := e.docs[id]
		ok, score := evaluate(req.Query, &doc)
		if !ok {
			continue
		}
		hits = append(hits, driven.SearchHit{ID: id, Score: score, Document: doc.Clone()})
	}
	e.mu.RUnlock()

	resp := &driven.SearchResponse{Total: int64(len(hits))}
	if len(req.Aggregations) > 0 {
		aggs, err := aggregate(hits, req.Aggregations)
		if err != nil {
			return nil, err
		}
		resp.Aggregations = aggs
	}

	sortHits(hits, req.Sort)
	if size := max(req.Size, 0); len(hits) > size {
		hits = hits[:size]
	}
	if len(req.Source) > 0 {
		for i := range hits {
			hits[i].Document = project(hits[i].Document, req.Source)
		}
	}
	resp.Hits = hits
	return resp, nil
}

// Count returns the number of stored documents.
func (e *SearchEngine) Count(_ context.Context) (int64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return int64(len(e.docs)), nil
}

// Ping always succeeds.
func (e *SearchEngine) Ping(_ context.Context) error {
	return nil
}

// Name identifies the backend.
func (e *SearchEngine) Name() string {
	return "memory"
}

// Close releases resources.
func (e *SearchEngine) Close() error {
	return nil
}

// sortHits orders by the sort fields; with none, by score.
func sortHits(hits []driven.SearchHit, fields []driven.SortField) {
	if len(fields) == 0 {
		fields = []driven.SortField{{Field: driven.FieldScore, Order: driven.SortDesc}}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		for _, f := range fields {
			if c := compareHits(hits[i], hits[j], f); c != 0 {
				return c < 0
			}
		}
		return false
	})
}

// compareHits returns -1 if a sorts before b.
func compareHits(a, b driven.SearchHit, f driven.SortField) int {
	if f.Field == driven.FieldScore {
		switch {
		case a.Score == b.Score:
			return 0
		case (a.Score > b.Score) == (f.Order != driven.SortAsc):
			return -1
		default:
			return 1
		}
	}

	av, bv := sortValue(&a.Document, f.Field), sortValue(&b.Document, f.Field)
	switch {
	case av == bv:
		return 0
	case av == "" && f.MissingLast:
		return 1
	case bv == "" && f.MissingLast:
		return -1
	case (av > bv) == (f.Order == driven.SortDesc):
		return -1
	default:
		return 1
	}
}

func sortValue(doc *domain.Document, field string) string {
	switch field {
	case driven.FieldDate:
		return doc.Date
	case driven.FieldTitle, driven.FieldTitleKeyword:
		return doc.Title
	default:
		return ""
	}
}

// project keeps only the requested top-level fields.
func project(doc domain.Document, fields []string) domain.Document {
	out := domain.Document{ID: doc.ID}
	for _, f := range fields {
		switch f {
		case driven.FieldTitle:
			out.Title = doc.Title
		case driven.FieldContent:
			out.Content = doc.Content
		case driven.FieldDate:
			out.Date = doc.Date
		case driven.FieldGeoreferences:
			out.Georeferences = doc.Georeferences
		case driven.FieldTemporalExpressions:
			out.TemporalExpressions = doc.TemporalExpressions
		case driven.FieldGeopoint:
			out.Geopoint = doc.Geopoint
		}
	}
	return out
}
