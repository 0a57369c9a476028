package driven

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// ResultProcessor transforms a ranked result list after the engine returns it.
// ResultProcessors are chained in a pipeline (e.g., dedupe, truncate).
type ResultProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process receives the current results and returns the new list.
	// Implementations must keep the relative order of the results they keep.
	Process(ctx context.Context, spec domain.QuerySpec, results []domain.SearchResult) ([]domain.SearchResult, error)
}

// ResultPipeline chains multiple ResultProcessors.
type ResultPipeline interface {
	// Process runs the results through all processors in order.
	Process(ctx context.Context, spec domain.QuerySpec, results []domain.SearchResult) ([]domain.SearchResult, error)
}
