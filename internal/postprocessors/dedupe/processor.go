// Package dedupe drops search results whose normalised title was already seen.
package dedupe

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// Name is the registry name of the processor.
const Name = "dedupe"

// Processor keeps the first result for each normalised title.
type Processor struct{}

// New creates a dedupe processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process removes later results with an already-seen title.
// Untitled results are always kept.
func (p *Processor) Process(
	_ context.Context, _ domain.QuerySpec, results []domain.SearchResult,
) ([]domain.SearchResult, error) {
	return domain.DedupeResultsByTitle(results), nil
}
