// Package truncate cuts search results down to the requested size.
package truncate

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// Name is the registry name of the processor.
const Name = "truncate"

// Processor limits the number of results.
type Processor struct {
	max int
}

// Option configures the truncate processor.
type Option func(*Processor)

// WithMax caps results regardless of the requested size.
func WithMax(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.max = n
		}
	}
}

// New creates a truncate processor.
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process keeps at most spec.Limit results (and at most max, if set).
func (p *Processor) Process(
	_ context.Context, spec domain.QuerySpec, results []domain.SearchResult,
) ([]domain.SearchResult, error) {
	limit := spec.Normalized().Limit
	if p.max > 0 && p.max < limit {
		limit = p.max
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
