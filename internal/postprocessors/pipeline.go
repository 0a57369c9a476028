// Package postprocessors provides search result processing implementations.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.ResultPipeline = (*Pipeline)(nil)

// Pipeline chains multiple ResultProcessors and runs them in order.
type Pipeline struct {
	processors []driven.ResultProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.ResultProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the results through all processors in order.
// Each processor receives the output of the previous one.
func (p *Pipeline) Process(
	ctx context.Context, spec domain.QuerySpec, results []domain.SearchResult,
) ([]domain.SearchResult, error) {
	for _, processor := range p.processors {
		var err error
		results, err = processor.Process(ctx, spec, results)
		if err != nil {
			return nil, fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}
	return results, nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.ResultProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Names returns the processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.processors))
	for i, processor := range p.processors {
		names[i] = processor.Name()
	}
	return names
}
