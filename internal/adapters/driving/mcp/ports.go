package mcp

import (
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs smart queries and autocomplete.
	Search driving.SearchService

	// Analytics provides aggregations. Optional; analytics tools fail without it.
	Analytics driving.AnalyticsService

	// Ingest provides index statistics. Optional.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
