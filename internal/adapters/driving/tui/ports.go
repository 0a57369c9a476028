// Package tui provides an interactive terminal user interface for smartdocs.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI uses.
type Ports struct {
	// Search provides smart search.
	Search driving.SearchService

	// Analytics backs the dashboard view. Optional.
	Analytics driving.AnalyticsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
