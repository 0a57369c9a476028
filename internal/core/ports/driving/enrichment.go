package driving

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// EnrichmentService fills in missing temporal and spatial metadata.
type EnrichmentService interface {
	// Enrich returns an enriched copy of doc. The input is not modified.
	// Enrichment never fails; unavailable collaborators yield empty values.
	Enrich(ctx context.Context, doc domain.Document, opts domain.EnrichOptions) domain.Document
}
