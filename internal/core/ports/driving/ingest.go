package driving

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// IngestService enriches documents and writes them to the index.
type IngestService interface {
	// IndexDocument enriches and indexes one document, returning its ID.
	IndexDocument(ctx context.Context, doc domain.Document, opts domain.EnrichOptions) (string, error)

	// BulkIndex enriches documents sequentially and indexes them in one call.
	BulkIndex(ctx context.Context, docs []domain.Document, opts domain.EnrichOptions) (domain.BulkResult, error)

	// IndexFile reads a supported file and indexes every document in it.
	IndexFile(ctx context.Context, path string, opts domain.EnrichOptions) (domain.BulkResult, error)

	// IndexDirectory indexes every supported file directly inside dir.
	IndexDirectory(ctx context.Context, dir string, opts domain.EnrichOptions) (domain.BulkResult, error)

	// Reindex rebuilds the index from the raw-document journal.
	Reindex(ctx context.Context, opts domain.EnrichOptions) (domain.BulkResult, error)

	// Stats describes the index.
	Stats(ctx context.Context) (domain.IndexStats, error)
}
