package driven

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// DocumentStore keeps the caller-supplied copy of every indexed document,
// before enrichment, so the index can be rebuilt from scratch.
type DocumentStore interface {
	// Save stores or replaces a raw document. The document must have an ID.
	Save(ctx context.Context, doc domain.Document) error

	// Get retrieves a raw document by ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all raw documents ordered by insertion.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a raw document.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}
