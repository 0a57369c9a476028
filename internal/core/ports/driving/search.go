package driving

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search runs a relevance query that blends text, temporal and
	// geographic signals. Results are deduplicated by title and limited
	// to spec.Limit.
	Search(ctx context.Context, spec domain.QuerySpec) ([]domain.SearchResult, error)

	// Autocomplete suggests titles for a prefix of at least three characters.
	Autocomplete(ctx context.Context, prefix string, size int) ([]domain.Suggestion, error)
}
