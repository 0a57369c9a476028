package driving

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// AnalyticsService aggregates over the index.
type AnalyticsService interface {
	// TopGeoreferences returns the most frequent place names.
	TopGeoreferences(ctx context.Context, size int) ([]domain.TermCount, error)

	// TimeDistribution buckets documents by date.
	TimeDistribution(ctx context.Context, interval domain.CalendarInterval) ([]domain.DateCount, error)

	// TotalDocuments returns the number of indexed documents.
	TotalDocuments(ctx context.Context) (int64, error)

	// DistinctGeoreferences returns the number of distinct place names.
	DistinctGeoreferences(ctx context.Context) (int64, error)

	// Dashboard combines the above.
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}
