package driven

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// EntityRecognizer finds typed spans in free text.
type EntityRecognizer interface {
	// Recognize returns spans in text order.
	// Implementations must tolerate truncated input. When the backing
	// service cannot be reached they return an error wrapping
	// domain.ErrRecognizerUnavailable; callers degrade to no spans.
	Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error)
}
