package services

import (
	"context"
	"unicode/utf8"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// MaxRecognizedChars bounds the text sent to the recogniser.
const MaxRecognizedChars = 8000

// recognize runs the recogniser over the first MaxRecognizedChars characters.
// A missing or failing recogniser yields no spans.
func recognize(ctx context.Context, r driven.EntityRecognizer, text string) []domain.EntitySpan {
	if r == nil || text == "" {
		return nil
	}
	spans, err := r.Recognize(ctx, truncateRunes(text, MaxRecognizedChars))
	if err != nil {
		logger.Warn("entity recognition failed, continuing without entities: %v", err)
		return nil
	}
	return spans
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
