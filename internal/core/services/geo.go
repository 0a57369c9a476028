package services

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// GeoExtractor pulls place names out of text.
type GeoExtractor struct {
	recognizer driven.EntityRecognizer
}

// NewGeoExtractor creates a geo extractor.
func NewGeoExtractor(recognizer driven.EntityRecognizer) *GeoExtractor {
	return &GeoExtractor{recognizer: recognizer}
}

// ExtractLocations returns distinct place names in first-seen order.
// Case and whitespace variants collapse to the first surface form.
func (g *GeoExtractor) ExtractLocations(ctx context.Context, text string) []string {
	return domain.DedupeNames(placeMentions(recognize(ctx, g.recognizer, text)))
}

// MostFrequentLocation returns the place mentioned most often.
// Ties go to the name seen first.
func (g *GeoExtractor) MostFrequentLocation(ctx context.Context, text string) (string, bool) {
	return mostFrequent(placeMentions(recognize(ctx, g.recognizer, text)))
}

// placeMentions returns every place span, whitespace-collapsed, in scan order.
func placeMentions(spans []domain.EntitySpan) []string {
	var mentions []string
	for _, span := range spans {
		if span.Label != domain.LabelPlace {
			continue
		}
		if name := domain.CollapseSpace(span.Text); name != "" {
			mentions = append(mentions, name)
		}
	}
	return mentions
}

// mostFrequent computes the mode over normalised keys and returns the
// first surface form of the winning key.
func mostFrequent(mentions []string) (string, bool) {
	counts := make(map[string]int, len(mentions))
	first := make(map[string]string, len(mentions))
	var order []string

	for _, m := range mentions {
		key := domain.NormalizeKey(m)
		if _, ok := first[key]; !ok {
			first[key] = m
			order = append(order, key)
		}
		counts[key]++
	}

	best := ""
	for _, key := range order {
		if best == "" || counts[key] > counts[best] {
			best = key
		}
	}
	if best == "" {
		return "", false
	}
	return first[best], true
}
