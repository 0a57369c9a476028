package domain

import (
	"fmt"
	"strings"
)

// DefaultResultLimit is used when a QuerySpec has no positive limit.
const DefaultResultLimit = 10

// MaxResultLimit caps the number of results a single query can ask for.
const MaxResultLimit = 1000

// QuerySpec is the input to the relevance query constructor.
// Empty strings mean the signal is absent.
type QuerySpec struct {
	Text         string `json:"query,omitempty"`
	TemporalHint string `json:"temporal_expression,omitempty"`
	GeoHint      string `json:"georeference,omitempty"`
	Limit        int    `json:"size,omitempty"`
}

// Normalized returns a copy with trimmed hints and a limit in
// [1, MaxResultLimit].
func (q QuerySpec) Normalized() QuerySpec {
	q.Text = strings.TrimSpace(q.Text)
	q.TemporalHint = strings.TrimSpace(q.TemporalHint)
	q.GeoHint = strings.TrimSpace(q.GeoHint)
	if q.Limit <= 0 {
		q.Limit = DefaultResultLimit
	}
	if q.Limit > MaxResultLimit {
		q.Limit = MaxResultLimit
	}
	return q
}

// IsEmpty returns true if no signal is present.
func (q QuerySpec) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == "" &&
		strings.TrimSpace(q.TemporalHint) == "" &&
		strings.TrimSpace(q.GeoHint) == ""
}

// SearchResult is a ranked document.
type SearchResult struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
}

// Suggestion is an autocomplete hit.
type Suggestion struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// TermCount is one bucket of a terms aggregation.
type TermCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// DateCount is one bucket of a date histogram.
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Dashboard summarises the index.
type Dashboard struct {
	TotalDocuments        int64       `json:"total_documents"`
	DistinctGeoreferences int64       `json:"distinct_georeferences"`
	TopGeoreferences      []TermCount `json:"top_georeferences"`
	Timeline              []DateCount `json:"time_distribution"`
}

// CalendarInterval is a date histogram bucket width.
type CalendarInterval string

// Supported calendar intervals.
const (
	IntervalDay     CalendarInterval = "1d"
	IntervalWeek    CalendarInterval = "1w"
	IntervalMonth   CalendarInterval = "1M"
	IntervalQuarter CalendarInterval = "1q"
	IntervalYear    CalendarInterval = "1y"
)

// ParseCalendarInterval accepts shorthand ("1M") or a unit name ("month").
func ParseCalendarInterval(s string) (CalendarInterval, error) {
	switch strings.TrimSpace(s) {
	case "1d", "d", "day", "daily":
		return IntervalDay, nil
	case "1w", "w", "week", "weekly":
		return IntervalWeek, nil
	case "1M", "M", "month", "monthly", "":
		return IntervalMonth, nil
	case "1q", "q", "quarter", "quarterly":
		return IntervalQuarter, nil
	case "1y", "y", "year", "yearly":
		return IntervalYear, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
}

// BulkResult summarises a bulk indexing call.
type BulkResult struct {
	Total   int      `json:"total"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// IndexStats describes the index.
type IndexStats struct {
	Backend            string `json:"backend"`
	TotalDocuments     int64  `json:"total_documents"`
	JournaledDocuments int    `json:"journaled_documents"`
}

// DedupeResultsByTitle keeps the first result for each normalised title.
// Results without a title are never considered duplicates.
func DedupeResultsByTitle(results []SearchResult) []SearchResult {
	seen := make(map[string]struct{}, len(results))
	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		key := NormalizeKey(r.Document.Title)
		if key != "" {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, r)
	}
	return out
}
