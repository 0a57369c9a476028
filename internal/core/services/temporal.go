package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

const (
	maxTemporalExpressions = 10
	maxDateCandidates      = 10
)

const monthNames = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|` +
	`aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

var (
	bareYearPattern  = regexp.MustCompile(`\b[12]\d{3}\b`)
	monthNamePattern = regexp.MustCompile(`(?i)\b` + monthNames + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	dayFirstPattern  = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthNames + `\.?,?\s+(\d{4})\b`)
	slashDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})\b`)
	isoDatePattern   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// TemporalResult is the output of temporal extraction.
type TemporalResult struct {
	// Expressions are raw date-like fragments, deduplicated, at most ten.
	Expressions []string

	// Candidates are full calendar dates, one per day, at most ten.
	Candidates []time.Time
}

// Latest returns the most recent candidate.
func (r TemporalResult) Latest() (time.Time, bool) {
	if len(r.Candidates) == 0 {
		return time.Time{}, false
	}
	latest := r.Candidates[0]
	for _, c := range r.Candidates[1:] {
		if c.After(latest) {
			latest = c
		}
	}
	return latest, true
}

// CanonicalCandidates formats every candidate as a canonical date.
func (r TemporalResult) CanonicalCandidates() []string {
	out := make([]string, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = domain.StartOfDay(c)
	}
	return out
}

// TemporalExtractor pulls date-like strings and calendar dates out of text.
type TemporalExtractor struct {
	recognizer driven.EntityRecognizer
}

// NewTemporalExtractor creates a temporal extractor.
// The recognizer is optional; without it only pattern rules apply.
func NewTemporalExtractor(recognizer driven.EntityRecognizer) *TemporalExtractor {
	return &TemporalExtractor{recognizer: recognizer}
}

// Extract runs the recogniser and the pattern rules over text.
func (e *TemporalExtractor) Extract(ctx context.Context, text string) TemporalResult {
	return extractTemporal(text, recognize(ctx, e.recognizer, text))
}

// extractTemporal scans recogniser date spans first, then bare years,
// month-name dates in either order, slashed dates and ISO dates.
func extractTemporal(text string, spans []domain.EntitySpan) TemporalResult {
	exprs := newBoundedSet(maxTemporalExpressions)
	var dateSpans []string

	for _, span := range spans {
		if span.Label != domain.LabelDate {
			continue
		}
		fragment := domain.CollapseSpace(span.Text)
		if fragment == "" {
			continue
		}
		exprs.add(fragment)
		dateSpans = append(dateSpans, fragment)
	}

	for _, p := range []*regexp.Regexp{
		bareYearPattern, monthNamePattern, dayFirstPattern, slashDatePattern, isoDatePattern,
	} {
		for _, m := range p.FindAllString(text, -1) {
			exprs.add(m)
		}
	}

	days := newDaySet(maxDateCandidates)
	for _, fragment := range dateSpans {
		if t, ok := parseFullDate(fragment); ok {
			days.add(t)
		}
	}
	for _, m := range slashDatePattern.FindAllStringSubmatch(text, -1) {
		if t, ok := slashDate(m); ok {
			days.add(t)
		}
	}
	for _, m := range isoDatePattern.FindAllStringSubmatch(text, -1) {
		if t, ok := isoDate(m); ok {
			days.add(t)
		}
	}
	for _, m := range monthNamePattern.FindAllStringSubmatch(text, -1) {
		if t, ok := monthNameDate(m); ok {
			days.add(t)
		}
	}
	for _, m := range dayFirstPattern.FindAllStringSubmatch(text, -1) {
		if t, ok := dayFirstDate(m); ok {
			days.add(t)
		}
	}

	return TemporalResult{
		Expressions: exprs.items,
		Candidates:  days.items,
	}
}

// parseFullDate accepts a recogniser span only if it contains a full
// calendar date; "1999" or "last spring" are not anchors.
func parseFullDate(fragment string) (time.Time, bool) {
	if m := monthNamePattern.FindStringSubmatch(fragment); m != nil {
		if t, ok := monthNameDate(m); ok {
			return t, true
		}
	}
	if m := dayFirstPattern.FindStringSubmatch(fragment); m != nil {
		if t, ok := dayFirstDate(m); ok {
			return t, true
		}
	}
	if m := slashDatePattern.FindStringSubmatch(fragment); m != nil {
		if t, ok := slashDate(m); ok {
			return t, true
		}
	}
	if m := isoDatePattern.FindStringSubmatch(fragment); m != nil {
		if t, ok := isoDate(m); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// slashDate reads MM/DD/YYYY. Two-digit years at or above 50 are 19xx.
func slashDate(m []string) (time.Time, bool) {
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		if year >= 50 {
			year += 1900
		} else {
			year += 2000
		}
	}
	return calendarDate(year, month, day)
}

func isoDate(m []string) (time.Time, bool) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return calendarDate(year, month, day)
}

func monthNameDate(m []string) (time.Time, bool) {
	month, ok := monthsByPrefix[strings.ToLower(m[1])[:3]]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return calendarDate(year, int(month), day)
}

// dayFirstDate reads "10 March 2020" and "1st of May, 1987".
func dayFirstDate(m []string) (time.Time, bool) {
	return monthNameDate([]string{m[0], m[2], m[1], m[3]})
}

// calendarDate rejects dates that time.Date would silently roll over.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// boundedSet keeps the first max distinct strings in insertion order.
type boundedSet struct {
	max   int
	seen  map[string]struct{}
	items []string
}

func newBoundedSet(max int) *boundedSet {
	return &boundedSet{max: max, seen: make(map[string]struct{}), items: []string{}}
}

func (s *boundedSet) add(v string) {
	if len(s.items) >= s.max {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// daySet keeps the first max distinct calendar days in insertion order.
type daySet struct {
	max   int
	seen  map[string]struct{}
	items []time.Time
}

func newDaySet(max int) *daySet {
	return &daySet{max: max, seen: make(map[string]struct{}), items: []time.Time{}}
}

func (s *daySet) add(t time.Time) {
	if len(s.items) >= s.max {
		return
	}
	key := t.Format("2006-01-02")
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, t)
}
