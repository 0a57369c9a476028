package services

import (
	"regexp"
	"strconv"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// DefaultOverFetch multiplies the requested size so deduplication
// still leaves enough results.
const DefaultOverFetch = 3

// maxOverFetch bounds a configured multiplier.
const maxOverFetch = 20

// Autocomplete tuning.
const (
	MinAutocompletePrefix = 3
	autocompletePrefixLen = 2
)

// GeoDistanceKm is the radius of the optional proximity boost.
const GeoDistanceKm = 100

var (
	literalISODate   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	literalSlashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	literalYear      = regexp.MustCompile(`^\d{4}$`)
)

// QueryWeights are the boosts of each clause.
type QueryWeights struct {
	TitleKeyword float64
	TitlePhrase  float64
	TitleFuzzy   float64
	Content      float64

	DateRange          float64
	YearRange          float64
	YearExpression     float64
	TemporalExpression float64

	GeoKeyword  float64
	GeoFuzzy    float64
	GeoDistance float64

	AutocompleteFuzzy  float64
	AutocompletePrefix float64
}

// DefaultQueryWeights returns the standard ranking: text first, exact
// matches above fuzzy ones, year ranges above year mentions.
func DefaultQueryWeights() QueryWeights {
	return QueryWeights{
		TitleKeyword: 10,
		TitlePhrase:  5,
		TitleFuzzy:   3,
		Content:      1,

		DateRange:          2,
		YearRange:          2,
		YearExpression:     1.2,
		TemporalExpression: 1.2,

		GeoKeyword:  3,
		GeoFuzzy:    1.5,
		GeoDistance: 1,

		AutocompleteFuzzy:  2,
		AutocompletePrefix: 3,
	}
}

// TemporalHintKind classifies a temporal hint.
type TemporalHintKind int

// Temporal hint kinds, in resolution priority order.
const (
	HintNone TemporalHintKind = iota
	HintCalendarDate
	HintYear
	HintExpression
)

// QueryBuilder assembles boosted multi-clause queries.
type QueryBuilder struct {
	weights   QueryWeights
	overFetch int
}

// NewQueryBuilder creates a query builder. A non-positive overFetch uses the default.
func NewQueryBuilder(weights QueryWeights, overFetch int) *QueryBuilder {
	if overFetch <= 0 {
		overFetch = DefaultOverFetch
	}
	if overFetch > maxOverFetch {
		overFetch = maxOverFetch
	}
	return &QueryBuilder{weights: weights, overFetch: overFetch}
}

// Build turns a spec into a search request. The text clause is required
// when text is present; temporal and geographic clauses only boost.
func (b *QueryBuilder) Build(spec domain.QuerySpec) driven.SearchRequest {
	spec = spec.Normalized()

	root := &driven.BoolQuery{}
	if spec.Text != "" {
		root.Must = append(root.Must, b.TextClause(spec.Text))
	} else {
		root.Must = append(root.Must, &driven.MatchAllQuery{})
	}
	root.Should = append(root.Should, b.TemporalClauses(spec.TemporalHint)...)
	root.Should = append(root.Should, b.GeoClauses(spec.GeoHint)...)

	return driven.SearchRequest{
		Query: root,
		Size:  spec.Limit * b.overFetch,
		Sort:  RelevanceSort(),
	}
}

// RelevanceSort orders by score, then by date with undated documents last.
func RelevanceSort() []driven.SortField {
	return []driven.SortField{
		{Field: driven.FieldScore, Order: driven.SortDesc},
		{Field: driven.FieldDate, Order: driven.SortDesc, MissingLast: true},
	}
}

// TextClause matches the title exactly, as a phrase or fuzzily, or the content.
func (b *QueryBuilder) TextClause(text string) driven.Query {
	return &driven.BoolQuery{
		Should: []driven.Query{
			&driven.TermQuery{Field: driven.FieldTitleKeyword, Value: text, Boost: b.weights.TitleKeyword},
			&driven.MatchPhraseQuery{Field: driven.FieldTitle, Text: text, Boost: b.weights.TitlePhrase},
			&driven.MatchQuery{
				Field: driven.FieldTitle, Text: text,
				Fuzziness: driven.FuzzinessAuto, Boost: b.weights.TitleFuzzy,
			},
			&driven.MatchQuery{Field: driven.FieldContent, Text: text, Boost: b.weights.Content},
		},
		MinimumShouldMatch: 1,
	}
}

// ClassifyTemporalHint resolves a hint to exactly one form.
// A calendar date must be valid; "2021-02-30" is treated as an expression.
func ClassifyTemporalHint(hint string) (TemporalHintKind, time.Time) {
	if hint == "" {
		return HintNone, time.Time{}
	}
	if m := literalISODate.FindStringSubmatch(hint); m != nil {
		if t, ok := isoDate(m); ok {
			return HintCalendarDate, t
		}
		return HintExpression, time.Time{}
	}
	if m := literalSlashDate.FindStringSubmatch(hint); m != nil {
		if t, ok := slashDate(m); ok {
			return HintCalendarDate, t
		}
		return HintExpression, time.Time{}
	}
	if literalYear.MatchString(hint) {
		year, _ := strconv.Atoi(hint)
		return HintYear, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return HintExpression, time.Time{}
}

// TemporalClauses returns the boost clauses for a temporal hint.
func (b *QueryBuilder) TemporalClauses(hint string) []driven.Query {
	kind, t := ClassifyTemporalHint(hint)
	switch kind {
	case HintCalendarDate:
		return []driven.Query{&driven.RangeQuery{
			Field: driven.FieldDate,
			GTE:   domain.StartOfDay(t),
			LT:    domain.StartOfDay(t.AddDate(0, 0, 1)),
			Boost: b.weights.DateRange,
		}}
	case HintYear:
		return []driven.Query{
			&driven.RangeQuery{
				Field: driven.FieldDate,
				GTE:   domain.StartOfDay(t),
				LT:    domain.StartOfDay(t.AddDate(1, 0, 0)),
				Boost: b.weights.YearRange,
			},
			&driven.TermQuery{Field: driven.FieldTemporalKeyword, Value: hint, Boost: b.weights.YearExpression},
		}
	case HintExpression:
		return []driven.Query{
			&driven.MatchQuery{Field: driven.FieldTemporalExpressions, Text: hint, Boost: b.weights.TemporalExpression},
		}
	default:
		return nil
	}
}

// GeoClauses returns the boost clauses for a place hint.
func (b *QueryBuilder) GeoClauses(hint string) []driven.Query {
	if hint == "" {
		return nil
	}
	return []driven.Query{
		&driven.TermQuery{Field: driven.FieldGeoreferencesNorm, Value: domain.NormalizeKey(hint), Boost: b.weights.GeoKeyword},
		&driven.MatchQuery{
			Field: driven.FieldGeoreferences, Text: hint,
			Fuzziness: driven.FuzzinessAuto, Boost: b.weights.GeoFuzzy,
		},
	}
}

// GeoDistanceClause boosts documents whose primary point lies near p.
func (b *QueryBuilder) GeoDistanceClause(p domain.GeoPoint) driven.Query {
	return &driven.GeoDistanceQuery{
		Field:      driven.FieldGeopoint,
		Point:      p,
		DistanceKm: GeoDistanceKm,
		Boost:      b.weights.GeoDistance,
	}
}

// Autocomplete builds a title suggestion query.
func (b *QueryBuilder) Autocomplete(prefix string, size int) driven.SearchRequest {
	return driven.SearchRequest{
		Query: &driven.BoolQuery{
			Should: []driven.Query{
				&driven.MatchQuery{
					Field: driven.FieldTitle, Text: prefix,
					Fuzziness: driven.FuzzinessAuto, PrefixLength: autocompletePrefixLen,
					Boost: b.weights.AutocompleteFuzzy,
				},
				&driven.MatchPhrasePrefixQuery{Field: driven.FieldTitle, Text: prefix, Boost: b.weights.AutocompletePrefix},
			},
			MinimumShouldMatch: 1,
		},
		Size:   size,
		Source: []string{driven.FieldTitle},
	}
}
