package driven

import "github.com/jana0025/IR-PROJECT/internal/core/domain"

// Index fields the core depends on. Any engine must expose these.
const (
	FieldTitle                = "title"
	FieldTitleKeyword         = "title.keyword"
	FieldContent              = "content"
	FieldDate                 = "date"
	FieldTemporalExpressions  = "temporal_expressions"
	FieldTemporalKeyword      = "temporal_expressions.keyword"
	FieldGeoreferences        = "georeferences"
	FieldGeoreferencesKeyword = "georeferences.keyword"
	FieldGeoreferencesNorm    = "georeferences.normalized"
	FieldGeopoint             = "geopoint"

	// FieldScore sorts by relevance.
	FieldScore = "_score"
)

// FuzzinessAuto lets the engine pick an edit distance from the term length.
const FuzzinessAuto = "AUTO"

// Query is a node of the engine-neutral query tree.
type Query interface {
	queryNode()
}

// MatchAllQuery matches every document with a constant score.
type MatchAllQuery struct {
	Boost float64
}

// TermQuery matches an exact keyword value.
type TermQuery struct {
	Field string
	Value string
	Boost float64
}

// MatchQuery is an analysed full-text match; any term may match.
type MatchQuery struct {
	Field        string
	Text         string
	Fuzziness    string
	PrefixLength int
	Boost        float64
}

// MatchPhraseQuery requires the terms in order.
type MatchPhraseQuery struct {
	Field string
	Text  string
	Boost float64
}

// MatchPhrasePrefixQuery is a phrase whose last term is a prefix.
type MatchPhrasePrefixQuery struct {
	Field string
	Text  string
	Boost float64
}

// RangeQuery matches canonical dates in [GTE, LT). Empty bounds are open.
type RangeQuery struct {
	Field string
	GTE   string
	LT    string
	Boost float64
}

// GeoDistanceQuery matches points within DistanceKm of Point.
type GeoDistanceQuery struct {
	Field      string
	Point      domain.GeoPoint
	DistanceKm float64
	Boost      float64
}

// BoolQuery combines clauses. Must and Filter are required; Should clauses
// add score. With no Must or Filter at least MinimumShouldMatch (default 1)
// Should clauses must match.
type BoolQuery struct {
	Must               []Query
	Should             []Query
	Filter             []Query
	MinimumShouldMatch int
	Boost              float64
}

func (*MatchAllQuery) queryNode()          {}
func (*TermQuery) queryNode()              {}
func (*MatchQuery) queryNode()             {}
func (*MatchPhraseQuery) queryNode()       {}
func (*MatchPhrasePrefixQuery) queryNode() {}
func (*RangeQuery) queryNode()             {}
func (*GeoDistanceQuery) queryNode()       {}
func (*BoolQuery) queryNode()              {}

// SortOrder is ascending or descending.
type SortOrder string

// Sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortField orders hits by one field. Missing values sort last when MissingLast is set.
type SortField struct {
	Field       string
	Order       SortOrder
	MissingLast bool
}

// Aggregation is a bucketing or metric request.
type Aggregation interface {
	aggregationNode()
}

// TermsAggregation counts documents per distinct keyword value.
type TermsAggregation struct {
	Field string
	Size  int
}

// DateHistogramAggregation buckets documents by calendar interval.
// Keys are formatted yyyy-MM-dd.
type DateHistogramAggregation struct {
	Field       string
	Interval    domain.CalendarInterval
	MinDocCount int
}

// CardinalityAggregation counts distinct values.
type CardinalityAggregation struct {
	Field string
}

func (*TermsAggregation) aggregationNode()         {}
func (*DateHistogramAggregation) aggregationNode() {}
func (*CardinalityAggregation) aggregationNode()   {}
