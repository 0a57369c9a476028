package opensearch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// asJSON renders v for structural comparison with assert.JSONEq.
func asJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestTranslateQuery_Leaves(t *testing.T) {
	tests := []struct {
		name  string
		query driven.Query
		want  string
	}{
		{
			name:  "nil is match_all",
			query: nil,
			want:  `{"match_all":{}}`,
		},
		{
			name:  "term with boost",
			query: &driven.TermQuery{Field: driven.FieldGeoreferencesKeyword, Value: "Paris", Boost: 2},
			want:  `{"term":{"georeferences.keyword":{"value":"Paris","boost":2}}}`,
		},
		{
			name: "fuzzy match",
			query: &driven.MatchQuery{Field: driven.FieldTitle, Text: "cocoa", Fuzziness: driven.FuzzinessAuto,
				PrefixLength: 2, Boost: 2},
			want: `{"match":{"title":{"query":"cocoa","fuzziness":"AUTO","prefix_length":2,"boost":2}}}`,
		},
		{
			name:  "unit boost is omitted",
			query: &driven.MatchPhraseQuery{Field: driven.FieldContent, Text: "cocoa exports", Boost: 1},
			want:  `{"match_phrase":{"content":{"query":"cocoa exports"}}}`,
		},
		{
			name:  "phrase prefix",
			query: &driven.MatchPhrasePrefixQuery{Field: driven.FieldTitle, Text: "coc", Boost: 3},
			want:  `{"match_phrase_prefix":{"title":{"query":"coc","boost":3}}}`,
		},
		{
			name:  "half-open range",
			query: &driven.RangeQuery{Field: driven.FieldDate, GTE: "1987-03-01T00:00:00", LT: "1987-04-01T00:00:00"},
			want:  `{"range":{"date":{"gte":"1987-03-01T00:00:00","lt":"1987-04-01T00:00:00"}}}`,
		},
		{
			name: "geo distance",
			query: &driven.GeoDistanceQuery{Field: driven.FieldGeopoint,
				Point: domain.GeoPoint{Lat: 48.85, Lon: 2.35}, DistanceKm: 100, Boost: 1.5},
			want: `{"geo_distance":{"distance":"100km","geopoint":{"lat":48.85,"lon":2.35},"boost":1.5}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translateQuery(tt.query)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, asJSON(t, got))
		})
	}
}

func TestTranslateQuery_Bool(t *testing.T) {
	q := &driven.BoolQuery{
		Must:   []driven.Query{&driven.MatchAllQuery{}},
		Should: []driven.Query{&driven.TermQuery{Field: "georeferences.keyword", Value: "Ghana", Boost: 3}},
		Filter: []driven.Query{&driven.RangeQuery{Field: "date", GTE: "1987-01-01T00:00:00"}},
		MinimumShouldMatch: 1,
	}

	got, err := translateQuery(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bool":{
		"must":[{"match_all":{}}],
		"should":[{"term":{"georeferences.keyword":{"value":"Ghana","boost":3}}}],
		"filter":[{"range":{"date":{"gte":"1987-01-01T00:00:00"}}}],
		"minimum_should_match":1}}`, asJSON(t, got))
}

func TestSearchBody(t *testing.T) {
	req := driven.SearchRequest{
		Query: &driven.MatchAllQuery{},
		Size:  5,
		Sort: []driven.SortField{
			{Field: driven.FieldScore, Order: driven.SortDesc},
			{Field: driven.FieldDate, Order: driven.SortDesc, MissingLast: true},
		},
		Source: []string{"id", "title"},
		Aggregations: map[string]driven.Aggregation{
			"places":   &driven.TermsAggregation{Field: driven.FieldGeoreferencesKeyword},
			"timeline": &driven.DateHistogramAggregation{Field: driven.FieldDate, Interval: domain.IntervalMonth},
			"distinct": &driven.CardinalityAggregation{Field: driven.FieldGeoreferencesKeyword},
		},
	}

	body, err := searchBody(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query":{"match_all":{}},
		"size":5,
		"track_total_hits":true,
		"sort":[{"_score":{"order":"desc"}},{"date":{"order":"desc","missing":"_last"}}],
		"_source":["id","title"],
		"aggs":{
			"places":{"terms":{"field":"georeferences.keyword","size":10}},
			"timeline":{"date_histogram":{"field":"date","calendar_interval":"1M","format":"yyyy-MM-dd","min_doc_count":0}},
			"distinct":{"cardinality":{"field":"georeferences.keyword"}}
		}}`, asJSON(t, body))
}

func TestIndexMapping_Fields(t *testing.T) {
	mapping := IndexMapping()
	props := mapping["mappings"].(map[string]any)["properties"].(map[string]any)

	for _, field := range []string{"title", "content", "authors", "date", "geopoint", "geo_points",
		"temporal_expressions", "georeferences"} {
		assert.Contains(t, props, field)
	}

	geo := props["georeferences"].(map[string]any)["fields"].(map[string]any)
	assert.Contains(t, geo, "keyword")
	assert.Contains(t, geo, "normalized")
	assert.Equal(t, DateFormat, props["date"].(map[string]any)["format"])
	assert.Equal(t, "nested", props["authors"].(map[string]any)["type"])
}
