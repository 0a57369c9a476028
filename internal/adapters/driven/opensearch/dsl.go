package opensearch

import (
	"fmt"
	"strconv"

	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// defaultTermsSize matches the engine default for terms aggregations.
const defaultTermsSize = 10

// histogramFormat renders date histogram keys.
const histogramFormat = "yyyy-MM-dd"

// searchBody builds the _search request body.
func searchBody(req driven.SearchRequest) (map[string]any, error) {
	query, err := translateQuery(req.Query)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"query":            query,
		"size":             req.Size,
		"track_total_hits": true,
	}
	if len(req.Sort) > 0 {
		body["sort"] = translateSort(req.Sort)
	}
	if len(req.Source) > 0 {
		body["_source"] = req.Source
	}
	if len(req.Aggregations) > 0 {
		aggs := make(map[string]any, len(req.Aggregations))
		for name, agg := range req.Aggregations {
			a, err := translateAggregation(agg)
			if err != nil {
				return nil, fmt.Errorf("aggregation %q: %w", name, err)
			}
			aggs[name] = a
		}
		body["aggs"] = aggs
	}
	return body, nil
}

// translateQuery converts a query node into the OpenSearch DSL.
// A nil query matches all documents.
func translateQuery(q driven.Query) (map[string]any, error) {
	switch n := q.(type) {
	case nil:
		return map[string]any{"match_all": map[string]any{}}, nil

	case *driven.MatchAllQuery:
		params := map[string]any{}
		withBoost(params, n.Boost)
		return map[string]any{"match_all": params}, nil

	case *driven.TermQuery:
		params := map[string]any{"value": n.Value}
		withBoost(params, n.Boost)
		return map[string]any{"term": map[string]any{n.Field: params}}, nil

	case *driven.MatchQuery:
		params := map[string]any{"query": n.Text}
		if n.Fuzziness != "" {
			params["fuzziness"] = n.Fuzziness
		}
		if n.PrefixLength > 0 {
			params["prefix_length"] = n.PrefixLength
		}
		withBoost(params, n.Boost)
		return map[string]any{"match": map[string]any{n.Field: params}}, nil

	case *driven.MatchPhraseQuery:
		params := map[string]any{"query": n.Text}
		withBoost(params, n.Boost)
		return map[string]any{"match_phrase": map[string]any{n.Field: params}}, nil

	case *driven.MatchPhrasePrefixQuery:
		params := map[string]any{"query": n.Text}
		withBoost(params, n.Boost)
		return map[string]any{"match_phrase_prefix": map[string]any{n.Field: params}}, nil

	case *driven.RangeQuery:
		params := map[string]any{}
		if n.GTE != "" {
			params["gte"] = n.GTE
		}
		if n.LT != "" {
			params["lt"] = n.LT
		}
		withBoost(params, n.Boost)
		return map[string]any{"range": map[string]any{n.Field: params}}, nil

	case *driven.GeoDistanceQuery:
		params := map[string]any{
			"distance": strconv.FormatFloat(n.DistanceKm, 'f', -1, 64) + "km",
			n.Field:    map[string]any{"lat": n.Point.Lat, "lon": n.Point.Lon},
		}
		withBoost(params, n.Boost)
		return map[string]any{"geo_distance": params}, nil

	case *driven.BoolQuery:
		params := map[string]any{}
		for key, clauses := range map[string][]driven.Query{
			"must":   n.Must,
			"should": n.Should,
			"filter": n.Filter,
		} {
			if len(clauses) == 0 {
				continue
			}
			out := make([]any, 0, len(clauses))
			for _, c := range clauses {
				t, err := translateQuery(c)
				if err != nil {
					return nil, err
				}
				out = append(out, t)
			}
			params[key] = out
		}
		if n.MinimumShouldMatch > 0 {
			params["minimum_should_match"] = n.MinimumShouldMatch
		}
		withBoost(params, n.Boost)
		return map[string]any{"bool": params}, nil

	default:
		return nil, fmt.Errorf("unsupported query node %T", q)
	}
}

func withBoost(params map[string]any, boost float64) {
	if boost > 0 && boost != 1 {
		params["boost"] = boost
	}
}

func translateSort(fields []driven.SortField) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		params := map[string]any{}
		if f.Order != "" {
			params["order"] = string(f.Order)
		}
		if f.MissingLast && f.Field != driven.FieldScore {
			params["missing"] = "_last"
		}
		out = append(out, map[string]any{f.Field: params})
	}
	return out
}

func translateAggregation(agg driven.Aggregation) (map[string]any, error) {
	switch a := agg.(type) {
	case *driven.TermsAggregation:
		size := a.Size
		if size <= 0 {
			size = defaultTermsSize
		}
		return map[string]any{"terms": map[string]any{"field": a.Field, "size": size}}, nil

	case *driven.DateHistogramAggregation:
		return map[string]any{"date_histogram": map[string]any{
			"field":             a.Field,
			"calendar_interval": string(a.Interval),
			"format":            histogramFormat,
			"min_doc_count":     a.MinDocCount,
		}}, nil

	case *driven.CardinalityAggregation:
		return map[string]any{"cardinality": map[string]any{"field": a.Field}}, nil

	default:
		return nil, fmt.Errorf("unsupported aggregation %T", agg)
	}
}
