package memory

import (
	"fmt"
	"sort"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

const (
	defaultTermsSize = 10
	bucketKeyLayout  = "2006-01-02"
)

// aggregate computes each named aggregation over the matched hits.
func aggregate(hits []driven.SearchHit, aggs map[string]driven.Aggregation) (map[string]driven.AggregationResult, error) {
	out := make(map[string]driven.AggregationResult, len(aggs))
	for name, agg := range aggs {
		switch a := agg.(type) {
		case *driven.TermsAggregation:
			out[name] = termsAggregation(hits, a)
		case *driven.DateHistogramAggregation:
			res, err := dateHistogram(hits, a)
			if err != nil {
				return nil, fmt.Errorf("aggregation %s: %w", name, err)
			}
			out[name] = res
		case *driven.CardinalityAggregation:
			out[name] = cardinality(hits, a.Field)
		default:
			return nil, fmt.Errorf("aggregation %s: unsupported type %T", name, agg)
		}
	}
	return out, nil
}

// termsAggregation counts documents per distinct value, most frequent first.
func termsAggregation(hits []driven.SearchHit, a *driven.TermsAggregation) driven.AggregationResult {
	counts := make(map[string]int64)
	for i := range hits {
		seen := make(map[string]bool)
		for _, v := range keywordValues(&hits[i].Document, a.Field) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			counts[v]++
		}
	}

	buckets := make([]driven.AggregationBucket, 0, len(counts))
	for k, c := range counts {
		buckets = append(buckets, driven.AggregationBucket{Key: k, DocCount: c})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].DocCount != buckets[j].DocCount {
			return buckets[i].DocCount > buckets[j].DocCount
		}
		return buckets[i].Key < buckets[j].Key
	})

	size := a.Size
	if size <= 0 {
		size = defaultTermsSize
	}
	if len(buckets) > size {
		buckets = buckets[:size]
	}
	return driven.AggregationResult{Buckets: buckets}
}

// dateHistogram buckets dated documents by calendar interval. With a
// zero minimum doc count, empty buckets between the first and last are
// filled in.
func dateHistogram(hits []driven.SearchHit, a *driven.DateHistogramAggregation) (driven.AggregationResult, error) {
	interval, err := domain.ParseCalendarInterval(string(a.Interval))
	if err != nil {
		return driven.AggregationResult{}, err
	}

	counts := make(map[time.Time]int64)
	var first, last time.Time
	for i := range hits {
		raw := rangeValue(&hits[i].Document, a.Field)
		if raw == "" {
			continue
		}
		t, err := time.Parse(domain.CanonicalDateLayout, raw)
		if err != nil {
			continue
		}
		key := bucketStart(t, interval)
		counts[key]++
		if first.IsZero() || key.Before(first) {
			first = key
		}
		if key.After(last) {
			last = key
		}
	}
	if len(counts) == 0 {
		return driven.AggregationResult{}, nil
	}

	var buckets []driven.AggregationBucket
	for key := first; !key.After(last); key = nextBucket(key, interval) {
		c := counts[key]
		if c == 0 && a.MinDocCount > 0 {
			continue
		}
		if c < int64(a.MinDocCount) {
			continue
		}
		buckets = append(buckets, driven.AggregationBucket{Key: key.Format(bucketKeyLayout), DocCount: c})
	}
	return driven.AggregationResult{Buckets: buckets}, nil
}

// bucketStart truncates t to the start of its interval. Weeks start on Monday.
func bucketStart(t time.Time, interval domain.CalendarInterval) time.Time {
	y, m, d := t.Date()
	switch interval {
	case domain.IntervalDay:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case domain.IntervalWeek:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
	case domain.IntervalQuarter:
		q := (int(m) - 1) / 3
		return time.Date(y, time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC)
	case domain.IntervalYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	}
}

func nextBucket(t time.Time, interval domain.CalendarInterval) time.Time {
	switch interval {
	case domain.IntervalDay:
		return t.AddDate(0, 0, 1)
	case domain.IntervalWeek:
		return t.AddDate(0, 0, 7)
	case domain.IntervalQuarter:
		return t.AddDate(0, 3, 0)
	case domain.IntervalYear:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

// cardinality counts distinct values of field across hits.
func cardinality(hits []driven.SearchHit, field string) driven.AggregationResult {
	distinct := make(map[string]struct{})
	for i := range hits {
		for _, v := range keywordValues(&hits[i].Document, field) {
			if v != "" {
				distinct[v] = struct{}{}
			}
		}
	}
	return driven.AggregationResult{Value: int64(len(distinct))}
}
