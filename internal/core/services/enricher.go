package services

import (
	"context"
	"strings"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// Ensure Enricher implements the interface.
var _ driving.EnrichmentService = (*Enricher)(nil)

// Enricher fills in a document's missing date and location fields.
// Explicit fields win over extracted values, which win over defaults.
type Enricher struct {
	recognizer driven.EntityRecognizer
	resolver   *GeocodeResolver
	metrics    driven.Metrics
}

// NewEnricher creates an enricher. The resolver is optional (can be nil);
// without it geocoding requests are ignored.
func NewEnricher(recognizer driven.EntityRecognizer, resolver *GeocodeResolver) *Enricher {
	return &Enricher{
		recognizer: recognizer,
		resolver:   resolver,
		metrics:    driven.NopMetrics{},
	}
}

// SetMetrics sets the metrics sink.
func (e *Enricher) SetMetrics(m driven.Metrics) {
	if m != nil {
		e.metrics = m
	}
}

// Enrich returns an enriched copy of doc.
func (e *Enricher) Enrich(ctx context.Context, doc domain.Document, opts domain.EnrichOptions) domain.Document {
	logger.Section("Enrichment")

	out := doc.Clone()
	spans := &lazySpans{ctx: ctx, recognizer: e.recognizer, text: out.Text()}

	out = e.enrichDate(out, spans)
	out = e.enrichLocation(ctx, out, spans, opts)

	logger.Debug("Enriched %q: date=%q places=%d source=%s recognizer_calls=%d",
		out.Title, out.Date, len(out.Georeferences), out.LocationSource, spans.calls)
	e.metrics.DocumentEnriched(string(out.LocationSource), out.HasDate())
	return out
}

// enrichDate keeps a supplied date in canonical form or infers the latest
// calendar date mentioned in the text. A supplied date that cannot be
// normalised is dropped and inference runs instead.
func (e *Enricher) enrichDate(doc domain.Document, spans *lazySpans) domain.Document {
	if doc.Date != "" {
		parsed := NormalizeDate(doc.Date)
		if parsed.OK {
			doc.Date = parsed.Value
			doc.ExtractedDates = suppliedDates(doc.ExtractedDates)
			doc.TemporalExpressions = suppliedExpressions(doc.TemporalExpressions)
			return doc
		}
		logger.Debug("Dropping unparseable date %q", doc.Date)
		doc.Date = ""
	}

	result := extractTemporal(spans.text, spans.get())
	if latest, ok := result.Latest(); ok {
		doc.Date = domain.StartOfDay(latest)
		doc.ExtractedDates = result.CanonicalCandidates()
	} else {
		doc.ExtractedDates = []string{}
	}
	if supplied := suppliedExpressions(doc.TemporalExpressions); len(supplied) > 0 {
		doc.TemporalExpressions = supplied
	} else {
		doc.TemporalExpressions = orEmpty(result.Expressions)
	}
	return doc
}

// enrichLocation honours supplied places, otherwise extracts them, then
// optionally geocodes. The primary geopoint is the most frequent place in
// the text, independent of list order.
func (e *Enricher) enrichLocation(
	ctx context.Context, doc domain.Document, spans *lazySpans, opts domain.EnrichOptions,
) domain.Document {
	if places := domain.DedupeNames(doc.Georeferences); len(places) > 0 {
		doc.Georeferences = places
		doc.LocationSource = domain.LocationFromPlaces
	} else if found := domain.DedupeNames(placeMentions(spans.get())); len(found) > 0 {
		doc.Georeferences = found
		doc.LocationSource = domain.LocationAutoExtracted
	} else {
		doc.Georeferences = domain.StringList{}
		if doc.Geopoint != nil {
			doc.LocationSource = domain.LocationManual
		} else {
			doc.LocationSource = domain.LocationDefault
		}
	}

	if !opts.Geocode || e.resolver == nil || len(doc.Georeferences) == 0 {
		return doc
	}

	limit := opts.GeocodeLimit
	if limit <= 0 {
		limit = domain.DefaultGeocodeLimit
	}
	doc.GeoPoints = e.resolver.Resolve(ctx, doc.Georeferences, limit)

	if doc.Geopoint == nil {
		if primary, ok := mostFrequent(placeMentions(spans.get())); ok {
			if res := e.resolver.ResolveOne(ctx, primary); res.Resolved {
				point := res.Point
				doc.Geopoint = &point
			}
		}
	}
	return doc
}

// lazySpans calls the recogniser at most once per document, and only
// when a step needs text extraction.
type lazySpans struct {
	ctx        context.Context
	recognizer driven.EntityRecognizer
	text       string
	spans      []domain.EntitySpan
	calls      int
}

func (l *lazySpans) get() []domain.EntitySpan {
	if l.calls == 0 {
		l.spans = recognize(l.ctx, l.recognizer, l.text)
		l.calls++
	}
	return l.spans
}

// suppliedExpressions collapses and deduplicates caller fragments, keeping
// at most ten.
func suppliedExpressions(in []string) []string {
	set := newBoundedSet(maxTemporalExpressions)
	for _, e := range in {
		if e = domain.CollapseSpace(e); e != "" {
			set.add(e)
		}
	}
	return set.items
}

// suppliedDates keeps caller dates already in canonical form, at most ten.
// Bare years and other partial values are dropped.
func suppliedDates(in []string) []string {
	set := newBoundedSet(maxDateCandidates)
	for _, d := range in {
		d = strings.TrimSpace(d)
		if _, err := time.Parse(domain.CanonicalDateLayout, d); err == nil {
			set.add(d)
		}
	}
	return set.items
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
