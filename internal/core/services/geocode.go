package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// Default geocoding limits. The public Nominatim policy allows one request per second.
const (
	DefaultGeocodeTimeout     = 5 * time.Second
	DefaultGeocodeMinInterval = time.Second
)

// GeocodeResolver converts place names to coordinates through a cache
// and a rate-limited geocoding service.
type GeocodeResolver struct {
	geocoder driven.Geocoder
	cache    driven.GeocodeCache
	limiter  *rate.Limiter
	timeout  time.Duration
	metrics  driven.Metrics
}

// ResolverOption configures a GeocodeResolver.
type ResolverOption func(*GeocodeResolver)

// WithMinInterval sets the minimum delay between two external lookups.
// Zero disables the delay.
func WithMinInterval(d time.Duration) ResolverOption {
	return func(r *GeocodeResolver) {
		r.limiter = newIntervalLimiter(d)
	}
}

// WithLookupTimeout bounds each external lookup.
func WithLookupTimeout(d time.Duration) ResolverOption {
	return func(r *GeocodeResolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithResolverMetrics reports lookup outcomes.
func WithResolverMetrics(m driven.Metrics) ResolverOption {
	return func(r *GeocodeResolver) {
		if m != nil {
			r.metrics = m
		}
	}
}

// NewGeocodeResolver creates a resolver. The cache is required and is
// shared by reference; pass a fresh one per test.
func NewGeocodeResolver(geocoder driven.Geocoder, cache driven.GeocodeCache, opts ...ResolverOption) *GeocodeResolver {
	r := &GeocodeResolver{
		geocoder: geocoder,
		cache:    cache,
		limiter:  newIntervalLimiter(DefaultGeocodeMinInterval),
		timeout:  DefaultGeocodeTimeout,
		metrics:  driven.NopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// newIntervalLimiter allows one call immediately, then one per interval.
func newIntervalLimiter(d time.Duration) *rate.Limiter {
	if d <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(d), 1)
}

// Resolve returns coordinates for the first limit names, in input order,
// skipping names that do not resolve. Names past the limit are not attempted.
func (r *GeocodeResolver) Resolve(ctx context.Context, names []string, limit int) []domain.GeoPoint {
	if limit <= 0 || len(names) == 0 {
		return []domain.GeoPoint{}
	}
	if len(names) > limit {
		names = names[:limit]
	}

	points := make([]domain.GeoPoint, 0, len(names))
	for _, name := range names {
		if res := r.ResolveOne(ctx, name); res.Resolved {
			points = append(points, res.Point)
		}
	}
	logger.Debug("Geocoded %d of %d names", len(points), len(names))
	return points
}

// ResolveOne looks up a single name. A cached result, positive or
// negative, short-circuits the external call. Failures are cached as
// unresolved and never returned as errors.
func (r *GeocodeResolver) ResolveOne(ctx context.Context, name string) domain.GeocodeResult {
	key := cacheKey(name)
	if key == "" {
		return domain.Unresolved()
	}

	if cached, ok := r.cache.Get(ctx, key); ok {
		if cached.Resolved {
			r.metrics.GeocodeLookup(driven.GeocodeCacheHit)
		} else {
			r.metrics.GeocodeLookup(driven.GeocodeCacheNegative)
		}
		return cached
	}

	if r.geocoder == nil {
		return domain.Unresolved()
	}

	// Cancellation while waiting is not a provider failure, so nothing is cached.
	if err := r.limiter.Wait(ctx); err != nil {
		logger.Debug("Geocode of %q abandoned: %v", name, err)
		return domain.Unresolved()
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	point, err := r.geocoder.Geocode(callCtx, strings.TrimSpace(name))
	cancel()

	if err != nil {
		if ctx.Err() != nil {
			logger.Debug("Geocode of %q abandoned: %v", name, ctx.Err())
			return domain.Unresolved()
		}
		logger.Debug("Geocode of %q failed: %v", name, err)
		r.cache.Put(ctx, key, domain.Unresolved())
		r.metrics.GeocodeLookup(driven.GeocodeUnresolved)
		return domain.Unresolved()
	}

	result := domain.Resolved(point)
	r.cache.Put(ctx, key, result)
	r.metrics.GeocodeLookup(driven.GeocodeResolved)
	return result
}

func cacheKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
