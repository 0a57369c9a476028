package driven

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// Geocoder maps a place name to coordinates.
type Geocoder interface {
	// Geocode returns the best match for name.
	// Returns an error wrapping domain.ErrGeocodeNotFound when there is no match.
	// The caller bounds the call with a context deadline.
	Geocode(ctx context.Context, name string) (domain.GeoPoint, error)
}

// GeocodeCache memoises lookups by normalised place name.
// Entries are never evicted; a negative entry stops further lookups for a name.
type GeocodeCache interface {
	// Get returns the cached result and whether the key was present.
	Get(ctx context.Context, key string) (domain.GeocodeResult, bool)

	// Put stores a result. Writing an existing key overwrites it.
	Put(ctx context.Context, key string, result domain.GeocodeResult)

	// Len returns the number of cached names.
	Len(ctx context.Context) int
}
