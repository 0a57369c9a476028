package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func TestGeocodeCache_GetMiss(t *testing.T) {
	cache := NewGeocodeCache()

	_, ok := cache.Get(context.Background(), "paris")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len(context.Background()))
}

func TestGeocodeCache_PutGet(t *testing.T) {
	cache := NewGeocodeCache()
	ctx := context.Background()

	cache.Put(ctx, "paris", domain.Resolved(domain.GeoPoint{Lat: 48.8566, Lon: 2.3522}))
	cache.Put(ctx, "atlantis", domain.Unresolved())

	res, ok := cache.Get(ctx, "paris")
	assert.True(t, ok)
	assert.True(t, res.Resolved)
	assert.InDelta(t, 48.8566, res.Point.Lat, 1e-9)

	res, ok = cache.Get(ctx, "atlantis")
	assert.True(t, ok, "negative results are cached too")
	assert.False(t, res.Resolved)

	assert.Equal(t, 2, cache.Len(ctx))
}
