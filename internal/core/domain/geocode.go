package domain

// GeocodeResult is the cached outcome of looking up one place name.
// An unresolved result is a negative entry: the name is never looked up again.
type GeocodeResult struct {
	Point    GeoPoint `json:"point"`
	Resolved bool     `json:"resolved"`
}

// Resolved returns a successful lookup result.
func Resolved(p GeoPoint) GeocodeResult {
	return GeocodeResult{Point: p, Resolved: true}
}

// Unresolved returns the negative sentinel.
func Unresolved() GeocodeResult {
	return GeocodeResult{}
}

// EnrichOptions controls optional enrichment work.
type EnrichOptions struct {
	// Geocode enables coordinate resolution for georeferences.
	Geocode bool

	// GeocodeLimit bounds how many georeferences are resolved into GeoPoints.
	GeocodeLimit int
}

// DefaultGeocodeLimit is used when EnrichOptions.GeocodeLimit is not positive.
const DefaultGeocodeLimit = 5
