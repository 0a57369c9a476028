package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LocationSource records where a document's georeferences came from.
type LocationSource string

const (
	// LocationFromPlaces means the caller supplied the place names.
	LocationFromPlaces LocationSource = "from-places"

	// LocationAutoExtracted means the names were recognised in the text.
	LocationAutoExtracted LocationSource = "auto-extracted"

	// LocationDefault means no place could be found.
	LocationDefault LocationSource = "default"

	// LocationManual means the caller supplied coordinates but no place names.
	LocationManual LocationSource = "manual"
)

// IsValid returns true if the location source is recognised.
func (s LocationSource) IsValid() bool {
	switch s {
	case LocationFromPlaces, LocationAutoExtracted, LocationDefault, LocationManual:
		return true
	default:
		return false
	}
}

// Author is a document author.
type Author struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// String returns the point as "lat,lon".
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}

// Document is the unit of indexing and retrieval.
// Optional fields use their zero value to mean absent: an empty Date,
// a nil Geopoint and an empty LocationSource are not serialised.
type Document struct {
	// ID is the index identifier. Assigned at ingestion when empty.
	ID string `json:"id,omitempty"`

	Title   string   `json:"title"`
	Content string   `json:"content"`
	Authors []Author `json:"authors,omitempty"`

	// Date is the canonical timestamp (YYYY-MM-DDTHH:MM:SS) when present.
	Date string `json:"date,omitempty"`

	// ExtractedDates holds every calendar-day candidate found in the text.
	ExtractedDates []string `json:"extracted_dates"`

	// TemporalExpressions holds raw date-like fragments, at most ten.
	TemporalExpressions []string `json:"temporal_expressions"`

	// Georeferences holds distinct place names in first-seen order.
	Georeferences StringList `json:"georeferences"`

	GeoPoints      []GeoPoint     `json:"geo_points,omitempty"`
	Geopoint       *GeoPoint      `json:"geopoint,omitempty"`
	LocationSource LocationSource `json:"location_source,omitempty"`

	// SourceFile is the file the document was read from, if any.
	SourceFile string `json:"source_file,omitempty"`
}

// Text returns the title and content joined by a space.
func (d *Document) Text() string {
	switch {
	case d.Title == "":
		return d.Content
	case d.Content == "":
		return d.Title
	default:
		return d.Title + " " + d.Content
	}
}

// HasDate returns true if the document carries a date.
func (d *Document) HasDate() bool {
	return d.Date != ""
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	out.Authors = cloneSlice(d.Authors)
	out.ExtractedDates = cloneSlice(d.ExtractedDates)
	out.TemporalExpressions = cloneSlice(d.TemporalExpressions)
	out.Georeferences = StringList(cloneSlice([]string(d.Georeferences)))
	out.GeoPoints = cloneSlice(d.GeoPoints)
	if d.Geopoint != nil {
		p := *d.Geopoint
		out.Geopoint = &p
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// StringList is a list of strings that also accepts a single JSON string.
type StringList []string

// UnmarshalJSON accepts null, a string, or an array of strings.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*l = StringList{}
			return nil
		}
		*l = StringList{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("georeferences: expected string or list of strings: %w", err)
	}
	*l = list
	return nil
}

// CollapseSpace trims s and collapses internal whitespace runs to one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeKey returns the comparison key for a place name or title:
// whitespace-collapsed and lowercased.
func NormalizeKey(s string) string {
	return strings.ToLower(CollapseSpace(s))
}

// DedupeNames removes entries whose normalised key was already seen,
// keeping the first surface form (whitespace-collapsed) of each.
// Empty names are dropped.
func DedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		surface := CollapseSpace(name)
		if surface == "" {
			continue
		}
		key := strings.ToLower(surface)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, surface)
	}
	return out
}
