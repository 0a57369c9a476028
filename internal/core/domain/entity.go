package domain

// EntityLabel classifies a recognised span.
type EntityLabel string

const (
	// LabelPlace covers countries, cities, regions, locations and facilities.
	LabelPlace EntityLabel = "place"

	// LabelDate covers absolute and relative date mentions.
	LabelDate EntityLabel = "date"

	// LabelOther covers everything the pipeline ignores.
	LabelOther EntityLabel = "other"
)

// EntitySpan is a typed text span returned by a recogniser.
type EntitySpan struct {
	Label EntityLabel `json:"label"`
	Text  string      `json:"text"`
}
