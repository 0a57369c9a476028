package domain

import "time"

// CanonicalDateLayout is the layout of every stored document date.
const CanonicalDateLayout = "2006-01-02T15:04:05"

// FormatCanonical formats t in canonical form using its own wall clock.
// Timezone and fractional seconds are truncated, never converted.
func FormatCanonical(t time.Time) string {
	return t.Format(CanonicalDateLayout)
}

// StartOfDay returns midnight of t's calendar day in canonical form.
func StartOfDay(t time.Time) string {
	y, m, d := t.Date()
	return FormatCanonical(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParsedDate is the outcome of normalising a date string.
type ParsedDate struct {
	// Value is the canonical form. Empty when OK is false.
	Value string

	// OK reports whether the input could be normalised.
	OK bool
}

// Parsed returns a successful ParsedDate.
func Parsed(value string) ParsedDate {
	return ParsedDate{Value: value, OK: true}
}

// Unparsed returns a failed ParsedDate.
func Unparsed() ParsedDate {
	return ParsedDate{}
}
