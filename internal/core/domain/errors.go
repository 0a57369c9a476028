package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no normaliser handles a file type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrSearchUnavailable indicates the search engine is not configured or unreachable.
	ErrSearchUnavailable = errors.New("search engine unavailable")

	// ErrRecognizerUnavailable indicates the named-entity recogniser could not be reached.
	// Extraction degrades to empty output.
	ErrRecognizerUnavailable = errors.New("entity recognizer unavailable")

	// ErrGeocodeNotFound indicates the geocoding service has no match for a name.
	ErrGeocodeNotFound = errors.New("geocode: no match")

	// ErrRateLimited indicates the geocoding service rejected a request for rate.
	ErrRateLimited = errors.New("rate limited")

	// ErrJournalUnavailable indicates the raw-document journal is not configured.
	// Re-indexing is disabled without it.
	ErrJournalUnavailable = errors.New("document journal unavailable")

	// ErrInvalidInterval indicates an unsupported date histogram interval.
	ErrInvalidInterval = errors.New("invalid calendar interval")
)
