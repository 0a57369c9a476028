package driven

import (
	"context"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// Normaliser reads one file format into documents.
// Each normaliser handles specific MIME types and file extensions.
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// SupportedExtensions returns lowercase file extensions including the dot.
	SupportedExtensions() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-100.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise converts raw bytes into zero or more documents.
	// Documents carry caller-level fields only; enrichment happens later.
	Normalise(ctx context.Context, raw *domain.RawDocument) ([]domain.Document, error)
}

// NormaliserRegistry selects a normaliser for a file.
type NormaliserRegistry interface {
	// Register adds a normaliser.
	Register(n Normaliser)

	// Get returns the highest-priority normaliser for the MIME type,
	// falling back to the file extension.
	// Returns domain.ErrUnsupportedType if none match.
	Get(mimeType, ext string) (Normaliser, error)

	// SupportedExtensions returns every registered extension.
	SupportedExtensions() []string
}
