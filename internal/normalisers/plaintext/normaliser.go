// Package plaintext provides the fallback Normaliser: the whole file is
// the content and the title comes from the file name.
package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/tab-separated-values",
		"text/richtext",
	}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".txt", ".text", ".csv", ".tsv", ".log"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise converts a text file into one document. Blank files yield none.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) ([]domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := strings.TrimSpace(strings.ToValidUTF8(string(raw.Content), "�"))
	if content == "" {
		return nil, nil
	}

	return []domain.Document{{
		Title:   extractTitle(raw.URI),
		Content: content,
	}}, nil
}

// extractTitle extracts a human-readable title from a file path.
func extractTitle(uri string) string {
	// Get filename from path
	filename := filepath.Base(uri)
	if filename == "." || filename == string(filepath.Separator) {
		return ""
	}

	// Remove common extensions for cleaner title
	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}

	// Replace underscores and dashes with spaces
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")

	return domain.CollapseSpace(filename)
}
