// Package json provides a Normaliser for documents already in the
// ingestion schema, one object or an array of objects per file.
package json

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles JSON documents.
type Normaliser struct{}

// New creates a new JSON normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"application/json"}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".json"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 80
}

// Normalise decodes a single document or a list of documents.
// Georeferences may be a string or a list; authors is a list of objects.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) ([]domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	data := bytes.TrimSpace(raw.Content)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var docs []domain.Document
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("decode document list: %w: %w", domain.ErrInvalidInput, err)
		}
		return docs, nil
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w: %w", domain.ErrInvalidInput, err)
	}
	return []domain.Document{doc}, nil
}
