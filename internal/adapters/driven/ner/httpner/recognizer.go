// Package httpner provides an entity recogniser that calls an external
// NER service over HTTP.
package httpner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Recognizer implements the interface.
var _ driven.EntityRecognizer = (*Recognizer)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the NER client.
type Config struct {
	// BaseURL is the service root; requests go to BaseURL/ner.
	BaseURL string

	// Timeout bounds each call (default: 10s).
	Timeout time.Duration
}

// Recognizer posts text to the NER service.
type Recognizer struct {
	client  *http.Client
	baseURL string
}

// nerRequest is the POST /ner request format.
type nerRequest struct {
	Text string `json:"text"`
}

// nerResponse is the POST /ner response format.
type nerResponse struct {
	Entities []struct {
		Label string `json:"label"`
		Text  string `json:"text"`
	} `json:"entities"`
}

// NewRecognizer creates a new NER client.
func NewRecognizer(cfg Config) *Recognizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Recognizer{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Recognize returns the spans the service found, in text order.
// Any failure wraps domain.ErrRecognizerUnavailable.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error) {
	jsonBody, err := json.Marshal(nerRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/ner", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRecognizerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: ner error (status %d): %s",
			domain.ErrRecognizerUnavailable, resp.StatusCode, string(body))
	}

	var result nerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrRecognizerUnavailable, err)
	}

	spans := make([]domain.EntitySpan, 0, len(result.Entities))
	for _, e := range result.Entities {
		spans = append(spans, domain.EntitySpan{Label: MapLabel(e.Label), Text: e.Text})
	}
	return spans, nil
}

// MapLabel maps a spaCy-style label onto the pipeline's labels.
func MapLabel(label string) domain.EntityLabel {
	switch strings.ToUpper(label) {
	case "GPE", "LOC", "FAC":
		return domain.LabelPlace
	case "DATE":
		return domain.LabelDate
	default:
		return domain.LabelOther
	}
}
