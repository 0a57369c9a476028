// Package ollamaner provides an entity recogniser that prompts a local
// Ollama model to list the places and dates mentioned in a text.
package ollamaner

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
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 60 * time.Second
)

const prompt = `Extract the named entities from the text below.
Return only a JSON object of the form
{"places": ["..."], "dates": ["..."]}
where places are countries, cities, regions and other locations, and dates
are date or time expressions, each copied exactly as written in the text.

Text:
`

// Config holds configuration for the Ollama recogniser.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to prompt (default: llama3.2).
	Model string

	// Timeout bounds each call (default: 60s).
	Timeout time.Duration
}

// Recognizer asks an Ollama model for entities.
type Recognizer struct {
	client  *http.Client
	baseURL string
	model   string
}

// generateRequest is the Ollama /api/generate request format.
type generateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Format  string   `json:"format"`
	Options *options `json:"options,omitempty"`
}

// options holds generation parameters.
type options struct {
	Temperature float64 `json:"temperature"`
}

// generateResponse is the Ollama /api/generate response format.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// entities is the JSON the model is asked to produce.
type entities struct {
	Places []string `json:"places"`
	Dates  []string `json:"dates"`
}

// NewRecognizer creates a new Ollama recogniser.
func NewRecognizer(cfg Config) *Recognizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Recognizer{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
	}
}

// Recognize returns the place spans followed by the date spans.
// Names the model invents that do not occur in text are dropped.
// Any failure wraps domain.ErrRecognizerUnavailable.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error) {
	raw, err := r.generate(ctx, prompt+text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRecognizerUnavailable, err)
	}

	var found entities
	if err := json.Unmarshal([]byte(raw), &found); err != nil {
		return nil, fmt.Errorf("%w: decode entities: %w", domain.ErrRecognizerUnavailable, err)
	}

	spans := make([]domain.EntitySpan, 0, len(found.Places)+len(found.Dates))
	spans = appendGrounded(spans, text, domain.LabelPlace, found.Places)
	spans = appendGrounded(spans, text, domain.LabelDate, found.Dates)
	return spans, nil
}

func appendGrounded(spans []domain.EntitySpan, text string, label domain.EntityLabel, names []string) []domain.EntitySpan {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || !strings.Contains(text, name) {
			continue
		}
		spans = append(spans, domain.EntitySpan{Label: label, Text: name})
	}
	return spans
}

func (r *Recognizer) generate(ctx context.Context, input string) (string, error) {
	jsonBody, err := json.Marshal(generateRequest{
		Model:   r.model,
		Prompt:  input,
		Stream:  false,
		Format:  "json",
		Options: &options{Temperature: 0},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/generate", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return genResp.Response, nil
}
