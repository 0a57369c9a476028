// Package opensearch provides a search engine adapter backed by an
// OpenSearch (or Elasticsearch-compatible) cluster over its REST API.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.SearchEngine = (*Engine)(nil)

// Default configuration values.
const (
	DefaultURL     = "http://localhost:9200"
	DefaultIndex   = "smart_documents"
	DefaultTimeout = 30 * time.Second
)

// Config holds cluster connection settings.
type Config struct {
	// URL is the cluster base URL (default: http://localhost:9200).
	URL string

	// Index is the index name (default: smart_documents).
	Index string

	// Username and Password enable basic auth when Username is set.
	Username string
	Password string

	// Timeout bounds every request (default: 30s).
	Timeout time.Duration

	// Refresh makes writes visible to search before returning.
	Refresh bool
}

// Engine talks to one index of an OpenSearch cluster.
type Engine struct {
	client   *http.Client
	baseURL  string
	index    string
	username string
	password string
	refresh  bool
}

// New creates an engine. No request is made until first use.
func New(cfg Config) *Engine {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Index == "" {
		cfg.Index = DefaultIndex
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Engine{
		client:   &http.Client{Timeout: cfg.Timeout},
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		index:    cfg.Index,
		username: cfg.Username,
		password: cfg.Password,
		refresh:  cfg.Refresh,
	}
}

// EnsureIndex creates the index with its mapping when missing.
func (e *Engine) EnsureIndex(ctx context.Context, recreate bool) error {
	if recreate {
		status, body, err := e.send(ctx, http.MethodDelete, "/"+e.index, nil, "")
		if err != nil {
			return err
		}
		if status != http.StatusNotFound && !ok(status) {
			return &Error{Status: status, Body: string(body)}
		}
	}

	status, body, err := e.send(ctx, http.MethodHead, "/"+e.index, nil, "")
	if err != nil {
		return err
	}
	switch {
	case ok(status):
		return nil
	case status != http.StatusNotFound:
		return &Error{Status: status, Body: string(body)}
	}

	return e.call(ctx, http.MethodPut, "/"+e.index, IndexMapping(), nil)
}

// Index adds or replaces one document.
func (e *Engine) Index(ctx context.Context, id string, doc domain.Document) error {
	if id == "" {
		return fmt.Errorf("index: empty id: %w", domain.ErrInvalidInput)
	}
	doc.ID = id
	path := "/" + e.index + "/_doc/" + url.PathEscape(id)
	if e.refresh {
		path += "?refresh=true"
	}
	return e.call(ctx, http.MethodPut, path, doc, nil)
}

// bulkAction is the action line of one NDJSON bulk entry.
type bulkAction struct {
	Index struct {
		Index string `json:"_index"`
		ID    string `json:"_id"`
	} `json:"index"`
}

// bulkResponse is the _bulk response format.
type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []struct {
		Index struct {
			ID     string `json:"_id"`
			Status int    `json:"status"`
			Error  *struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"index"`
	} `json:"items"`
}

// BulkIndex sends all documents in one NDJSON request. Documents without
// an ID are counted as failures and not sent.
func (e *Engine) BulkIndex(ctx context.Context, reqs []driven.IndexRequest) (domain.BulkResult, error) {
	result := domain.BulkResult{Total: len(reqs)}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	sent := 0
	for _, req := range reqs {
		if req.ID == "" {
			result.Failed++
			result.Errors = append(result.Errors, "empty document id")
			continue
		}
		var action bulkAction
		action.Index.Index = e.index
		action.Index.ID = req.ID
		doc := req.Document
		doc.ID = req.ID
		if err := enc.Encode(action); err != nil {
			return result, fmt.Errorf("encode bulk action: %w", err)
		}
		if err := enc.Encode(doc); err != nil {
			return result, fmt.Errorf("encode document %s: %w", req.ID, err)
		}
		sent++
	}
	if sent == 0 {
		return result, nil
	}

	path := "/_bulk"
	if e.refresh {
		path += "?refresh=true"
	}
	status, body, err := e.send(ctx, http.MethodPost, path, buf.Bytes(), "application/x-ndjson")
	if err != nil {
		return result, err
	}
	if !ok(status) {
		return result, &Error{Status: status, Body: string(body)}
	}

	var resp bulkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return result, fmt.Errorf("decode bulk response: %w", err)
	}
	for _, item := range resp.Items {
		if item.Index.Error != nil || !ok(item.Index.Status) {
			result.Failed++
			reason := fmt.Sprintf("status %d", item.Index.Status)
			if item.Index.Error != nil {
				reason = item.Index.Error.Type + ": " + item.Index.Error.Reason
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", item.Index.ID, reason))
			continue
		}
		result.Success++
	}
	return result, nil
}

// searchResponse is the _search response format.
type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string          `json:"_id"`
			Score  *float64        `json:"_score"`
			Source domain.Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
	Aggregations map[string]json.RawMessage `json:"aggregations"`
}

// aggregationResponse covers bucket and metric aggregations.
type aggregationResponse struct {
	Buckets []struct {
		Key         json.RawMessage `json:"key"`
		KeyAsString string          `json:"key_as_string"`
		DocCount    int64           `json:"doc_count"`
	} `json:"buckets"`
	Value *float64 `json:"value"`
}

// Search runs a query against the index.
func (e *Engine) Search(ctx context.Context, req driven.SearchRequest) (*driven.SearchResponse, error) {
	body, err := searchBody(req)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var raw searchResponse
	if err := e.call(ctx, http.MethodPost, "/"+e.index+"/_search", body, &raw); err != nil {
		return nil, err
	}

	resp := &driven.SearchResponse{
		Total: raw.Hits.Total.Value,
		Hits:  make([]driven.SearchHit, 0, len(raw.Hits.Hits)),
	}
	for _, h := range raw.Hits.Hits {
		hit := driven.SearchHit{ID: h.ID, Document: h.Source}
		if h.Score != nil {
			hit.Score = *h.Score
		}
		if hit.Document.ID == "" {
			hit.Document.ID = h.ID
		}
		resp.Hits = append(resp.Hits, hit)
	}

	if len(raw.Aggregations) > 0 {
		resp.Aggregations = make(map[string]driven.AggregationResult, len(raw.Aggregations))
		for name, data := range raw.Aggregations {
			agg, err := decodeAggregation(data)
			if err != nil {
				return nil, fmt.Errorf("decode aggregation %q: %w", name, err)
			}
			resp.Aggregations[name] = agg
		}
	}
	return resp, nil
}

func decodeAggregation(data json.RawMessage) (driven.AggregationResult, error) {
	var raw aggregationResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return driven.AggregationResult{}, err
	}

	var out driven.AggregationResult
	if raw.Value != nil {
		out.Value = int64(*raw.Value)
	}
	for _, b := range raw.Buckets {
		key := b.KeyAsString
		if key == "" {
			var s string
			if err := json.Unmarshal(b.Key, &s); err == nil {
				key = s
			} else {
				key = string(b.Key)
			}
		}
		out.Buckets = append(out.Buckets, driven.AggregationBucket{Key: key, DocCount: b.DocCount})
	}
	return out, nil
}

// Count returns the number of documents in the index.
func (e *Engine) Count(ctx context.Context) (int64, error) {
	var resp struct {
		Count int64 `json:"count"`
	}
	if err := e.call(ctx, http.MethodGet, "/"+e.index+"/_count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Ping checks cluster health. A red cluster is unavailable.
func (e *Engine) Ping(ctx context.Context) error {
	var health struct {
		Status string `json:"status"`
	}
	if err := e.call(ctx, http.MethodGet, "/_cluster/health", nil, &health); err != nil {
		return err
	}
	if health.Status == "red" {
		return fmt.Errorf("cluster status red: %w", domain.ErrSearchUnavailable)
	}
	return nil
}

// Name identifies the backend.
func (e *Engine) Name() string {
	return "opensearch"
}

// Close releases idle connections.
func (e *Engine) Close() error {
	e.client.CloseIdleConnections()
	return nil
}

// call sends payload as JSON and decodes a 2xx response into out.
// out may be nil.
func (e *Engine) call(ctx context.Context, method, path string, payload, out any) error {
	var body []byte
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = data
	}

	status, respBody, err := e.send(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}
	if !ok(status) {
		return &Error{Status: status, Body: string(respBody)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send performs one request. Only transport failures are returned as errors.
func (e *Engine) send(ctx context.Context, method, path string, body []byte, contentType string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if e.username != "" {
		req.SetBasicAuth(e.username, e.password)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &Error{Err: fmt.Errorf("read response: %w", err)}
	}
	return resp.StatusCode, data, nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
