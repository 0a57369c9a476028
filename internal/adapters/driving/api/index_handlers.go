package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// BulkRequest is the body of POST /api/index/bulk.
type BulkRequest struct {
	Documents    []domain.Document `json:"documents"`
	Geocode      bool              `json:"geocode,omitempty"`
	GeocodeLimit int               `json:"geocode_limit,omitempty"`
}

// FolderRequest is the body of POST /api/index/from-folder.
type FolderRequest struct {
	FolderPath   string `json:"folder_path"`
	Geocode      bool   `json:"geocode,omitempty"`
	GeocodeLimit int    `json:"geocode_limit,omitempty"`
}

// handleIndexDocument handles POST /api/index/document.
// The body is the document itself; geocoding is enabled with ?geocode=true.
func (s *Server) handleIndexDocument(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := decodeBody(w, r, &doc); err != nil {
		writeError(w, r, err)
		return
	}

	opts, err := enrichOptionsFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := s.ports.Ingest.IndexDocument(r.Context(), doc, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Document indexed successfully",
		"document_id": id,
	})
}

// handleBulkIndex handles POST /api/index/bulk.
func (s *Server) handleBulkIndex(w http.ResponseWriter, r *http.Request) {
	var req BulkRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	opts := domain.EnrichOptions{Geocode: req.Geocode, GeocodeLimit: req.GeocodeLimit}
	res, err := s.ports.Ingest.BulkIndex(r.Context(), req.Documents, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bulkFields(res))
}

// handleIndexFolder handles POST /api/index/from-folder.
func (s *Server) handleIndexFolder(w http.ResponseWriter, r *http.Request) {
	var req FolderRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.FolderPath) == "" {
		writeError(w, r, fmt.Errorf("%w: folder_path is required", domain.ErrInvalidInput))
		return
	}

	opts := domain.EnrichOptions{Geocode: req.Geocode, GeocodeLimit: req.GeocodeLimit}
	res, err := s.ports.Ingest.IndexDirectory(r.Context(), req.FolderPath, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bulkFields(res))
}

// handleStats handles GET /api/index/stats.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.ports.Ingest.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"backend":             stats.Backend,
		"document_count":      stats.TotalDocuments,
		"journaled_documents": stats.JournaledDocuments,
	})
}

func bulkFields(res domain.BulkResult) map[string]any {
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return map[string]any{
		"total":   res.Total,
		"indexed": res.Success,
		"failed":  res.Failed,
		"errors":  errs,
	}
}

// decodeBody reads a bounded JSON body into v.
// Decoding failures wrap domain.ErrInvalidInput.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty request body", domain.ErrInvalidInput)
		}
		return fmt.Errorf("%w: decode body: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func enrichOptionsFromQuery(r *http.Request) (domain.EnrichOptions, error) {
	var opts domain.EnrichOptions
	q := r.URL.Query()

	if v := q.Get("geocode"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%w: geocode must be a boolean", domain.ErrInvalidInput)
		}
		opts.Geocode = b
	}
	limit, err := intParam(r, "geocode_limit", 0)
	if err != nil {
		return opts, err
	}
	opts.GeocodeLimit = limit
	return opts, nil
}

// intParam parses a non-negative integer query parameter.
func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}
