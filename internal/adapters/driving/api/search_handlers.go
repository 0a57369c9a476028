package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/services"
)

// SearchHit is one smart search result: the document fields plus its score.
type SearchHit struct {
	domain.Document
	Score float64 `json:"score"`
}

// AutocompleteHit is one autocomplete suggestion.
type AutocompleteHit struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// handleAutocomplete handles GET /api/search/autocomplete?q=&size=.
func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	prefix := strings.TrimSpace(r.URL.Query().Get("q"))
	size, err := intParam(r, "size", domain.DefaultResultLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if utf8.RuneCountInString(prefix) < services.MinAutocompletePrefix {
		writeJSON(w, http.StatusOK, map[string]any{
			"results": []AutocompleteHit{},
			"message": "Query too short (minimum 3 characters)",
		})
		return
	}

	suggestions, err := s.ports.Search.Autocomplete(r.Context(), prefix, size)
	if err != nil {
		writeError(w, r, err)
		return
	}

	hits := make([]AutocompleteHit, len(suggestions))
	for i, sg := range suggestions {
		hits[i] = AutocompleteHit(sg)
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": hits})
}

// handleSmartSearch handles POST /api/search/smart.
// Body: {"query", "temporal_expression", "georeference", "size"}.
func (s *Server) handleSmartSearch(w http.ResponseWriter, r *http.Request) {
	var spec domain.QuerySpec
	if err := decodeBody(w, r, &spec); err != nil {
		writeError(w, r, err)
		return
	}

	results, err := s.ports.Search.Search(r.Context(), spec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	hits := make([]SearchHit, len(results))
	for i, res := range results {
		hits[i] = SearchHit{Document: res.Document, Score: res.Score}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": hits,
		"total":   len(hits),
	})
}
