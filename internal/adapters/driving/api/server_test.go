package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

type fixture struct {
	search    *mockSearchService
	analytics *mockAnalyticsService
	ingest    *mockIngestService
	health    *mockHealth
	handler   http.Handler
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		search:    &mockSearchService{},
		analytics: &mockAnalyticsService{},
		ingest:    &mockIngestService{},
		health:    &mockHealth{},
	}
	srv, err := NewServer(Ports{
		Search:    f.search,
		Analytics: f.analytics,
		Ingest:    f.ingest,
		Health:    f.health,
	}, opts...)
	require.NoError(t, err)
	f.handler = srv.Handler()
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestNewServer_RequiresPorts(t *testing.T) {
	_, err := NewServer(Ports{})
	assert.Error(t, err)

	_, err = NewServer(Ports{Search: &mockSearchService{}})
	assert.Error(t, err)

	_, err = NewServer(Ports{Search: &mockSearchService{}, Analytics: &mockAnalyticsService{}})
	assert.Error(t, err)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrInvalidInterval, http.StatusBadRequest},
		{domain.ErrUnsupportedType, http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrJournalUnavailable, http.StatusConflict},
		{domain.ErrSearchUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestIndexDocument(t *testing.T) {
	t.Run("indexes and returns id", func(t *testing.T) {
		f := newFixture(t)
		f.ingest.id = "doc-1"

		rec, body := f.do(t, http.MethodPost, "/api/index/document?geocode=true&geocode_limit=3",
			`{"title":"Cocoa","content":"Bahia showers","georeferences":"Brazil"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "doc-1", body["document_id"])
		assert.Equal(t, "Cocoa", f.ingest.lastDoc.Title)
		assert.Equal(t, domain.StringList{"Brazil"}, f.ingest.lastDoc.Georeferences)
		assert.Equal(t, domain.EnrichOptions{Geocode: true, GeocodeLimit: 3}, f.ingest.lastOpts)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)
		rec, body := f.do(t, http.MethodPost, "/api/index/document", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "invalid input")
	})

	t.Run("empty body", func(t *testing.T) {
		f := newFixture(t)
		rec, _ := f.do(t, http.MethodPost, "/api/index/document", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad geocode flag", func(t *testing.T) {
		f := newFixture(t)
		rec, _ := f.do(t, http.MethodPost, "/api/index/document?geocode=maybe", `{"title":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("engine unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.ingest.err = domain.ErrSearchUnavailable
		rec, body := f.do(t, http.MethodPost, "/api/index/document", `{"title":"x"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("wrong method", func(t *testing.T) {
		f := newFixture(t)
		rec, _ := f.do(t, http.MethodGet, "/api/index/document", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestBulkIndex(t *testing.T) {
	f := newFixture(t)
	f.ingest.bulk = domain.BulkResult{Total: 2, Success: 1, Failed: 1, Errors: []string{"b: mapper_parsing_exception"}}

	rec, body := f.do(t, http.MethodPost, "/api/index/bulk",
		`{"documents":[{"title":"a"},{"title":"b"}],"geocode":true}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 2, body["total"])
	assert.EqualValues(t, 1, body["indexed"])
	assert.EqualValues(t, 1, body["failed"])
	assert.Len(t, body["errors"], 1)
	assert.Len(t, f.ingest.lastDocs, 2)
	assert.True(t, f.ingest.lastOpts.Geocode)
}

func TestIndexFolder(t *testing.T) {
	t.Run("requires folder path", func(t *testing.T) {
		f := newFixture(t)
		rec, body := f.do(t, http.MethodPost, "/api/index/from-folder", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body["error"], "folder_path")
	})

	t.Run("indexes folder", func(t *testing.T) {
		f := newFixture(t)
		f.ingest.bulk = domain.BulkResult{Total: 3, Success: 3}

		rec, body := f.do(t, http.MethodPost, "/api/index/from-folder", `{"folder_path":"/data/reuters"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/data/reuters", f.ingest.lastDir)
		assert.EqualValues(t, 3, body["indexed"])
		assert.Equal(t, []any{}, body["errors"])
	})
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	f.ingest.stats = domain.IndexStats{Backend: "opensearch", TotalDocuments: 21578, JournaledDocuments: 21578}

	rec, body := f.do(t, http.MethodGet, "/api/index/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "opensearch", body["backend"])
	assert.EqualValues(t, 21578, body["document_count"])
}

func TestAutocomplete(t *testing.T) {
	t.Run("short prefix returns empty results", func(t *testing.T) {
		f := newFixture(t)
		rec, body := f.do(t, http.MethodGet, "/api/search/autocomplete?q=co", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, []any{}, body["results"])
		assert.Contains(t, body["message"], "too short")
		assert.Empty(t, f.search.lastPrefix)
	})

	t.Run("returns suggestions", func(t *testing.T) {
		f := newFixture(t)
		f.search.suggestions = []domain.Suggestion{{ID: "1", Title: "Cocoa exports", Score: 2.5}}

		rec, body := f.do(t, http.MethodGet, "/api/search/autocomplete?q=coc&size=5", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "coc", f.search.lastPrefix)
		assert.Equal(t, 5, f.search.lastSize)

		results := body["results"].([]any)
		require.Len(t, results, 1)
		hit := results[0].(map[string]any)
		assert.Equal(t, "Cocoa exports", hit["title"])
		assert.Equal(t, "1", hit["id"])
	})

	t.Run("default size", func(t *testing.T) {
		f := newFixture(t)
		f.do(t, http.MethodGet, "/api/search/autocomplete?q=cocoa", "")
		assert.Equal(t, domain.DefaultResultLimit, f.search.lastSize)
	})

	t.Run("invalid size", func(t *testing.T) {
		f := newFixture(t)
		rec, _ := f.do(t, http.MethodGet, "/api/search/autocomplete?q=cocoa&size=ten", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSmartSearch(t *testing.T) {
	t.Run("decodes spec and flattens documents", func(t *testing.T) {
		f := newFixture(t)
		f.search.results = []domain.SearchResult{
			{Document: domain.Document{ID: "d1", Title: "Cocoa", Date: "1987-02-26T00:00:00"}, Score: 3.2},
		}

		rec, body := f.do(t, http.MethodPost, "/api/search/smart",
			`{"query":"cocoa","temporal_expression":"1987","georeference":"Brazil","size":5}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.QuerySpec{Text: "cocoa", TemporalHint: "1987", GeoHint: "Brazil", Limit: 5},
			f.search.lastSpec)
		assert.EqualValues(t, 1, body["total"])

		results := body["results"].([]any)
		require.Len(t, results, 1)
		hit := results[0].(map[string]any)
		assert.Equal(t, "d1", hit["id"])
		assert.Equal(t, "Cocoa", hit["title"])
		assert.Equal(t, 3.2, hit["score"])
	})

	t.Run("engine error", func(t *testing.T) {
		f := newFixture(t)
		f.search.err = errors.New("connection refused")

		rec, body := f.do(t, http.MethodPost, "/api/search/smart", `{"query":"x"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "connection refused", body["error"])
	})
}

func TestAnalytics(t *testing.T) {
	t.Run("top georeferences", func(t *testing.T) {
		f := newFixture(t)
		f.analytics.terms = []domain.TermCount{{Key: "USA", Count: 40}}

		rec, body := f.do(t, http.MethodGet, "/api/analytics/top-georeferences?size=3", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, f.analytics.lastSize)

		results := body["results"].([]any)
		require.Len(t, results, 1)
		assert.Equal(t, "USA", results[0].(map[string]any)["georeference"])
		assert.EqualValues(t, 40, results[0].(map[string]any)["count"])
	})

	t.Run("time distribution defaults to daily", func(t *testing.T) {
		f := newFixture(t)
		rec, body := f.do(t, http.MethodGet, "/api/analytics/time-distribution", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.IntervalDay, f.analytics.lastInterval)
		assert.Equal(t, []any{}, body["results"])
	})

	t.Run("time distribution interval", func(t *testing.T) {
		f := newFixture(t)
		f.analytics.dates = []domain.DateCount{{Date: "1987-02-01", Count: 9}}

		_, body := f.do(t, http.MethodGet, "/api/analytics/time-distribution?interval=1M", "")
		assert.Equal(t, domain.IntervalMonth, f.analytics.lastInterval)
		assert.Equal(t, "1M", body["interval"])
		assert.Len(t, body["results"], 1)
	})

	t.Run("time distribution bad interval", func(t *testing.T) {
		f := newFixture(t)
		rec, _ := f.do(t, http.MethodGet, "/api/analytics/time-distribution?interval=fortnight", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("dashboard", func(t *testing.T) {
		f := newFixture(t)
		f.analytics.dashboard = domain.Dashboard{
			TotalDocuments:        100,
			DistinctGeoreferences: 12,
			TopGeoreferences:      []domain.TermCount{{Key: "Japan", Count: 8}},
		}

		rec, body := f.do(t, http.MethodGet, "/api/analytics/dashboard", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 100, body["total_documents"])
		assert.EqualValues(t, 12, body["distinct_georeferences"])
		assert.Len(t, body["top_georeferences"], 1)
		assert.Equal(t, []any{}, body["documents_over_time"])
	})
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		f := newFixture(t)
		rec, body := f.do(t, http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "mock", body["backend"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		f := newFixture(t)
		f.health.err = fmt.Errorf("cluster red: %w", domain.ErrSearchUnavailable)

		rec, body := f.do(t, http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, false, body["success"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "smartdocs_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	f := newFixture(t, WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	rec, _ := f.do(t, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "smartdocs_test_total 1")
}

func TestExtraHandler(t *testing.T) {
	f := newFixture(t, WithHandler("/mcp", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	rec, _ := f.do(t, http.MethodPost, "/mcp", "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRecoverer(t *testing.T) {
	h := recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
