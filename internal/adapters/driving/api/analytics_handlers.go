package api

import (
	"context"
	"net/http"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// defaultHistogramInterval matches the daily buckets of the dashboard API.
const defaultHistogramInterval = domain.IntervalDay

// GeoreferenceCount is one bucket of the top places aggregation.
type GeoreferenceCount struct {
	Georeference string `json:"georeference"`
	Count        int64  `json:"count"`
}

// handleTopGeoreferences handles GET /api/analytics/top-georeferences?size=.
func (s *Server) handleTopGeoreferences(w http.ResponseWriter, r *http.Request) {
	size, err := intParam(r, "size", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	terms, err := s.ports.Analytics.TopGeoreferences(r.Context(), size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": georeferenceCounts(terms)})
}

// handleTimeDistribution handles GET /api/analytics/time-distribution?interval=.
func (s *Server) handleTimeDistribution(w http.ResponseWriter, r *http.Request) {
	interval := defaultHistogramInterval
	if raw := r.URL.Query().Get("interval"); raw != "" {
		parsed, err := domain.ParseCalendarInterval(raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		interval = parsed
	}

	buckets, err := s.ports.Analytics.TimeDistribution(r.Context(), interval)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if buckets == nil {
		buckets = []domain.DateCount{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"interval": string(interval),
		"results":  buckets,
	})
}

// handleDashboard handles GET /api/analytics/dashboard.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.ports.Analytics.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	timeline := d.Timeline
	if timeline == nil {
		timeline = []domain.DateCount{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_documents":        d.TotalDocuments,
		"distinct_georeferences": d.DistinctGeoreferences,
		"top_georeferences":      georeferenceCounts(d.TopGeoreferences),
		"documents_over_time":    timeline,
	})
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.ports.Health == nil {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.healthTimeout)
	defer cancel()

	if err := s.ports.Health.Ping(ctx); err != nil {
		writeErrorStatus(w, r, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"backend": s.ports.Health.Name(),
	})
}

func georeferenceCounts(terms []domain.TermCount) []GeoreferenceCount {
	out := make([]GeoreferenceCount, len(terms))
	for i, t := range terms {
		out[i] = GeoreferenceCount{Georeference: t.Key, Count: t.Count}
	}
	return out
}
