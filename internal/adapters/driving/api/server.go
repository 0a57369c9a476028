package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 32 << 20

// HealthChecker reports whether a backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// Ports aggregates the driving ports served by the API.
type Ports struct {
	Search    driving.SearchService
	Analytics driving.AnalyticsService
	Ingest    driving.IngestService

	// Health backs /api/health. Optional; without it the check always passes.
	Health HealthChecker
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	switch {
	case p.Search == nil:
		return errors.New("api: search service is required")
	case p.Analytics == nil:
		return errors.New("api: analytics service is required")
	case p.Ingest == nil:
		return errors.New("api: ingest service is required")
	}
	return nil
}

// Option configures a Server.
type Option func(*Server)

// WithMetricsHandler serves h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.extra["GET /metrics"] = h
	}
}

// WithHandler mounts an additional handler, such as the MCP endpoint.
func WithHandler(pattern string, h http.Handler) Option {
	return func(s *Server) {
		s.extra[pattern] = h
	}
}

// WithHealthTimeout bounds the backend ping in /api/health.
func WithHealthTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.healthTimeout = d
		}
	}
}

// Server is the REST API.
type Server struct {
	ports         Ports
	extra         map[string]http.Handler
	healthTimeout time.Duration
	handler       http.Handler
}

// NewServer creates the API server.
func NewServer(ports Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		ports:         ports,
		extra:         make(map[string]http.Handler),
		healthTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	s.routes(mux)
	for pattern, h := range s.extra {
		mux.Handle(pattern, h)
	}
	s.handler = recoverer(requestLogger(mux))
	return s, nil
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/index/document", s.handleIndexDocument)
	mux.HandleFunc("POST /api/index/bulk", s.handleBulkIndex)
	mux.HandleFunc("POST /api/index/from-folder", s.handleIndexFolder)
	mux.HandleFunc("GET /api/index/stats", s.handleStats)

	mux.HandleFunc("GET /api/search/autocomplete", s.handleAutocomplete)
	mux.HandleFunc("POST /api/search/smart", s.handleSmartSearch)

	mux.HandleFunc("GET /api/analytics/top-georeferences", s.handleTopGeoreferences)
	mux.HandleFunc("GET /api/analytics/time-distribution", s.handleTimeDistribution)
	mux.HandleFunc("GET /api/analytics/dashboard", s.handleDashboard)

	mux.HandleFunc("GET /api/health", s.handleHealth)
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("API listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if logger.IsVerbose() {
			logger.Slog().Debug("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
			)
		}
	})
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("panic serving %s %s: %v", r.Method, r.URL.Path, v)
				writeErrorStatus(w, r, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
