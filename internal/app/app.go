// Package app wires settings into adapters and core services.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/cache/rediscache"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/geocoding/nominatim"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/metrics"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/ner/gazetteer"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/ner/httpner"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/ner/ollamaner"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/opensearch"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/storage/memory"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/storage/sqlite"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/core/services"
	"github.com/jana0025/IR-PROJECT/internal/logger"
	"github.com/jana0025/IR-PROJECT/internal/normalisers"
	"github.com/jana0025/IR-PROJECT/internal/postprocessors"
)

// App holds the wired services and the resources they own.
type App struct {
	Settings domain.AppSettings

	Engine    driven.SearchEngine
	Search    *services.SearchService
	Ingest    *services.IngestService
	Analytics *services.AnalyticsService

	Registry *prometheus.Registry

	closers []io.Closer
}

// New builds every adapter the settings select. Nothing talks to the
// search engine until the first call; use EnsureIndex before writing.
func New(ctx context.Context, settings domain.AppSettings) (*App, error) {
	a := &App{Settings: settings}

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics()
	if err := m.Register(reg); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.Registry = reg

	engine, err := newEngine(settings)
	if err != nil {
		return nil, err
	}
	a.Engine = engine
	a.closers = append(a.closers, engine)

	recognizer, err := newRecognizer(settings.Recognizer)
	if err != nil {
		a.Close()
		return nil, err
	}

	cache := a.newGeocodeCache(ctx, settings.Cache)
	geocoder := nominatim.NewGeocoder(nominatim.Config{
		BaseURL:   settings.Geocoder.URL,
		UserAgent: settings.Geocoder.UserAgent,
		Timeout:   settings.Geocoder.Timeout,
	})
	resolver := services.NewGeocodeResolver(geocoder, cache,
		services.WithMinInterval(settings.Geocoder.MinInterval),
		services.WithLookupTimeout(settings.Geocoder.Timeout),
		services.WithResolverMetrics(m),
	)

	journal, err := a.newJournal(settings.Storage)
	if err != nil {
		a.Close()
		return nil, err
	}

	enricher := services.NewEnricher(recognizer, resolver)
	enricher.SetMetrics(m)

	registry := normalisers.Defaults()
	a.Ingest = services.NewIngestService(engine, enricher, registry, journal)

	pipeline, err := newPipeline(settings.Search.PostProcessors)
	if err != nil {
		a.Close()
		return nil, err
	}
	builder := services.NewQueryBuilder(services.DefaultQueryWeights(), settings.Search.OverFetch)
	a.Search = services.NewSearchService(engine, builder, pipeline)
	a.Search.SetMetrics(m)
	if settings.Geocoder.Enabled {
		a.Search.SetGeocodeResolver(resolver)
	}

	a.Analytics = services.NewAnalyticsService(engine)
	a.Analytics.SetMetrics(m)

	return a, nil
}

// EnsureIndex creates the search index if it does not exist.
func (a *App) EnsureIndex(ctx context.Context, recreate bool) error {
	if err := a.Engine.EnsureIndex(ctx, recreate); err != nil {
		return fmt.Errorf("ensure index: %w", err)
	}
	return nil
}

// MetricsHandler serves the app's Prometheus registry.
func (a *App) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})
}

// Supports reports whether a file can be indexed.
func (a *App) Supports(path string) bool {
	return a.Ingest.Supports(path)
}

// Close releases owned resources in reverse order of creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func newEngine(settings domain.AppSettings) (driven.SearchEngine, error) {
	switch settings.Search.Backend {
	case domain.SearchBackendMemory:
		logger.Debug("Search backend: in-memory")
		return memory.NewSearchEngine(), nil
	case domain.SearchBackendOpenSearch, "":
		logger.Debug("Search backend: %s/%s", settings.OpenSearch.URL, settings.OpenSearch.Index)
		return opensearch.New(opensearch.Config{
			URL:      settings.OpenSearch.URL,
			Index:    settings.OpenSearch.Index,
			Username: settings.OpenSearch.Username,
			Password: settings.OpenSearch.Password,
			Timeout:  settings.OpenSearch.Timeout,
			Refresh:  true,
		}), nil
	default:
		return nil, fmt.Errorf("search backend %q: %w", settings.Search.Backend, domain.ErrInvalidInput)
	}
}

func newRecognizer(s domain.RecognizerSettings) (driven.EntityRecognizer, error) {
	switch s.Backend {
	case domain.RecognizerHTTP:
		logger.Debug("Entity recognizer: %s", s.URL)
		return httpner.NewRecognizer(httpner.Config{BaseURL: s.URL, Timeout: s.Timeout}), nil
	case domain.RecognizerOllama:
		logger.Debug("Entity recognizer: ollama model %q", s.Model)
		return ollamaner.NewRecognizer(ollamaner.Config{BaseURL: s.URL, Model: s.Model, Timeout: s.Timeout}), nil
	case domain.RecognizerGazetteer, "":
		r, err := gazetteer.Load(s.Gazetteer)
		if err != nil {
			return nil, fmt.Errorf("load gazetteer: %w", err)
		}
		logger.Debug("Entity recognizer: gazetteer with %d places", r.Size())
		return r, nil
	default:
		return nil, fmt.Errorf("recognizer backend %q: %w", s.Backend, domain.ErrInvalidInput)
	}
}

// newGeocodeCache uses redis when configured and reachable, else memory.
func (a *App) newGeocodeCache(ctx context.Context, s domain.CacheSettings) driven.GeocodeCache {
	if s.RedisAddr == "" {
		return memory.NewGeocodeCache()
	}
	cache, err := rediscache.New(ctx, s.RedisAddr, s.RedisPrefix)
	if err != nil {
		logger.Warn("Redis geocode cache unavailable, using memory: %v", err)
		return memory.NewGeocodeCache()
	}
	a.closers = append(a.closers, cache)
	return cache
}

// newJournal opens the sqlite journal unless disabled. A journal that
// cannot be opened disables re-indexing instead of failing startup.
func (a *App) newJournal(s domain.StorageSettings) (driven.DocumentStore, error) {
	if s.Disabled {
		return nil, nil
	}
	store, err := sqlite.NewStore(s.DataDir)
	if err != nil {
		logger.Warn("Document journal unavailable, re-indexing disabled: %v", err)
		return nil, nil
	}
	a.closers = append(a.closers, store)
	return store, nil
}

func newPipeline(names []string) (driven.ResultPipeline, error) {
	if len(names) == 0 {
		names = postprocessors.DefaultNames
	}
	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	pipeline, err := registry.BuildPipeline(names, nil)
	if err != nil {
		return nil, fmt.Errorf("build result pipeline: %w", err)
	}
	return pipeline, nil
}
