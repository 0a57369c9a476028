// Package cli provides the smartdocs command-line interface.
package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/api"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driving"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// annotationNoServices marks commands that run without the search stack.
const annotationNoServices = "smartdocs/no-services"

// Services are the ports the commands drive.
type Services struct {
	Search    driving.SearchService
	Ingest    driving.IngestService
	Analytics driving.AnalyticsService

	// EnsureIndex creates the search index before writes. Optional.
	EnsureIndex func(ctx context.Context, recreate bool) error

	// Supports filters files for the watcher. Optional.
	Supports func(path string) bool

	// Health backs the API health check. Optional.
	Health api.HealthChecker

	// Metrics is served at /metrics by the API. Optional.
	Metrics http.Handler
}

// Bootstrap builds the services on first use and returns a cleanup func.
type Bootstrap func(ctx context.Context) (Services, func() error, error)

// Config is passed to Execute by main.
type Config struct {
	Version   string
	Store     driven.ConfigStore
	Settings  domain.AppSettings
	Bootstrap Bootstrap
}

var (
	version = "dev"
	verbose bool

	searchService    driving.SearchService
	ingestService    driving.IngestService
	analyticsService driving.AnalyticsService
	ensureIndex      func(ctx context.Context, recreate bool) error
	supportsFile     func(path string) bool
	healthChecker    api.HealthChecker
	metricsHandler   http.Handler

	configStore driven.ConfigStore
	appSettings = domain.DefaultAppSettings()

	bootstrap Bootstrap
	shutdown  func() error
)

var rootCmd = &cobra.Command{
	Use:   "smartdocs",
	Short: "Temporal and geographic document search",
	Long: `smartdocs enriches documents with the dates and places they mention,
indexes them, and ranks search results by text, time period and location.

Documents can be indexed from JSON, newswire SGML, HTML, Markdown and
plain text files, then searched from the command line, the REST API or
an MCP client.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline details to stderr")
}

// SetServices installs already built services.
func SetServices(s Services) {
	searchService = s.Search
	ingestService = s.Ingest
	analyticsService = s.Analytics
	ensureIndex = s.EnsureIndex
	supportsFile = s.Supports
	healthChecker = s.Health
	metricsHandler = s.Metrics
}

// Execute runs the root command.
func Execute(ctx context.Context, cfg Config) error {
	if cfg.Version != "" {
		version = cfg.Version
	}
	configStore = cfg.Store
	appSettings = cfg.Settings
	bootstrap = cfg.Bootstrap

	err := rootCmd.ExecuteContext(ctx)
	if shutdown != nil {
		if cerr := shutdown(); cerr != nil {
			logger.Warn("Shutdown: %v", cerr)
		}
		shutdown = nil
	}
	return err
}

// initServices builds the services unless the command runs without them
// or they are already set.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || searchService != nil || skipsServices(cmd) {
		return nil
	}

	services, cleanup, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	SetServices(services)
	shutdown = cleanup
	return nil
}

func skipsServices(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoServices]; ok {
			return true
		}
	}
	return false
}

func prepareIndex(ctx context.Context, recreate bool) error {
	if ensureIndex == nil {
		return nil
	}
	return ensureIndex(ctx, recreate)
}

var errIngestNotConfigured = errors.New("ingest service not configured")
