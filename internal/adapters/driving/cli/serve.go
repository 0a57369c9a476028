package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/api"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API",
	Long: `Serves the REST API:

  POST /api/index/document         index one JSON document
  POST /api/index/bulk             index {"documents": [...]}
  POST /api/index/from-folder      index {"folder_path": "..."}
  GET  /api/index/stats            document counts
  GET  /api/search/autocomplete    ?q=prefix&size=10
  POST /api/search/smart           {"query", "temporal_expression", "georeference", "size"}
  GET  /api/analytics/top-georeferences   ?size=10
  GET  /api/analytics/time-distribution   ?interval=1d
  GET  /api/analytics/dashboard
  GET  /api/health
  GET  /metrics                    Prometheus metrics

The MCP endpoint is mounted at /mcp unless --no-mcp is given.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from server.addr)")
	serveCmd.Flags().Bool("no-mcp", false, "do not mount the MCP endpoint")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil || ingestService == nil || analyticsService == nil {
		return errors.New("services not configured")
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}
	if addr == "" {
		addr = appSettings.Server.Addr
	}
	noMCP, err := cmd.Flags().GetBool("no-mcp")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := prepareIndex(ctx, false); err != nil {
		return err
	}

	var opts []api.Option
	if metricsHandler != nil {
		opts = append(opts, api.WithMetricsHandler(metricsHandler))
	}
	if !noMCP {
		mcpServer, err := mcp.NewServer(&mcp.Ports{
			Search:    searchService,
			Analytics: analyticsService,
			Ingest:    ingestService,
		})
		if err != nil {
			return err
		}
		opts = append(opts, api.WithHandler("/mcp", mcpServer.Handler()))
	}

	server, err := api.NewServer(api.Ports{
		Search:    searchService,
		Analytics: analyticsService,
		Ingest:    ingestService,
		Health:    healthChecker,
	}, opts...)
	if err != nil {
		return err
	}

	cmd.Printf("Serving on %s\n", addr)
	return server.ListenAndServe(ctx, addr)
}
