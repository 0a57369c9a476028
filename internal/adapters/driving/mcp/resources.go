package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for smartdocs resources.
	uriScheme = "smartdocs://"

	dashboardURI        = uriScheme + "analytics/dashboard"
	indexStatsURI       = uriScheme + "index/stats"
	timeDistributionURI = uriScheme + "analytics/time-distribution/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         dashboardURI,
		Name:        "dashboard",
		Description: "Document count, distinct places, top places and monthly timeline",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	s.server.AddResource(&mcp.Resource{
		URI:         indexStatsURI,
		Name:        "index-stats",
		Description: "Search backend name and document counts",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: timeDistributionURI + "{interval}",
		Name:        "time-distribution",
		Description: "Documents per day, week, month, quarter or year",
		MIMEType:    "application/json",
	}, s.handleTimeDistributionResource)
}

// handleDashboardResource returns the analytics dashboard.
func (s *Server) handleDashboardResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Analytics == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	dashboard, err := s.ports.Analytics.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("building dashboard: %w", err)
	}
	return jsonResource(req.Params.URI, dashboard)
}

// handleStatsResource returns index statistics.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Ingest == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	stats, err := s.ports.Ingest.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting index stats: %w", err)
	}
	return jsonResource(req.Params.URI, stats)
}

// handleTimeDistributionResource returns the histogram for the interval in the URI.
func (s *Server) handleTimeDistributionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Analytics == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	raw := extractInterval(req.Params.URI)
	if raw == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	interval, err := domain.ParseCalendarInterval(raw)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	buckets, err := s.ports.Analytics.TimeDistribution(ctx, interval)
	if err != nil {
		return nil, fmt.Errorf("getting time distribution: %w", err)
	}
	if buckets == nil {
		buckets = []domain.DateCount{}
	}
	return jsonResource(req.Params.URI, buckets)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractInterval extracts the interval from a URI like smartdocs://analytics/time-distribution/{interval}.
func extractInterval(uri string) string {
	if !strings.HasPrefix(uri, timeDistributionURI) {
		return ""
	}
	interval := strings.TrimPrefix(uri, timeDistributionURI)
	if strings.Contains(interval, "/") {
		return ""
	}
	return interval
}
