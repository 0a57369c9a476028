package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func TestExtractInterval(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid interval URI",
			uri:      "smartdocs://analytics/time-distribution/month",
			expected: "month",
		},
		{
			name:     "invalid prefix",
			uri:      "file://analytics/time-distribution/month",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "smartdocs://analytics/time-distribution/month/extra",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractInterval(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDashboardResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil analytics service returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, err = server.handleDashboardResource(ctx, makeReadResourceRequest(dashboardURI))
		require.Error(t, err)
	})

	t.Run("returns dashboard JSON", func(t *testing.T) {
		analytics := &mockAnalyticsService{
			dashboard: domain.Dashboard{
				TotalDocuments:        42,
				DistinctGeoreferences: 7,
				TopGeoreferences:      []domain.TermCount{{Key: "London", Count: 12}},
				Timeline:              []domain.DateCount{{Date: "1987-02-01", Count: 3}},
			},
		}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Analytics: analytics})
		require.NoError(t, err)

		result, err := server.handleDashboardResource(ctx, makeReadResourceRequest(dashboardURI))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, dashboardURI, result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var got domain.Dashboard
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
		assert.Equal(t, analytics.dashboard, got)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		analytics := &mockAnalyticsService{err: errors.New("cluster down")}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Analytics: analytics})
		require.NoError(t, err)

		_, err = server.handleDashboardResource(ctx, makeReadResourceRequest(dashboardURI))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "building dashboard")
	})
}

func TestServer_handleStatsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil ingest service returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, err = server.handleStatsResource(ctx, makeReadResourceRequest(indexStatsURI))
		require.Error(t, err)
	})

	t.Run("returns stats", func(t *testing.T) {
		ingest := &mockIngestService{stats: domain.IndexStats{Backend: "memory", TotalDocuments: 5}}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Ingest: ingest})
		require.NoError(t, err)

		result, err := server.handleStatsResource(ctx, makeReadResourceRequest(indexStatsURI))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"backend": "memory"`)
		assert.Contains(t, result.Contents[0].Text, `"total_documents": 5`)
	})
}

func TestServer_handleTimeDistributionResource(t *testing.T) {
	ctx := context.Background()

	t.Run("parses interval from URI", func(t *testing.T) {
		analytics := &mockAnalyticsService{
			dates: []domain.DateCount{{Date: "1987-01-01", Count: 2}},
		}
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Analytics: analytics})
		require.NoError(t, err)

		result, err := server.handleTimeDistributionResource(ctx,
			makeReadResourceRequest("smartdocs://analytics/time-distribution/year"))
		require.NoError(t, err)
		assert.Equal(t, domain.IntervalYear, analytics.lastInterval)
		assert.Contains(t, result.Contents[0].Text, "1987-01-01")
	})

	t.Run("unknown interval returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Analytics: &mockAnalyticsService{}})
		require.NoError(t, err)

		_, err = server.handleTimeDistributionResource(ctx,
			makeReadResourceRequest("smartdocs://analytics/time-distribution/fortnight"))
		require.Error(t, err)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}, Analytics: &mockAnalyticsService{}})
		require.NoError(t, err)

		result, err := server.handleTimeDistributionResource(ctx,
			makeReadResourceRequest("smartdocs://analytics/time-distribution/day"))
		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})
}
