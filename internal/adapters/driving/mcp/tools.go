package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// contentPreviewRunes caps the content returned per search result.
const contentPreviewRunes = 500

// SmartSearchInput is the input schema for the smart_search tool.
type SmartSearchInput struct {
	Query              string `json:"query,omitempty" jsonschema:"free text to match against titles and content"`
	TemporalExpression string `json:"temporal_expression,omitempty" jsonschema:"a date, year or phrase such as 'last year' to favour documents from that period"`
	Georeference       string `json:"georeference,omitempty" jsonschema:"a place name to favour documents about that place"`
	Size               int    `json:"size,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SmartSearchOutput is the output schema for the smart_search tool.
type SmartSearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID    string   `json:"document_id"`
	Title         string   `json:"title"`
	Date          string   `json:"date,omitempty"`
	Georeferences []string `json:"georeferences,omitempty"`
	SourceFile    string   `json:"source_file,omitempty"`
	Score         float64  `json:"score"`
	Content       string   `json:"content,omitempty"`
}

// AutocompleteInput is the input schema for the autocomplete tool.
type AutocompleteInput struct {
	Prefix string `json:"prefix" jsonschema:"title prefix of at least three characters"`
	Size   int    `json:"size,omitempty" jsonschema:"maximum number of suggestions (default 10)"`
}

// AutocompleteOutput is the output schema for the autocomplete tool.
type AutocompleteOutput struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// TopGeoreferencesInput is the input schema for the top_georeferences tool.
type TopGeoreferencesInput struct {
	Size int `json:"size,omitempty" jsonschema:"number of places to return (default 10)"`
}

// TopGeoreferencesOutput is the output schema for the top_georeferences tool.
type TopGeoreferencesOutput struct {
	Georeferences []domain.TermCount `json:"georeferences"`
}

// TimeDistributionInput is the input schema for the time_distribution tool.
type TimeDistributionInput struct {
	Interval string `json:"interval,omitempty" jsonschema:"bucket width: day, week, month, quarter or year (default month)"`
}

// TimeDistributionOutput is the output schema for the time_distribution tool.
type TimeDistributionOutput struct {
	Interval string             `json:"interval"`
	Buckets  []domain.DateCount `json:"buckets"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "smart_search",
		Description: "Search indexed documents, boosting matches by text, time period and place",
	}, s.handleSmartSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "autocomplete",
		Description: "Suggest document titles starting with a prefix",
	}, s.handleAutocomplete)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "top_georeferences",
		Description: "List the most frequently mentioned places across indexed documents",
	}, s.handleTopGeoreferences)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "time_distribution",
		Description: "Count indexed documents per day, week, month, quarter or year",
	}, s.handleTimeDistribution)
}

// handleSmartSearch handles the smart_search tool invocation.
func (s *Server) handleSmartSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SmartSearchInput,
) (*mcp.CallToolResult, SmartSearchOutput, error) {
	spec := domain.QuerySpec{
		Text:         input.Query,
		TemporalHint: input.TemporalExpression,
		GeoHint:      input.Georeference,
		Limit:        input.Size,
	}

	results, err := s.ports.Search.Search(ctx, spec)
	if err != nil {
		return nil, SmartSearchOutput{}, err
	}

	output := SmartSearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		doc := results[i].Document
		output.Results[i] = SearchResultOutput{
			DocumentID:    doc.ID,
			Title:         doc.Title,
			Date:          doc.Date,
			Georeferences: doc.Georeferences,
			SourceFile:    doc.SourceFile,
			Score:         results[i].Score,
			Content:       preview(doc.Content, contentPreviewRunes),
		}
	}

	return nil, output, nil
}

// handleAutocomplete handles the autocomplete tool invocation.
func (s *Server) handleAutocomplete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AutocompleteInput,
) (*mcp.CallToolResult, AutocompleteOutput, error) {
	suggestions, err := s.ports.Search.Autocomplete(ctx, input.Prefix, input.Size)
	if err != nil {
		return nil, AutocompleteOutput{}, err
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	return nil, AutocompleteOutput{Suggestions: suggestions}, nil
}

// handleTopGeoreferences handles the top_georeferences tool invocation.
func (s *Server) handleTopGeoreferences(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopGeoreferencesInput,
) (*mcp.CallToolResult, TopGeoreferencesOutput, error) {
	if s.ports.Analytics == nil {
		return nil, TopGeoreferencesOutput{}, ErrAnalyticsUnavailable
	}
	terms, err := s.ports.Analytics.TopGeoreferences(ctx, input.Size)
	if err != nil {
		return nil, TopGeoreferencesOutput{}, err
	}
	if terms == nil {
		terms = []domain.TermCount{}
	}
	return nil, TopGeoreferencesOutput{Georeferences: terms}, nil
}

// handleTimeDistribution handles the time_distribution tool invocation.
func (s *Server) handleTimeDistribution(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TimeDistributionInput,
) (*mcp.CallToolResult, TimeDistributionOutput, error) {
	if s.ports.Analytics == nil {
		return nil, TimeDistributionOutput{}, ErrAnalyticsUnavailable
	}
	interval, err := domain.ParseCalendarInterval(input.Interval)
	if err != nil {
		return nil, TimeDistributionOutput{}, err
	}
	buckets, err := s.ports.Analytics.TimeDistribution(ctx, interval)
	if err != nil {
		return nil, TimeDistributionOutput{}, err
	}
	if buckets == nil {
		buckets = []domain.DateCount{}
	}
	return nil, TimeDistributionOutput{Interval: string(interval), Buckets: buckets}, nil
}

// preview returns at most n runes of s.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
