// Package mcp exposes smart search and analytics to MCP clients
// (Model Context Protocol) over stdio or streamable HTTP.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrAnalyticsUnavailable is returned by analytics tools when no analytics service is wired.
var ErrAnalyticsUnavailable = errors.New("mcp: analytics service not configured")
