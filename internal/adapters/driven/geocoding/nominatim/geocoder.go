// Package nominatim provides a geocoder backed by a Nominatim-compatible
// search endpoint.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Geocoder implements the interface.
var _ driven.Geocoder = (*Geocoder)(nil)

// Default configuration values.
const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "smartdocs"
	DefaultTimeout   = 5 * time.Second
)

// Config holds configuration for the geocoder.
type Config struct {
	// BaseURL is the service root (default: public Nominatim).
	BaseURL string

	// UserAgent is sent with every request; the public service rejects
	// anonymous clients.
	UserAgent string

	// Timeout bounds each lookup (default: 5s).
	Timeout time.Duration
}

// Geocoder resolves place names through GET /search.
type Geocoder struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// place is one /search result. Coordinates arrive as strings.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewGeocoder creates a new Nominatim geocoder.
func NewGeocoder(cfg Config) *Geocoder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Geocoder{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// Geocode returns the first match for name.
func (g *Geocoder) Geocode(ctx context.Context, name string) (domain.GeoPoint, error) {
	params := url.Values{}
	params.Set("q", name)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return domain.GeoPoint{}, fmt.Errorf("nominatim: %w", domain.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.GeoPoint{}, fmt.Errorf("nominatim error (status %d): %s", resp.StatusCode, string(body))
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("decode response: %w", err)
	}
	if len(places) == 0 {
		return domain.GeoPoint{}, fmt.Errorf("%q: %w", name, domain.ErrGeocodeNotFound)
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse latitude %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse longitude %q: %w", places[0].Lon, err)
	}
	return domain.GeoPoint{Lat: lat, Lon: lon}, nil
}
