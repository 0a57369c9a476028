package domain

import "time"

const unknownDescription = "Unknown"

// SearchBackend selects the search engine implementation.
type SearchBackend string

// Available search backends.
const (
	// SearchBackendOpenSearch is a remote OpenSearch (or Elasticsearch-compatible) cluster.
	SearchBackendOpenSearch SearchBackend = "opensearch"

	// SearchBackendMemory is an in-process index. Contents are lost on exit.
	SearchBackendMemory SearchBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b SearchBackend) IsValid() bool {
	switch b {
	case SearchBackendOpenSearch, SearchBackendMemory:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of the backend.
func (b SearchBackend) Description() string {
	switch b {
	case SearchBackendOpenSearch:
		return "OpenSearch (remote cluster)"
	case SearchBackendMemory:
		return "In-memory (ephemeral)"
	default:
		return unknownDescription
	}
}

// RecognizerBackend selects the named-entity recogniser implementation.
type RecognizerBackend string

// Available recogniser backends.
const (
	// RecognizerHTTP calls an external NER service.
	RecognizerHTTP RecognizerBackend = "http"

	// RecognizerGazetteer matches names from a local YAML gazetteer.
	RecognizerGazetteer RecognizerBackend = "gazetteer"

	// RecognizerOllama prompts a local Ollama model for entities.
	RecognizerOllama RecognizerBackend = "ollama"
)

// IsValid returns true if the recogniser backend is recognised.
func (b RecognizerBackend) IsValid() bool {
	switch b {
	case RecognizerHTTP, RecognizerGazetteer, RecognizerOllama:
		return true
	default:
		return false
	}
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// Backend is the search engine implementation.
	Backend SearchBackend

	// OverFetch multiplies the requested size before post-processing.
	OverFetch int

	// PostProcessors is the ordered list of result processors to run.
	PostProcessors []string
}

// OpenSearchSettings holds cluster connection settings.
type OpenSearchSettings struct {
	URL      string
	Index    string
	Username string
	Password string
	Timeout  time.Duration
}

// RecognizerSettings holds NER configuration.
type RecognizerSettings struct {
	Backend RecognizerBackend

	// URL is the NER service endpoint (http and ollama backends).
	// Empty uses the backend's default.
	URL string

	// Model is the Ollama model name (ollama backend).
	Model string

	// Gazetteer is the YAML gazetteer path (gazetteer backend).
	// Empty uses the built-in list.
	Gazetteer string

	Timeout time.Duration
}

// GeocoderSettings holds geocoding service configuration.
type GeocoderSettings struct {
	// Enabled turns on coordinate resolution during ingestion.
	Enabled bool

	// URL is the Nominatim-compatible endpoint.
	URL string

	// UserAgent identifies the application, as required by Nominatim usage policy.
	UserAgent string

	// Timeout bounds each lookup.
	Timeout time.Duration

	// MinInterval is the minimum delay between two external lookups.
	MinInterval time.Duration

	// Limit bounds how many georeferences per document are resolved.
	Limit int
}

// CacheSettings holds geocode cache configuration.
type CacheSettings struct {
	// RedisAddr enables the shared redis cache when set.
	RedisAddr string

	// RedisPrefix namespaces cache keys.
	RedisPrefix string
}

// StorageSettings holds the raw-document journal location.
type StorageSettings struct {
	// DataDir holds the sqlite database. Empty means ~/.smartdocs/data.
	DataDir string

	// Disabled turns the journal off.
	Disabled bool
}

// ServerSettings holds HTTP API configuration.
type ServerSettings struct {
	Addr string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Search     SearchSettings
	OpenSearch OpenSearchSettings
	Recognizer RecognizerSettings
	Geocoder   GeocoderSettings
	Cache      CacheSettings
	Storage    StorageSettings
	Server     ServerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The defaults talk to a local OpenSearch, a local NER service and
// the public Nominatim instance.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			Backend:        SearchBackendOpenSearch,
			OverFetch:      3,
			PostProcessors: []string{"dedupe", "truncate"},
		},
		OpenSearch: OpenSearchSettings{
			URL:     "http://localhost:9200",
			Index:   "smart_documents",
			Timeout: 30 * time.Second,
		},
		Recognizer: RecognizerSettings{
			Backend: RecognizerGazetteer,
			Timeout: 10 * time.Second,
		},
		Geocoder: GeocoderSettings{
			Enabled:     false,
			URL:         "https://nominatim.openstreetmap.org",
			UserAgent:   "smartdocs",
			Timeout:     5 * time.Second,
			MinInterval: time.Second,
			Limit:       DefaultGeocodeLimit,
		},
		Cache: CacheSettings{
			RedisPrefix: "smartdocs:geocode:",
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}
