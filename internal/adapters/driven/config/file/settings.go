package file

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SMARTDOCS_"

// Configuration keys.
const (
	KeySearchBackend        = "search.backend"
	KeySearchOverFetch      = "search.overfetch"
	KeySearchPostProcessors = "search.postprocessors"

	KeyOpenSearchURL      = "opensearch.url"
	KeyOpenSearchIndex    = "opensearch.index"
	KeyOpenSearchUsername = "opensearch.username"
	KeyOpenSearchPassword = "opensearch.password"
	KeyOpenSearchTimeout  = "opensearch.timeout_seconds"

	KeyNERBackend   = "ner.backend"
	KeyNERURL       = "ner.url"
	KeyNERGazetteer = "ner.gazetteer"
	KeyNERModel     = "ner.model"
	KeyNERTimeout   = "ner.timeout_seconds"

	KeyGeocoderURL         = "geocoder.url"
	KeyGeocoderUserAgent   = "geocoder.user_agent"
	KeyGeocoderTimeout     = "geocoder.timeout_seconds"
	KeyGeocoderMinInterval = "geocoder.min_interval_ms"
	KeyGeocodeEnabled      = "geocode.enabled"
	KeyGeocodeLimit        = "geocode.limit"

	KeyCacheRedisAddr   = "cache.redis_addr"
	KeyCacheRedisPrefix = "cache.redis_prefix"

	KeyStorageDataDir  = "storage.data_dir"
	KeyStorageDisabled = "storage.disabled"

	KeyServerAddr = "server.addr"
)

// ValueKind is the type a configuration key holds.
type ValueKind int

// Value kinds.
const (
	KindString ValueKind = iota
	KindInt
	KindBool
	KindList
)

// knownKeys maps every recognised key to its kind.
var knownKeys = map[string]ValueKind{
	KeySearchBackend:        KindString,
	KeySearchOverFetch:      KindInt,
	KeySearchPostProcessors: KindList,
	KeyOpenSearchURL:        KindString,
	KeyOpenSearchIndex:      KindString,
	KeyOpenSearchUsername:   KindString,
	KeyOpenSearchPassword:   KindString,
	KeyOpenSearchTimeout:    KindInt,
	KeyNERBackend:           KindString,
	KeyNERURL:               KindString,
	KeyNERGazetteer:         KindString,
	KeyNERModel:             KindString,
	KeyNERTimeout:           KindInt,
	KeyGeocoderURL:          KindString,
	KeyGeocoderUserAgent:    KindString,
	KeyGeocoderTimeout:      KindInt,
	KeyGeocoderMinInterval:  KindInt,
	KeyGeocodeEnabled:       KindBool,
	KeyGeocodeLimit:         KindInt,
	KeyCacheRedisAddr:       KindString,
	KeyCacheRedisPrefix:     KindString,
	KeyStorageDataDir:       KindString,
	KeyStorageDisabled:      KindBool,
	KeyServerAddr:           KindString,
}

// KnownKeys returns every recognised configuration key.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnvName returns the environment variable that overrides key,
// e.g. SMARTDOCS_OPENSEARCH_URL for opensearch.url.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ParseValue converts a command-line string into the kind key expects.
// Lists are comma-separated.
func ParseValue(key, raw string) (any, error) {
	kind, ok := knownKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %q: %w", key, domain.ErrInvalidInput)
	}
	switch kind {
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer: %w", key, domain.ErrInvalidInput)
		}
		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false: %w", key, domain.ErrInvalidInput)
		}
		return b, nil
	case KindList:
		return splitList(raw), nil
	default:
		return raw, nil
	}
}

// LoadSettings overlays the store and then the environment on the defaults.
// The store may be nil.
func LoadSettings(store driven.ConfigStore) (domain.AppSettings, error) {
	return loadSettings(store, os.LookupEnv)
}

func loadSettings(store driven.ConfigStore, lookupEnv func(string) (string, bool)) (domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	src := &layered{store: store, env: lookupEnv}

	if v, ok := src.str(KeySearchBackend); ok {
		s.Search.Backend = domain.SearchBackend(v)
	}
	src.intInto(KeySearchOverFetch, &s.Search.OverFetch)
	if v, ok := src.list(KeySearchPostProcessors); ok {
		s.Search.PostProcessors = v
	}

	src.strInto(KeyOpenSearchURL, &s.OpenSearch.URL)
	src.strInto(KeyOpenSearchIndex, &s.OpenSearch.Index)
	src.strInto(KeyOpenSearchUsername, &s.OpenSearch.Username)
	src.strInto(KeyOpenSearchPassword, &s.OpenSearch.Password)
	src.durationInto(KeyOpenSearchTimeout, time.Second, &s.OpenSearch.Timeout)

	if v, ok := src.str(KeyNERBackend); ok {
		s.Recognizer.Backend = domain.RecognizerBackend(v)
	}
	src.strInto(KeyNERURL, &s.Recognizer.URL)
	src.strInto(KeyNERGazetteer, &s.Recognizer.Gazetteer)
	src.strInto(KeyNERModel, &s.Recognizer.Model)
	src.durationInto(KeyNERTimeout, time.Second, &s.Recognizer.Timeout)

	src.strInto(KeyGeocoderURL, &s.Geocoder.URL)
	src.strInto(KeyGeocoderUserAgent, &s.Geocoder.UserAgent)
	src.durationInto(KeyGeocoderTimeout, time.Second, &s.Geocoder.Timeout)
	src.durationInto(KeyGeocoderMinInterval, time.Millisecond, &s.Geocoder.MinInterval)
	src.boolInto(KeyGeocodeEnabled, &s.Geocoder.Enabled)
	src.intInto(KeyGeocodeLimit, &s.Geocoder.Limit)

	src.strInto(KeyCacheRedisAddr, &s.Cache.RedisAddr)
	src.strInto(KeyCacheRedisPrefix, &s.Cache.RedisPrefix)

	src.strInto(KeyStorageDataDir, &s.Storage.DataDir)
	src.boolInto(KeyStorageDisabled, &s.Storage.Disabled)

	src.strInto(KeyServerAddr, &s.Server.Addr)

	if src.err != nil {
		return s, src.err
	}
	if !s.Search.Backend.IsValid() {
		return s, fmt.Errorf("%s %q: %w", KeySearchBackend, s.Search.Backend, domain.ErrInvalidInput)
	}
	if !s.Recognizer.Backend.IsValid() {
		return s, fmt.Errorf("%s %q: %w", KeyNERBackend, s.Recognizer.Backend, domain.ErrInvalidInput)
	}
	return s, nil
}

// layered reads a key from the environment first, then from the store.
// The first malformed environment value is kept in err.
type layered struct {
	store driven.ConfigStore
	env   func(string) (string, bool)
	err   error
}

func (l *layered) stored(key string) (any, bool) {
	if l.store == nil {
		return nil, false
	}
	return l.store.Get(key)
}

func (l *layered) fail(key, want string) {
	if l.err == nil {
		l.err = fmt.Errorf("%s expects %s: %w", EnvName(key), want, domain.ErrInvalidInput)
	}
}

func (l *layered) str(key string) (string, bool) {
	if v, ok := l.env(EnvName(key)); ok {
		return v, true
	}
	if v, ok := l.stored(key); ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func (l *layered) integer(key string) (int, bool) {
	if v, ok := l.env(EnvName(key)); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			l.fail(key, "an integer")
			return 0, false
		}
		return n, true
	}
	if v, ok := l.stored(key); ok {
		return asInt(v)
	}
	return 0, false
}

func (l *layered) boolean(key string) (bool, bool) {
	if v, ok := l.env(EnvName(key)); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			l.fail(key, "true or false")
			return false, false
		}
		return b, true
	}
	if v, ok := l.stored(key); ok {
		b, ok := v.(bool)
		return b, ok
	}
	return false, false
}

func (l *layered) list(key string) ([]string, bool) {
	if v, ok := l.env(EnvName(key)); ok {
		return splitList(v), true
	}
	if v, ok := l.stored(key); ok {
		return asStringSlice(v)
	}
	return nil, false
}

func (l *layered) strInto(key string, dst *string) {
	if v, ok := l.str(key); ok {
		*dst = v
	}
}

func (l *layered) intInto(key string, dst *int) {
	if v, ok := l.integer(key); ok {
		*dst = v
	}
}

func (l *layered) boolInto(key string, dst *bool) {
	if v, ok := l.boolean(key); ok {
		*dst = v
	}
}

func (l *layered) durationInto(key string, unit time.Duration, dst *time.Duration) {
	if v, ok := l.integer(key); ok && v >= 0 {
		*dst = time.Duration(v) * unit
	}
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
