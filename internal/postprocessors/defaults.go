package postprocessors

import (
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/postprocessors/dedupe"
	"github.com/jana0025/IR-PROJECT/internal/postprocessors/truncate"
)

// DefaultNames is the processor chain used when none is configured.
var DefaultNames = []string{dedupe.Name, truncate.Name}

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(dedupe.Name, buildDedupe)
	r.Register(truncate.Name, buildTruncate)
}

func buildDedupe(_ map[string]any) (driven.ResultProcessor, error) {
	return dedupe.New(), nil
}

// buildTruncate creates a truncate processor from generic config.
// Supported config keys:
//   - max (int): hard cap applied on top of the requested size (default: none)
func buildTruncate(cfg map[string]any) (driven.ResultProcessor, error) {
	var opts []truncate.Option
	if cfg != nil {
		if limit := getIntFromConfig(cfg, "max"); limit > 0 {
			opts = append(opts, truncate.WithMax(limit))
		}
	}
	return truncate.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
