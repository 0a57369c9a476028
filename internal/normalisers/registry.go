package normalisers

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/normalisers/html"
	"github.com/jana0025/IR-PROJECT/internal/normalisers/json"
	"github.com/jana0025/IR-PROJECT/internal/normalisers/markdown"
	"github.com/jana0025/IR-PROJECT/internal/normalisers/plaintext"
	"github.com/jana0025/IR-PROJECT/internal/normalisers/sgml"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry selects normalisers by MIME type, then by extension.
// Among candidates the highest priority wins; ties go to the earliest registered.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Defaults returns a registry with every built-in normaliser.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(json.New())
	r.Register(sgml.New())
	r.Register(html.New())
	r.Register(markdown.New())
	r.Register(plaintext.New())
	return r
}

// Register adds a normaliser.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, n)
}

// Get returns the best normaliser for the MIME type, falling back to the
// extension. Returns domain.ErrUnsupportedType if none match.
func (r *Registry) Get(mimeType, ext string) (driven.Normaliser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if mimeType != "" {
		if n := r.best(func(n driven.Normaliser) []string { return n.SupportedMIMETypes() }, mimeType); n != nil {
			return n, nil
		}
	}
	if ext != "" {
		if n := r.best(func(n driven.Normaliser) []string { return n.SupportedExtensions() }, ext); n != nil {
			return n, nil
		}
	}
	return nil, fmt.Errorf("mime %q ext %q: %w", mimeType, ext, domain.ErrUnsupportedType)
}

// best returns the highest-priority normaliser whose list contains want
// (caller must hold lock).
func (r *Registry) best(list func(driven.Normaliser) []string, want string) driven.Normaliser {
	var chosen driven.Normaliser
	for _, n := range r.normalisers {
		if !contains(list(n), want) {
			continue
		}
		if chosen == nil || n.Priority() > chosen.Priority() {
			chosen = n
		}
	}
	return chosen
}

// SupportedExtensions returns every registered extension, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var exts []string
	for _, n := range r.normalisers {
		for _, ext := range n.SupportedExtensions() {
			if _, ok := seen[ext]; ok {
				continue
			}
			seen[ext] = struct{}{}
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Supports reports whether a file name has a registered extension.
func (r *Registry) Supports(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range r.SupportedExtensions() {
		if e == ext {
			return true
		}
	}
	return false
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
