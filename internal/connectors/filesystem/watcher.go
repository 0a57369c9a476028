// Package filesystem watches a local directory for new and changed files.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// DefaultDebounce coalesces the create and write events an editor or
// copy produces for one file.
const DefaultDebounce = 250 * time.Millisecond

// Handler receives one settled change.
type Handler func(ctx context.Context, change domain.FileChange) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithFilter only reports files for which accept returns true.
func WithFilter(accept func(path string) bool) Option {
	return func(w *Watcher) {
		w.accept = accept
	}
}

// WithDebounce sets the quiet period before a change is reported.
// Zero reports every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher reports created and written regular files in one directory,
// non-recursively. Hidden files, directories, removes, renames and
// permission changes are ignored.
type Watcher struct {
	dir      string
	accept   func(path string) bool
	debounce time.Duration

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	pending map[string]*pendingChange
}

type pendingChange struct {
	change domain.FileChange
	timer  *time.Timer
}

// NewWatcher creates a watcher for dir. Nothing is watched until Watch.
func NewWatcher(dir string, opts ...Option) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch %s: not a directory: %w", dir, domain.ErrInvalidInput)
	}

	w := &Watcher{
		dir:      dir,
		accept:   func(string) bool { return true },
		debounce: DefaultDebounce,
		pending:  make(map[string]*pendingChange),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch starts watching and returns a channel of settled changes.
// The channel is closed when ctx is cancelled or the watcher fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan domain.FileChange, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	out := make(chan domain.FileChange, 16)
	go w.loop(ctx, fsw, out)
	return out, nil
}

// Run watches until ctx is cancelled, calling handle for each change.
// Handler errors are logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	for change := range changes {
		if err := handle(ctx, change); err != nil {
			logger.Warn("Indexing %s failed: %v", change.Path, err)
		}
	}
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- domain.FileChange) {
	defer close(out)
	defer w.Close()

	ready := make(chan string, 16)

	emit := func(change domain.FileChange) bool {
		select {
		case out <- change:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case path := <-ready:
			w.mu.Lock()
			p, ok := w.pending[path]
			delete(w.pending, path)
			w.mu.Unlock()
			if ok && !emit(p.change) {
				return
			}

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			change, ok := w.classify(event)
			if !ok {
				continue
			}
			logger.Debug("fs event %s %s", event.Op, event.Name)
			if w.debounce <= 0 {
				if !emit(change) {
					return
				}
				continue
			}
			w.schedule(ctx, change, ready)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error on %s: %v", w.dir, err)
		}
	}
}

// schedule reports change after the debounce period, restarting the
// period if the file changes again. A create followed by writes stays a create.
func (w *Watcher) schedule(ctx context.Context, change domain.FileChange, ready chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if p, ok := w.pending[change.Path]; ok {
		p.timer.Stop()
		if p.change.Type == domain.ChangeCreated {
			change.Type = domain.ChangeCreated
		}
	}
	path := change.Path
	w.pending[path] = &pendingChange{
		change: change,
		timer: time.AfterFunc(w.debounce, func() {
			select {
			case ready <- path:
			case <-ctx.Done():
			}
		}),
	}
}

// classify maps an fsnotify event to a change worth reporting.
func (w *Watcher) classify(event fsnotify.Event) (domain.FileChange, bool) {
	var kind domain.ChangeType
	switch {
	case event.Has(fsnotify.Create):
		kind = domain.ChangeCreated
	case event.Has(fsnotify.Write):
		kind = domain.ChangeUpdated
	default:
		return domain.FileChange{}, false
	}

	name := filepath.Base(event.Name)
	if IsHidden(name) {
		return domain.FileChange{}, false
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return domain.FileChange{}, false
	}
	if !w.accept(event.Name) {
		return domain.FileChange{}, false
	}
	return domain.FileChange{Type: kind, Path: event.Name}, true
}

// IsHidden reports whether a file name is a dotfile or an editor temporary.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~")
}
