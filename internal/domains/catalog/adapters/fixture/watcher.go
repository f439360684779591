package fixture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

// Target receives reloaded snapshots; the memory catalog repository satisfies it.
type Target interface {
	Replace(snapshot domain.Snapshot) error
}

// Watcher reloads the fixture into a Target whenever the file changes. A fixture
// that fails to parse is logged and the previous snapshot stays in place.
type Watcher struct {
	path     string
	target   Target
	logger   *slog.Logger
	debounce time.Duration
	reloaded func()
}

type WatcherOption func(*Watcher)

func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithDebounce coalesces bursts of events, e.g. editors that write then rename.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithReloadHook is called after every reload attempt.
func WithReloadHook(fn func()) WatcherOption {
	return func(w *Watcher) {
		w.reloaded = fn
	}
}

func NewWatcher(path string, target Target, opts ...WatcherOption) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("fixture path is required")
	}
	if target == nil {
		return nil, errors.New("fixture target is required")
	}
	w := &Watcher{path: filepath.Clean(path), target: target, debounce: 200 * time.Millisecond}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// LoadInto performs one synchronous load.
func (w *Watcher) LoadInto() error {
	snapshot, err := Load(w.path)
	if err != nil {
		return err
	}
	return w.target.Replace(*snapshot)
}

// Run watches the fixture's directory until ctx is done. The directory is watched
// rather than the file so atomic replaces are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start fixture watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logWarn(ctx, "fixture watcher error", err)
		case <-pending:
			pending = nil
			if err := w.LoadInto(); err != nil {
				w.logWarn(ctx, "fixture reload failed, keeping previous catalog", err)
			} else if w.logger != nil {
				w.logger.InfoContext(ctx, "catalog fixture reloaded", slog.String("path", w.path))
			}
			if w.reloaded != nil {
				w.reloaded()
			}
		}
	}
}

func (w *Watcher) logWarn(ctx context.Context, msg string, err error) {
	if w.logger == nil {
		return
	}
	w.logger.WarnContext(ctx, msg, slog.String("path", w.path), slog.String("error", err.Error()))
}
