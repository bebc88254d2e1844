// Package watch rebuilds the embedding map whenever its input files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/core/ports/driving"
	"github.com/custodia-labs/embedmap/internal/logger"
)

// DefaultDebounce is the quiet period after the last change before a rebuild.
const DefaultDebounce = 250 * time.Millisecond

// ResultFunc receives the outcome of every build.
type ResultFunc func(*domain.BuildResult, error)

// Watcher rebuilds a map when the embeddings or prompts file changes.
type Watcher struct {
	builder  driving.MapBuilder
	req      domain.BuildRequest
	debounce time.Duration
	onResult ResultFunc
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithResultFunc registers a callback for build outcomes.
func WithResultFunc(fn ResultFunc) Option {
	return func(w *Watcher) {
		w.onResult = fn
	}
}

// New creates a watcher for the inputs named by req.
func New(builder driving.MapBuilder, req domain.BuildRequest, opts ...Option) *Watcher {
	w := &Watcher{
		builder:  builder,
		req:      req,
		debounce: DefaultDebounce,
		onResult: func(*domain.BuildResult, error) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run builds once, then rebuilds after every change to an input file.
// Build failures are reported through the result callback and do not stop
// the watcher. Run returns nil when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	targets, err := w.targets()
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	// Directories are watched rather than files so that editors which
	// replace a file by renaming a new one over it are still seen.
	dirs := make(map[string]bool)
	for target := range targets {
		dirs[filepath.Dir(target)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logger.Debug("Watching directory", "dir", dir)
	}

	w.build(ctx)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !IsRelevant(event, targets) {
				continue
			}
			logger.Debug("Input changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				logger.Warn("File watcher overflowed; rebuilding")
				timer.Reset(w.debounce)
				continue
			}
			logger.Warn("File watcher error", "error", err)

		case <-timer.C:
			w.build(ctx)
		}
	}
}

func (w *Watcher) build(ctx context.Context) {
	result, err := w.builder.Build(ctx, w.req)
	if err != nil && ctx.Err() != nil {
		return
	}
	w.onResult(result, err)
}

// targets returns the absolute paths of the input files.
func (w *Watcher) targets() (map[string]bool, error) {
	targets := make(map[string]bool, 2)
	for _, p := range []string{w.req.EmbeddingsPath, w.req.PromptsPath} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path: %w", err)
		}
		targets[abs] = true
	}
	return targets, nil
}

// IsRelevant reports whether event creates, writes or renames one of targets.
// Targets must be absolute, cleaned paths.
func IsRelevant(event fsnotify.Event, targets map[string]bool) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return targets[name]
}
