// Package watch re-runs a handler whenever one file changes on disk.
//
// The parent directory is watched rather than the file itself so atomic
// saves (write to a temporary file, rename over the target) are seen.
// Bursts of events are collapsed into one call after a quiet period.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period used when none is given.
const DefaultDebounce = 200 * time.Millisecond

// ErrNilHandler is returned by New when no handler is supplied.
var ErrNilHandler = errors.New("watch: handler is nil")

// Handler is called with the watched path. Errors are logged and watching
// continues.
type Handler func(ctx context.Context, path string) error

// Watcher follows a single file.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
	logger   *zap.Logger
	fw       *fsnotify.Watcher
}

// New prepares a watcher for path. Nothing is observed until Run.
func New(path string, debounce time.Duration, h Handler, logger *zap.Logger) (*Watcher, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	return &Watcher{path: abs, debounce: debounce, handler: h, logger: logger, fw: fw}, nil
}

// Run calls the handler once, then again after every settled change, until
// ctx is done. The watcher cannot be reused after Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()

	if err := w.fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	w.fire(ctx)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			w.logger.Debug("file event", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			w.fire(ctx)
		}
	}
}

func (w *Watcher) fire(ctx context.Context) {
	if err := w.handler(ctx, w.path); err != nil {
		w.logger.Error("handler failed", zap.String("path", w.path), zap.Error(err))
	}
}
