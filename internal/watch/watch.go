// Package watch reports debounced changes to a single file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hyprpal/kbgen/internal/util"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher calls OnChange after Path has been written, created or renamed
// and then left alone for Debounce.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Logger   *util.Logger
	OnChange func(ctx context.Context) error
}

// Run watches until ctx is cancelled and returns ctx.Err(). Errors from
// OnChange are logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	if w.OnChange == nil {
		return fmt.Errorf("watch %s: no change handler", w.Path)
	}
	logger := w.Logger
	if logger == nil {
		logger = util.NewNopLogger()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.Path, err)
	}
	target = filepath.Clean(target)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	// karabiner.json is replaced on save; watch its directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	logger.Debugf("watching %s", target)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return ctx.Err()
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Tracef("%s: %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerCh = timer.C
			} else {
				timer.Reset(debounce)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil
			if err := w.OnChange(ctx); err != nil {
				logger.Errorf("handle change to %s: %v", target, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return ctx.Err()
			}
			logger.Warnf("watcher error: %v", err)
		}
	}
}
