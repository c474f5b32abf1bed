package drift

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches bursts of filesystem events (editor saves, git checkouts).
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs the drift check whenever the source file or an asset
// directory changes.
type Watcher struct {
	service  *Service
	root     string
	out      io.Writer
	logger   *zap.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher for the repository at root. The service must
// read from the same root.
func NewWatcher(service *Service, root string, out io.Writer, logger *zap.Logger) *Watcher {
	return &Watcher{
		service:  service,
		root:     root,
		out:      out,
		logger:   logger,
		debounce: DefaultDebounce,
	}
}

// SetDebounce overrides the delay between the last event and the re-run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Dirs returns the directories watched, relative to the root.
func (w *Watcher) Dirs() []string {
	layout := w.service.Layout()
	dirs := []string{filepath.Dir(layout.Source)}
	for _, c := range layout.Categories {
		dirs = append(dirs, c.Dir)
	}
	return dirs
}

// Run checks once, then keeps checking after every relevant change until ctx
// is cancelled. Check errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// The root is watched so layout directories created later get picked up.
	if err := watcher.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}
	for _, dir := range w.Dirs() {
		full := filepath.Join(w.root, dir)
		if err := watcher.Add(full); err != nil {
			// Directory may not exist yet; it contributes no assets until created.
			w.logger.Warn("Directory not watched yet", zap.String("dir", full), zap.Error(err))
			continue
		}
		w.logger.Info("Watching directory", zap.String("dir", full))
	}

	w.check(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) && w.layoutDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					w.logger.Warn("Failed to watch directory", zap.String("dir", event.Name), zap.Error(err))
				} else {
					w.logger.Info("Watching directory", zap.String("dir", event.Name))
				}
			}
			w.logger.Debug("Change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.check(ctx)
		}
	}
}

// relevant filters out chmod-only events, hidden files and files that are
// neither the source file nor an asset.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Clean(event.Name)
	if strings.HasPrefix(filepath.Base(name), ".") {
		return false
	}

	layout := w.service.Layout()
	if name == filepath.Join(w.root, layout.Source) || w.layoutDir(name) {
		return true
	}
	for _, c := range layout.Categories {
		if filepath.Dir(name) == filepath.Join(w.root, c.Dir) {
			return true
		}
	}
	return false
}

// layoutDir reports whether name is one of the watched layout directories.
func (w *Watcher) layoutDir(name string) bool {
	name = filepath.Clean(name)
	for _, dir := range w.Dirs() {
		if name == filepath.Join(w.root, dir) {
			return true
		}
	}
	return false
}

func (w *Watcher) check(ctx context.Context) {
	report, err := w.service.Check(ctx)
	if err != nil {
		w.logger.Error("Drift check failed", zap.Error(err))
		return
	}
	if err := WriteDiagnostics(w.out, report); err != nil {
		w.logger.Error("Failed to write diagnostics", zap.Error(err))
	}
}
