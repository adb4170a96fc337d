package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// debounce window for editors that write config files in several steps
const reloadDebounce = 200 * time.Millisecond

// Watcher watches the config file and republishes the view tunables on
// change. Only ViewConfig is hot-reloadable; everything else requires a
// restart.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	mu       sync.RWMutex
	current  ViewConfig
	onChange []func(ViewConfig)
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher seeded with the current view config
func NewWatcher(path string, initial ViewConfig, logger *zap.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fsWatcher,
		logger:  logger,
		current: initial,
		stopCh:  make(chan struct{}),
	}

	// Watch the directory, not the file: editors replace files on save.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

// Current returns the latest view config
func (w *Watcher) Current() ViewConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a callback invoked after every successful reload
func (w *Watcher) OnChange(fn func(ViewConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Stop ends watching
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
}

func (w *Watcher) run() {
	var timer *time.Timer
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload read failed", zap.Error(err))
		return
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		w.logger.Warn("config reload parse failed", zap.Error(err))
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Warn("config reload rejected", zap.Error(err))
		return
	}

	w.mu.Lock()
	w.current = cfg.View
	callbacks := make([]func(ViewConfig), len(w.onChange))
	copy(callbacks, w.onChange)
	w.mu.Unlock()

	w.logger.Info("view config reloaded",
		zap.Int("defaultPageSize", cfg.View.DefaultPageSize),
	)
	for _, fn := range callbacks {
		fn(cfg.View)
	}
}
