package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce lets editors finish their write/rename sequence
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a config file on change and publishes each valid result.
// The parent directory is watched so atomic-rename saves are seen
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	updates  chan *Config
	debounce time.Duration
	override func(*Config) // Reapplied to every reload, e.g. command line flags
	logger   *zap.Logger
}

// NewWatcher starts watching the directory holding path
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     abs,
		watcher:  fw,
		updates:  make(chan *Config, 1),
		debounce: DefaultDebounce,
		logger:   logger.Named("config"),
	}, nil
}

// SetOverride registers fn to adjust each reloaded config before validation.
// Call before Run
func (w *Watcher) SetOverride(fn func(*Config)) {
	w.override = fn
}

// Updates delivers reloaded configs. Only the latest pending one is kept
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Run processes file events until ctx ends, then closes the watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("config file event", zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := load(w.path, false)
	if errors.Is(err, fs.ErrNotExist) {
		// Mid-save rename; the Create that follows triggers another reload
		w.logger.Debug("config file missing, reload skipped")
		return
	}
	if err != nil {
		w.logger.Warn("config reload rejected", zap.Error(err))
		return
	}
	if w.override != nil {
		w.override(cfg)
		if err := cfg.Validate(); err != nil {
			w.logger.Warn("config reload rejected", zap.Error(err))
			return
		}
	}
	// Drop a stale pending config
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.Info("config reloaded", zap.String("path", w.path))
}
