package preset

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"go.uber.org/zap"

	tween "github.com/tphakala/go-tween"
)

// Library is a named set of presets that can be reloaded while in use.
// It is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	presets map[string]Preset
	logger  *zap.Logger
}

// NewLibrary returns an empty library. A nil logger disables logging.
func NewLibrary(logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{
		presets: make(map[string]Preset),
		logger:  logger,
	}
}

// Load replaces the library contents with the presets in path. On error
// the previous contents are kept.
func (l *Library) Load(path string) error {
	presets, err := LoadFile(path)
	if err != nil {
		return err
	}
	l.Replace(presets)
	l.logger.Info("presets loaded",
		zap.String("path", path),
		zap.Int("count", len(presets)))
	return nil
}

// Replace swaps in a new set of presets.
func (l *Library) Replace(presets map[string]Preset) {
	copied := make(map[string]Preset, len(presets))
	for name, p := range presets {
		copied[name] = p
	}

	l.mu.Lock()
	l.presets = copied
	l.mu.Unlock()
}

// Get returns the preset called name.
func (l *Library) Get(name string) (Preset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.presets[name]
	return p, ok
}

// Names returns the preset names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	l.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Interval starts a new interval for the preset called name.
func (l *Library) Interval(name string, tick func(easedT float64)) (*tween.Interval, error) {
	p, ok := l.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.Interval(tick), nil
}

// Watch loads path and reloads it whenever it, or a script next to it,
// changes. It blocks until ctx is cancelled. onReload, if not nil, is
// called after every reload attempt with its result; a failed reload keeps
// the previous presets.
func (l *Library) Watch(ctx context.Context, path string, onReload func(err error)) error {
	if err := l.Load(path); err != nil {
		return err
	}

	w, err := NewWatcher(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("preset: watch %s: %w", path, err)
	}
	defer func() { _ = w.Close() }()

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			if isSpecFile(name) && filepath.Clean(name) != target {
				continue
			}
			err := l.Load(path)
			if err != nil {
				l.logger.Warn("preset reload failed",
					zap.String("path", path),
					zap.String("changed", name),
					zap.Error(err))
			}
			if onReload != nil {
				onReload(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("preset watcher error", zap.Error(err))
		}
	}
}
