package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/fsnotify/fsnotify"
)

// Callback is called with the new store after every successful reload.
type Callback func(s *store.Store)

// Watcher reloads a store file on change.
type Watcher struct {
	cfg       Config
	path      string
	holder    *store.Holder
	callbacks []Callback

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a watcher for cfg.Path that publishes reloads to holder.
func New(cfg Config, holder *store.Holder, callbacks ...Callback) (*Watcher, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if holder == nil {
		return nil, ErrNilHolder
	}

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	return &Watcher{
		cfg:       cfg,
		path:      path,
		holder:    holder,
		callbacks: callbacks,
	}, nil
}

// Start begins watching. It returns once the watch is registered; events
// are handled on a background goroutine until Stop is called or ctx ends.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}

	dir := filepath.Dir(w.path)

	err = fsw.Add(dir)
	if err != nil {
		_ = fsw.Close()

		return fmt.Errorf("watching %s: %w", dir, err)
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.loop(loopCtx, fsw, w.done)

	slog.Info("watching store file", slog.String("path", w.path), slog.Duration("debounce", w.cfg.Debounce))

	return nil
}

// Stop ends the watch and waits for the background goroutine to exit.
func (w *Watcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stopping watcher: %w", ctx.Err())
	}
}

// Reload reads the file now. On success the holder is updated and the
// callbacks run. On failure the current store is kept and the error returned.
func (w *Watcher) Reload() error {
	s, err := store.New(w.path)
	if err != nil {
		slog.Warn("store reload failed, keeping previous version",
			slog.String("path", w.path), slog.String("error", err.Error()))

		return err
	}

	w.holder.Swap(s)

	slog.Info("store reloaded", slog.String("path", w.path), slog.Int("sections", len(s.Sections())))

	for _, cb := range w.callbacks {
		cb(s)
	}

	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	defer func() { _ = fsw.Close() }()

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
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			if !w.relevant(event) {
				continue
			}

			slog.Debug("store file changed", slog.String("path", w.path), slog.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
			} else {
				timer.Reset(w.cfg.Debounce)
			}

			fire = timer.C
		case <-fire:
			fire = nil

			_ = w.Reload()
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			slog.Warn("file watcher error", slog.String("path", w.path), slog.String("error", err.Error()))
		}
	}
}

// relevant reports whether event may have changed the watched file's contents.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
