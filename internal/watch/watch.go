// ABOUTME: fsnotify watcher on intent directories for explicit engine reloads
// ABOUTME: Debounces bursts of declaration-file events into one onChange call

package watch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mauromedda/avi-go/internal/intent"
	avilog "github.com/mauromedda/avi-go/internal/log"
)

// ErrAlreadyStarted is returned by a second Start call.
var ErrAlreadyStarted = errors.New("watcher already started")

const defaultDebounce = 250 * time.Millisecond

// Watcher calls onChange after intent declaration files under dirs change.
type Watcher struct {
	dirs     []string
	onChange func()
	debounce time.Duration

	mu        sync.Mutex
	fsw       *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a watcher over dirs. It does nothing until Start.
func New(dirs []string, onChange func()) *Watcher {
	return &Watcher{
		dirs:     append([]string(nil), dirs...),
		onChange: onChange,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}
}

// SetDebounce overrides the default debounce window (250ms). Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Start begins watching. The watcher stops when ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw != nil {
		return ErrAlreadyStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	w.fsw = fsw

	go w.loop(ctx, fsw, w.debounce)
	return nil
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.fsw != nil {
			err = w.fsw.Close()
		}
	})
	return err
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, debounce time.Duration) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return
		case <-w.done:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			avilog.Debug("watch: %s %s", ev.Op, ev.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			avilog.Warn("watch: %v", err)
		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}

// relevant filters out events that cannot change the loaded intents.
func relevant(ev fsnotify.Event) bool {
	if !intent.IsIntentFile(ev.Name) {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
