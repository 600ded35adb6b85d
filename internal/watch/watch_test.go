// ABOUTME: Tests for the intent directory watcher
// ABOUTME: Uses temp directories and short debounce windows

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcher_FiresOnIntentFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	changed := make(chan struct{}, 4)
	w := New([]string{dir}, func() { changed <- struct{}{} })
	w.SetDebounce(20 * time.Millisecond)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "greet.intent"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange not called")
	}
}

func TestWatcher_CloseDropsPendingChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	changed := make(chan struct{}, 4)
	w := New([]string{dir}, func() { changed <- struct{}{} })
	w.SetDebounce(300 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "greet.intent"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	cancel()
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case <-changed:
		t.Fatal("onChange called after Close")
	case <-time.After(600 * time.Millisecond):
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	t.Parallel()

	w := New([]string{t.TempDir()}, func() {})
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Close()
	if err := w.Start(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("err = %v; want ErrAlreadyStarted", err)
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	t.Parallel()

	w := New([]string{filepath.Join(t.TempDir(), "nope")}, func() {})
	if err := w.Start(context.Background()); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWatcher_CloseIdempotent(t *testing.T) {
	t.Parallel()

	w := New([]string{t.TempDir()}, func() {})
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestRelevant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "a.intent", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "a.yaml", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "a.json", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "a.yml", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "a.toml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "a.intent", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "a.swp", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := relevant(tt.ev); got != tt.want {
			t.Errorf("relevant(%v) = %v; want %v", tt.ev, got, tt.want)
		}
	}
}
