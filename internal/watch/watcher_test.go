// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// startWatcher runs w in the background and returns a stop function that
// cancels it and checks its result.
func startWatcher(t *testing.T, w *Watcher) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	return func() {
		t.Helper()

		cancel()
		select {
		case err := <-errCh:
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Run() did not return after cancel")
		}
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWatcherDebounce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var (
		mu        sync.Mutex
		calls     int
		collected []string
	)
	done := make(chan struct{}, 1)

	w, err := New(Config{
		BaseDir:  dir,
		Debounce: 100 * time.Millisecond,
		Logger:   quietLogger(),
		OnChange: func(_ context.Context, changed []string) error {
			mu.Lock()
			defer mu.Unlock()
			calls++
			collected = append(collected, changed...)
			select {
			case done <- struct{}{}:
			default:
			}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)

	for _, name := range []string{"mod.json", "jokers.dsl", "main.lua"} {
		writeFile(t, filepath.Join(dir, name), "x")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
	time.Sleep(200 * time.Millisecond)
	stop()

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("expected 1 debounced callback, got %d", calls)
	}
	for _, want := range []string{"jokers.dsl", "main.lua", "mod.json"} {
		if !slices.Contains(collected, want) {
			t.Errorf("expected %q in changed files, got %v", want, collected)
		}
	}
}

func TestWatcherModPatterns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fired := make(chan []string, 10)

	w, err := New(Config{
		BaseDir:  dir,
		Debounce: 50 * time.Millisecond,
		Logger:   quietLogger(),
		OnChange: func(_ context.Context, changed []string) error {
			fired <- changed
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)
	defer stop()

	writeFile(t, filepath.Join(dir, "notes.md"), "not a mod file")
	time.Sleep(200 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "tarots.json"), "[]")

	select {
	case changed := <-fired:
		if slices.Contains(changed, "notes.md") {
			t.Errorf("notes.md should not match mod patterns, got %v", changed)
		}
		if !slices.Contains(changed, "tarots.json") {
			t.Errorf("expected tarots.json in changed set, got %v", changed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func TestWatcherNewDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fired := make(chan []string, 10)

	w, err := New(Config{
		BaseDir:  dir,
		Debounce: 50 * time.Millisecond,
		Logger:   quietLogger(),
		OnChange: func(_ context.Context, changed []string) error {
			fired <- changed
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)
	defer stop()

	content := filepath.Join(dir, "content")
	if err := os.Mkdir(content, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(content, "planets.json"), "[]")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case changed := <-fired:
			if slices.Contains(changed, "content/planets.json") {
				return
			}
		case <-deadline:
			t.Fatal("expected a change in the new directory to be reported")
		}
	}
}

func TestWatcherIgnorePatterns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fired := make(chan []string, 10)

	w, err := New(Config{
		BaseDir:  dir,
		Ignore:   []string{"**/build/**", "**/*.tmp.json"},
		Debounce: 50 * time.Millisecond,
		Logger:   quietLogger(),
		OnChange: func(_ context.Context, changed []string) error {
			fired <- changed
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)
	defer stop()

	writeFile(t, filepath.Join(dir, "scratch.tmp.json"), "{}")
	time.Sleep(200 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "mod.json"), "{}")

	select {
	case changed := <-fired:
		if !slices.Equal(changed, []string{"mod.json"}) {
			t.Errorf("expected only mod.json, got %v", changed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func TestWatcherInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{BaseDir: t.TempDir(), Patterns: []string{"[unclosed"}, Logger: quietLogger()}); err == nil {
		t.Error("expected an error for an invalid watch pattern")
	}
	if _, err := New(Config{BaseDir: t.TempDir(), Ignore: []string{"{a,b"}, Logger: quietLogger()}); err == nil {
		t.Error("expected an error for an invalid ignore pattern")
	}
}

func TestWatcherDoubleRun(t *testing.T) {
	t.Parallel()

	w, err := New(Config{BaseDir: t.TempDir(), Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)
	defer stop()

	time.Sleep(20 * time.Millisecond)
	if err := w.Run(context.Background()); err == nil {
		t.Error("expected the second Run to fail")
	}
}

func TestDefaultIgnores(t *testing.T) {
	t.Parallel()

	got := DefaultIgnores()
	if !slices.Contains(got, "**/.git/**") {
		t.Errorf("expected .git to be ignored by default, got %v", got)
	}
	got[0] = "changed"
	if DefaultIgnores()[0] == "changed" {
		t.Error("DefaultIgnores() should return a copy")
	}
}

func TestMatchAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  string
		want bool
	}{
		{"mod.json", true},
		{"content/jokers.dsl", true},
		{"scripts/main.lua", true},
		{"bin/mod.wasm", true},
		{"README.md", false},
		{filepath.Join("content", "tarots.json"), true},
	}

	for _, tt := range tests {
		if got := matchAny(ModPatterns, tt.rel); got != tt.want {
			t.Errorf("matchAny(ModPatterns, %q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestIsFatalFsnotifyError(t *testing.T) {
	t.Parallel()

	for _, target := range fatalErrnos {
		if !isFatalFsnotifyError(fmt.Errorf("fsnotify: %w", target)) {
			t.Errorf("expected wrapped %v to be fatal", target)
		}
	}
	if isFatalFsnotifyError(errors.New("something went wrong")) {
		t.Error("generic errors should not be fatal")
	}
	if isFatalFsnotifyError(syscall.EPERM) {
		t.Error("EPERM should not be fatal")
	}
}
