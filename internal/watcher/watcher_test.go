package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/seojun-park/slidevoice/internal/logger"
)

func TestIsScriptFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"txt", "talk.txt", true},
		{"md", "talk.md", true},
		{"uppercase", "TALK.TXT", true},
		{"mp3", "slide_01.mp3", false},
		{"hidden temp", "talk.txt.swp", false},
		{"no extension", "talk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isScriptFile(tt.path); got != tt.want {
				t.Errorf("isScriptFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcherInvalidDir(t *testing.T) {
	log := logger.NewWithWriter("error", os.Stderr)
	handler := func(ctx context.Context, path string) error { return nil }

	if _, err := New("no/such/dir", handler, log, 2); err == nil {
		t.Error("New() should fail for a missing directory")
	}
}

func TestWatcherHandlesNewScript(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewWithWriter("error", os.Stderr)

	var mu sync.Mutex
	var handled []string
	done := make(chan struct{}, 1)

	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		handled = append(handled, path)
		mu.Unlock()
		done <- struct{}{}
		return nil
	}

	w, err := New(dir, handler, log, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	// Give the watcher a moment to be ready, then drop a script
	time.Sleep(100 * time.Millisecond)
	scriptPath := filepath.Join(dir, "talk.txt")
	if err := os.WriteFile(scriptPath, []byte("Slide 1: Hi\ntext\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not invoked for new script")
	}

	mu.Lock()
	got := append([]string(nil), handled...)
	mu.Unlock()
	if len(got) != 1 || got[0] != scriptPath {
		t.Errorf("handled = %v, want [%s]", got, scriptPath)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != context.Canceled {
			t.Errorf("Start() returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
