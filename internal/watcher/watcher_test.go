package watcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/caption-text/internal/logger"
)

func startWatcher(t *testing.T, root string) <-chan string {
	t.Helper()

	calls := make(chan string, 8)
	handler := func(ctx context.Context, filePath string) error {
		calls <- filePath
		return nil
	}

	w, err := New(Options{
		Root:       root,
		OutputDir:  filepath.Join(root, "Subtitles"),
		Extensions: []string{".srt", ".vtt"},
		Debounce:   50 * time.Millisecond,
	}, handler, logger.NewWithWriter("error", io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Start(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		w.Stop()
	})
	return calls
}

func TestWatcherTriggersOnSubtitle(t *testing.T) {
	root := t.TempDir()
	calls := startWatcher(t, root)

	path := filepath.Join(root, "1. Welcome.srt")
	if err := os.WriteFile(path, []byte("Hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-calls:
		if got != path {
			t.Errorf("handler path = %q, want %q", got, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("handler was not called")
	}
}

func TestWatcherDebouncesBurst(t *testing.T) {
	root := t.TempDir()
	calls := startWatcher(t, root)

	for _, name := range []string{"a.srt", "b.srt", "c.vtt"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("handler was not called")
	}

	select {
	case got := <-calls:
		t.Errorf("unexpected second call for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Subtitles"), 0755); err != nil {
		t.Fatal(err)
	}
	calls := startWatcher(t, root)

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "Subtitles", "a.srt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-calls:
		t.Errorf("unexpected call for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}
