package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherEmitsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.json")
	if err := os.WriteFile(path, []byte(`{"trace_id":"t1"}`), 0644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher([]string{path})
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}
	defer fw.Close()

	if err := os.WriteFile(path, []byte(`{"trace_id":"t2"}`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-fw.Events():
		if ev.Path != path {
			t.Errorf("event path = %q, want %q", ev.Path, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event within 3s")
	}
}

func TestFileWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	ignored := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(ignored, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher([]string{dir})
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}
	defer fw.Close()

	if err := os.WriteFile(ignored, []byte("y"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-fw.Events():
		t.Errorf("unexpected event for %q", ev.Path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestFileWatcherMissingPath(t *testing.T) {
	_, err := NewFileWatcher([]string{filepath.Join(t.TempDir(), "absent.json")})
	if err == nil {
		t.Error("expected error for missing path")
	}
}
