package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_RefusesExistingFileWithoutMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if _, err := New(Options{File: path}); err == nil {
		t.Fatal("expected error for existing file without --append/--overwrite")
	}
}

func TestNew_AppendKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("old line\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	log, err := New(Options{File: path, Append: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("appended_message")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "old line") || !strings.Contains(s, "appended_message") {
		t.Fatalf("append did not preserve content: %q", s)
	}
}

func TestNew_OverwriteDropsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("old line\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	log, err := New(Options{File: path, Overwrite: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("fresh_message")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "old line") {
		t.Fatalf("overwrite kept old content: %q", s)
	}
	if !strings.Contains(s, "fresh_message") {
		t.Fatalf("new content missing: %q", s)
	}
}

func TestNew_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "run.log")
	log, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("hello")
	_ = log.Sync()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}

func TestNew_ConsoleOnly(t *testing.T) {
	log, err := New(Options{Debug: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("debug_visible")
	_ = log.Sync()
}
