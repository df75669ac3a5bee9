package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, TuningFile)
	if err := os.WriteFile(target, []byte("rules: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != TuningFile {
			t.Fatalf("expected %s, got %s", TuningFile, name)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestLoadPrefersDiskOverride(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	defer func() { Dir = old }()

	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("player: {speed: 3}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.Player.Speed != 3 {
		t.Fatalf("expected disk override speed 3, got %v", spec.Player.Speed)
	}

	if _, err := LoadTuning(); err == nil {
		t.Fatalf("expected partial override to fail validation")
	}
}
