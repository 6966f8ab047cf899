package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	storage := NewFileStorage(path)

	loaded, err := storage.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if !loaded.Empty() {
		t.Fatalf("expected empty state, got %#v", loaded)
	}

	state := State{AccessToken: "acc", RefreshToken: "ref", User: []byte(`{"id":"u1"}`)}
	if err := storage.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat state file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}

	loaded, err = storage.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.AccessToken != "acc" || loaded.RefreshToken != "ref" {
		t.Fatalf("unexpected state %#v", loaded)
	}

	if err := storage.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	loaded, err = storage.Load()
	if err != nil {
		t.Fatalf("Load after clear: %v", err)
	}
	if !loaded.Empty() {
		t.Fatalf("expected empty state after clear, got %#v", loaded)
	}
}

func TestFileStorageClearMissingFile(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "absent.json"))
	if err := storage.Clear(); err != nil {
		t.Fatalf("Clear of missing file should succeed: %v", err)
	}
}
