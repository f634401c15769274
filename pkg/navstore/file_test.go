package navstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()

	if err := store.Save(ctx, "main", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := store.Load(ctx, "main")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"v":1}` {
		t.Errorf("expected stored bytes back, got %q", data)
	}

	data, err = store.Load(ctx, "missing")
	if err != nil || data != nil {
		t.Errorf("expected (nil, nil) on miss, got (%v, %v)", data, err)
	}

	if err := store.Delete(ctx, "main"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	data, err = store.Load(ctx, "main")
	if err != nil || data != nil {
		t.Errorf("expected (nil, nil) after delete, got (%v, %v)", data, err)
	}

	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snapshots")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected directory created: %v", err)
	}
}

func TestFileStoreEscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()

	// Keys with path separators must not escape the root directory
	if err := store.Save(ctx, "a/b", []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].IsDir() {
		t.Errorf("expected a single escaped file in the root, got %v", entries)
	}

	data, err := store.Load(ctx, "a/b")
	if err != nil || string(data) != "x" {
		t.Errorf("expected escaped key round trip, got (%q, %v)", data, err)
	}
}

func TestFileStoreClosed(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	store.Close()

	if err := store.Save(ctx, "k", nil); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
	if _, err := store.Load(ctx, "k"); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
}
