package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"streamsort/internal/queue"
	"streamsort/internal/storage"
)

func TestTextStoreSaveThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.txt")
	store := storage.NewTextStore(path, false)

	shows := []queue.Show{
		{Title: "The Wire", Genre: "Crime", Episodes: 60, Rating: 5},
		{Title: "Fleabag", Genre: "Comedy", Episodes: 12, Rating: 4.7},
	}
	if err := store.Save(ctx, shows); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	result, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if result.Missing || result.Unreadable || result.Skipped != 0 {
		t.Fatalf("unexpected load flags: %+v", result)
	}
	if diff := cmp.Diff(shows, result.Shows); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if result.Loaded() != 2 {
		t.Fatalf("Loaded() = %d, want 2", result.Loaded())
	}
}

func TestTextStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.txt")
	store := storage.NewTextStore(path, false)

	if err := store.Save(ctx, []queue.Show{
		{Title: "One", Episodes: 1, Rating: 1},
		{Title: "Two", Episodes: 2, Rating: 2},
	}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save(ctx, []queue.Show{{Title: "Three", Episodes: 3, Rating: 3}}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read queue file: %v", err)
	}
	if string(data) != "Three||3|3\n" {
		t.Fatalf("expected file to be overwritten, got %q", data)
	}
}

func TestTextStoreSaveEmptyQueueTruncates(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.txt")
	if err := os.WriteFile(path, []byte("Old|x|1|1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := storage.NewTextStore(path, false).Save(ctx, nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
}

func TestTextStoreLoadSkipsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.txt")
	content := "Severance|Drama|19|4.8\nBroken|Drama|lots|4.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := storage.NewTextStore(path, false).Load(context.Background())
	if err != nil {
		t.Fatalf("Load should not fail on malformed lines: %v", err)
	}
	if result.Loaded() != 1 {
		t.Fatalf("Loaded() = %d, want 1", result.Loaded())
	}
	if result.Skipped != 1 {
		t.Fatalf("Skipped = %d, want 1", result.Skipped)
	}
	if result.Shows[0].Title != "Severance" {
		t.Fatalf("unexpected show: %+v", result.Shows[0])
	}
}

func TestTextStoreLoadMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	result, err := storage.NewTextStore(path, false).Load(context.Background())
	if err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}
	if !result.Missing || result.Loaded() != 0 {
		t.Fatalf("expected empty missing result, got %+v", result)
	}
	if result.Shows == nil {
		t.Fatal("expected non-nil empty slice")
	}
}

func TestTextStoreLoadUnreadableIsEmpty(t *testing.T) {
	dir := t.TempDir()
	// A directory opens on Linux but fails on read.
	result, err := storage.NewTextStore(dir, false).Load(context.Background())
	if err != nil {
		t.Fatalf("Load of unreadable source returned error: %v", err)
	}
	if !result.Unreadable || result.Loaded() != 0 {
		t.Fatalf("expected empty unreadable result, got %+v", result)
	}
}

func TestTextStoreSaveUnwritableReturnsIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "queue.txt")
	err := storage.NewTextStore(path, false).Save(context.Background(), []queue.Show{{Title: "A", Episodes: 1, Rating: 1}})

	var ioErr *storage.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Path != path || ioErr.Op != "save" {
		t.Fatalf("unexpected IOError: %+v", ioErr)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected IOError to unwrap to ErrNotExist, got %v", err)
	}
	if queue.Kind(err) != queue.KindIO {
		t.Fatalf("Kind = %q, want %q", queue.Kind(err), queue.KindIO)
	}
}

func TestTextStoreBackupKeepsPreviousFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "queue.txt")
	store := storage.NewTextStore(path, true)

	if err := store.Save(ctx, []queue.Show{{Title: "First", Episodes: 1, Rating: 1}}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".bak"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no backup before a previous file existed, got %v", err)
	}
	if err := store.Save(ctx, []queue.Show{{Title: "Second", Episodes: 2, Rating: 2}}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	backup, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != "First||1|1\n" {
		t.Fatalf("unexpected backup content: %q", backup)
	}
}

func TestTextStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := storage.NewTextStore(filepath.Join(t.TempDir(), "queue.txt"), false)
	if err := store.Save(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Save error = %v, want context.Canceled", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load error = %v, want context.Canceled", err)
	}
}
