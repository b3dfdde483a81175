package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ocluk/caolan/internal/store"
)

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "details.db")

	app, err := New(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.Details == nil {
		t.Fatal("Expected Details to be initialized")
	}

	details, err := app.Details.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll on fresh app failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("Expected empty store, got %d details", len(details))
	}
}

func TestNewStorageUnavailable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	_, err := New(context.Background(), filepath.Join(blocker, "details.db"))
	if !errors.Is(err, store.ErrStorageUnavailable) {
		t.Errorf("New error = %v, want ErrStorageUnavailable", err)
	}
}

func TestClose(t *testing.T) {
	app, err := New(context.Background(), filepath.Join(t.TempDir(), "details.db"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := app.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("Second Close() returned error: %v", err)
	}

	// The store is closed now
	if _, err := app.Details.FetchAll(context.Background()); !errors.Is(err, store.ErrStoreClosed) {
		t.Errorf("FetchAll after Close error = %v, want ErrStoreClosed", err)
	}
}

func TestNewWithRecordsDoesNotOwnStore(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "details.db"))
	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	app := NewWithRecords(s, WithLogger(slog.Default()))
	if err := app.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}

	if !s.IsOpen() {
		t.Error("App.Close closed a store it does not own")
	}
	if app.Logger() == nil {
		t.Error("Expected a logger")
	}
}
