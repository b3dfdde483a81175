// Package testutil holds helpers shared by tests that need a real record store.
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ocluk/caolan/internal/app"
	"github.com/ocluk/caolan/internal/database"
	"github.com/ocluk/caolan/internal/models"
	"github.com/ocluk/caolan/internal/store"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestStore opens a record store on a fresh database file in a temp dir.
// The store is closed when the test ends.
func SetupTestStore(t *testing.T) *store.RecordStore {
	t.Helper()

	s := store.New(filepath.Join(t.TempDir(), database.DatabaseName))
	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// SetupTestApp returns an App around a fresh test store.
func SetupTestApp(t *testing.T) (*store.RecordStore, *app.App) {
	t.Helper()
	s := SetupTestStore(t)
	return s, app.NewWithRecords(s)
}

// CreateTestDetail inserts a record and returns its ID
func CreateTestDetail(t *testing.T, records app.Records, name, address, dob, telephone string) int64 {
	t.Helper()

	id, err := records.Create(context.Background(), name, address, dob, telephone)
	if err != nil {
		t.Fatalf("Failed to create test detail %q: %v", name, err)
	}
	return id
}

// FetchTestDetail loads a record, failing the test if it cannot be read
func FetchTestDetail(t *testing.T, records app.Records, id int64) *models.Detail {
	t.Helper()

	d, err := records.FetchOne(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to fetch detail %d: %v", id, err)
	}
	return d
}

// CountDetails returns how many records the store holds
func CountDetails(t *testing.T, records app.Records) int {
	t.Helper()

	details, err := records.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to fetch details: %v", err)
	}
	return len(details)
}
