package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ocluk/caolan/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every pooled connection would otherwise get its own empty in-memory database
	db.SetMaxOpenConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "caolan-test.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}

	return newDB
}

// ============================================================================
// TEST ASSERTION HELPERS
// ============================================================================

// createTestDetail inserts a detail through the repository and fails the test on error
func createTestDetail(t *testing.T, repo *Repository, name, address, dob, telephone string) *models.Detail {
	t.Helper()
	detail, err := repo.CreateDetail(context.Background(), name, address, dob, telephone)
	if err != nil {
		t.Fatalf("Failed to create detail %q: %v", name, err)
	}
	return detail
}

// assertDetailEquals compares every field of two details
func assertDetailEquals(t *testing.T, got, want *models.Detail) {
	t.Helper()
	if got == nil {
		t.Fatalf("Expected detail %+v, got nil", want)
	}
	if *got != *want {
		t.Errorf("Detail = %+v, want %+v", *got, *want)
	}
}
