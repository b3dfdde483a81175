package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SchemaVersion is the version stamped into PRAGMA user_version on create
const SchemaVersion = 1

// Table and column names of the details table
const (
	TableDetails    = "Details"
	ColumnID        = "_id"
	ColumnName      = "Name"
	ColumnAddress   = "Address"
	ColumnDOB       = "DOB"
	ColumnTelephone = "Telephone"
)

const createDetailsTable = `
	CREATE TABLE IF NOT EXISTS Details (
		_id INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL,
		Address TEXT NOT NULL,
		DOB TEXT NOT NULL,
		Telephone TEXT NOT NULL
	)
`

// runMigrations creates the details table if needed and stamps the schema version.
// There is no upgrade path: a database at an older version is left as it is.
func runMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if _, err := db.ExecContext(ctx, createDetailsTable); err != nil {
		return fmt.Errorf("failed to create %s table: %w", TableDetails, err)
	}

	switch {
	case version == 0:
		// PRAGMA does not accept bound parameters
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	case version != SchemaVersion:
		onUpgrade(version, SchemaVersion)
	}

	return nil
}

// onUpgrade is the schema upgrade hook. It intentionally changes nothing.
func onUpgrade(oldVersion, newVersion int) {
	slog.Warn("database schema version differs, leaving schema unchanged",
		"old_version", oldVersion,
		"new_version", newVersion,
	)
}
