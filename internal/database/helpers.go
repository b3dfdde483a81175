package database

import (
	"database/sql"
	"fmt"
)

// rowsAffected reports whether a write statement touched at least one row.
func rowsAffected(result sql.Result, op string, id int64) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected by %s of detail %d: %w", op, id, err)
	}
	return n > 0, nil
}
