package store

import "errors"

// InvalidID is returned by Create when no row was inserted
const InvalidID int64 = -1

// Store errors
var (
	// ErrStorageUnavailable indicates the database file could not be opened or written
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrWriteFailed indicates an insert did not apply
	ErrWriteFailed = errors.New("write failed")

	// ErrStoreClosed indicates a record operation on a store that is not open
	ErrStoreClosed = errors.New("record store is closed")
)
