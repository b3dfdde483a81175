// Package store owns the lifecycle of the details database and exposes
// record-level CRUD to the list and edit screens.
//
// A RecordStore is meant to be driven by one caller at a time (the TUI update
// loop or a single CLI command). Calls are serialized with a mutex so a stray
// second goroutine cannot observe a half-closed handle.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ocluk/caolan/internal/database"
	"github.com/ocluk/caolan/internal/models"
)

// RecordStore is the single owner of the Details table.
type RecordStore struct {
	path   string
	logger *slog.Logger

	mu   sync.Mutex
	db   *sql.DB
	repo database.DataStore
}

// Option configures a RecordStore
type Option func(*RecordStore)

// WithLogger sets the logger used by the store
func WithLogger(logger *slog.Logger) Option {
	return func(s *RecordStore) {
		s.logger = logger
	}
}

// New creates a closed RecordStore for the database file at path.
// Open must be called before any record operation.
func New(path string, opts ...Option) *RecordStore {
	s := &RecordStore{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "store")
	return s
}

// Path returns the database file path
func (s *RecordStore) Path() string {
	return s.path
}

// Open acquires the database handle, creating the schema if absent.
// Opening an already open store does nothing.
func (s *RecordStore) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := database.InitDB(ctx, s.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, s.path, err)
	}

	s.db = db
	s.repo = database.NewRepository(db)
	s.logger.Debug("record store opened", "path", s.path)
	return nil
}

// Close releases the database handle. Safe to call when never opened and
// safe to call more than once.
func (s *RecordStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.repo = nil
	if err != nil {
		return fmt.Errorf("failed to close record store: %w", err)
	}
	s.logger.Debug("record store closed", "path", s.path)
	return nil
}

// IsOpen reports whether the store currently holds a handle
func (s *RecordStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db != nil
}

// Create inserts a new record and returns its ID.
// On failure the returned ID is InvalidID.
func (s *RecordStore) Create(ctx context.Context, name, address, dob, telephone string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		return InvalidID, ErrStoreClosed
	}

	detail, err := s.repo.CreateDetail(ctx, name, address, dob, telephone)
	if err != nil {
		s.logger.Error("failed to create detail", "error", err)
		return InvalidID, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	s.logger.Debug("detail created", "id", detail.ID)
	return detail.ID, nil
}

// FetchAll returns every record in storage order. Each call reads a fresh view.
func (s *RecordStore) FetchAll(ctx context.Context) ([]*models.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		return nil, ErrStoreClosed
	}

	details, err := s.repo.GetAllDetails(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetched details", "count", len(details))
	return details, nil
}

// FetchOne returns the record with the given ID or models.ErrNotFound.
func (s *RecordStore) FetchOne(ctx context.Context, id int64) (*models.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		return nil, ErrStoreClosed
	}
	return s.repo.GetDetailByID(ctx, id)
}

// Update replaces all four fields of the record at id.
// Returns false with a nil error when no record has that ID.
func (s *RecordStore) Update(ctx context.Context, id int64, name, address, dob, telephone string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		return false, ErrStoreClosed
	}

	ok, err := s.repo.UpdateDetail(ctx, id, name, address, dob, telephone)
	if err != nil {
		s.logger.Error("failed to update detail", "id", id, "error", err)
		return false, err
	}
	if !ok {
		s.logger.Debug("update matched no detail", "id", id)
	}
	return ok, nil
}

// Delete removes the record at id.
// Returns false with a nil error when no record has that ID.
func (s *RecordStore) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		return false, ErrStoreClosed
	}

	ok, err := s.repo.DeleteDetail(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete detail", "id", id, "error", err)
		return false, err
	}
	if !ok {
		s.logger.Debug("delete matched no detail", "id", id)
	}
	return ok, nil
}
