// Package app wires the record store into the screens and commands that use it.
package app

import (
	"context"
	"log/slog"

	"github.com/ocluk/caolan/internal/models"
	"github.com/ocluk/caolan/internal/store"
)

// Records is the record-level API the list and edit screens depend on.
// *store.RecordStore implements it.
type Records interface {
	Create(ctx context.Context, name, address, dob, telephone string) (int64, error)
	FetchAll(ctx context.Context) ([]*models.Detail, error)
	FetchOne(ctx context.Context, id int64) (*models.Detail, error)
	Update(ctx context.Context, id int64, name, address, dob, telephone string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Compile-time verification that *store.RecordStore implements Records
var _ Records = (*store.RecordStore)(nil)

// App holds the single record store instance shared by every screen.
// This is the main application container that manages its lifecycle.
type App struct {
	// Details is the record store every screen and command talks to
	Details Records

	closer func() error
	logger *slog.Logger
}

// New opens the record store at dbPath and returns an App owning it.
func New(ctx context.Context, dbPath string, opts ...Option) (*App, error) {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	recordStore := store.New(dbPath, store.WithLogger(cfg.logger))
	if err := recordStore.Open(ctx); err != nil {
		return nil, err
	}

	return &App{
		Details: recordStore,
		closer:  recordStore.Close,
		logger:  cfg.logger,
	}, nil
}

// NewWithRecords creates an App around an already prepared Records implementation.
// The caller keeps ownership of its lifecycle.
func NewWithRecords(records Records, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &App{
		Details: records,
		logger:  cfg.logger,
	}
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}

// Close releases the record store if this App opened it.
// Calling Close more than once is safe.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}
