package database

// DataStore defines the unified interface for all data operations needed by the TUI and CLI.
// Consumers that only read can depend on DetailReader instead.
type DataStore interface {
	DetailRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
