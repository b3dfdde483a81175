// Package logging routes slog and the standard logger into a log file so the
// terminal UI is never drawn over.
package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the log file written inside the log directory
const FileName = "caolan.log"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultDir returns ~/.caolan/logs
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".caolan", "logs"), nil
}

// Init initializes the logging system, writing logs to dir/caolan.log.
// Uses text format for human readability.
func Init(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(dir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}
