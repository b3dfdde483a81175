// Package launcher starts the terminal UI with logging, signals and the record store set up.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ocluk/caolan/internal/app"
	"github.com/ocluk/caolan/internal/config"
	"github.com/ocluk/caolan/internal/logging"
	"github.com/ocluk/caolan/internal/tui/core"
)

// Launch starts the TUI application and blocks until the user quits
func Launch(ctx context.Context, cfg *config.Config) error {
	// Initialize logging to file before anything else
	logFile := initLogging()
	if logFile != nil {
		defer func() {
			if err := logFile.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
			}
		}()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		errChan <- core.Run(ctx, application, cfg)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// The program sees the cancelled context and exits on its own
		select {
		case <-errChan:
		case <-time.After(5 * time.Second):
			slog.Warn("program did not exit after shutdown signal")
		}
	}

	return nil
}

// openApp opens the record store named by the configuration
func openApp(ctx context.Context, cfg *config.Config) (*app.App, error) {
	application, err := app.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return application, nil
}

// initLogging points slog at the log file, or leaves it on stderr if the
// log directory cannot be used.
func initLogging() *os.File {
	dir, err := logging.DefaultDir()
	if err != nil {
		slog.Warn("logging to stderr", "error", err)
		return nil
	}
	file, err := logging.Init(dir)
	if err != nil {
		slog.Warn("logging to stderr", "dir", dir, "error", err)
		return nil
	}
	return file
}
