// Package cli holds the shared plumbing of the caolan subcommands: store
// access, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/ocluk/caolan/internal/app"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container holding the record store

	// owned is false when the App was injected and must outlive the command
	owned bool
}

// NewCLI opens the record store at dbPath
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	application, err := app.New(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
