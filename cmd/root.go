// Package cmd holds the caolan root command
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ocluk/caolan/internal/cli"
	"github.com/ocluk/caolan/internal/cli/detail"
	"github.com/ocluk/caolan/internal/config"
	"github.com/ocluk/caolan/internal/launcher"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the caolan command tree.
// Running it without a subcommand opens the terminal UI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "caolan",
		Short: "Caolan - a terminal contact detail keeper",
		Long: `Caolan keeps personal contact details (name, address, date of birth, telephone)
in a local SQLite database. Run it without arguments for the interactive list,
or use the detail subcommands from scripts.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cli.ConfigFromContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database (overrides config and "+config.EnvDatabasePath+")")

	rootCmd.AddCommand(detail.DetailCmd())

	return rootCmd
}

// loadConfig loads the configuration once for every command and stores it in the command context
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cli.WithExitCode(cli.ExitError, fmt.Errorf("failed to load configuration: %w", err))
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithConfig(ctx, cfg))
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	// Command errors are already reported through the output formatter
	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
