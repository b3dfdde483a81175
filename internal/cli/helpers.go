package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ocluk/caolan/internal/models"
	"github.com/ocluk/caolan/internal/store"
	"github.com/spf13/cobra"
)

// ParseDetailID parses a detail ID given on the command line
func ParseDetailID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w %q (must be a positive number)", models.ErrInvalidID, s)
	}
	return id, nil
}

// ResolveDetailID takes the ID from the --id flag or the first positional argument
func ResolveDetailID(cmd *cobra.Command, args []string) (int64, error) {
	if cmd.Flags().Changed("id") {
		id, _ := cmd.Flags().GetInt64("id")
		if id <= 0 {
			return 0, fmt.Errorf("%w %d (must be a positive number)", models.ErrInvalidID, id)
		}
		return id, nil
	}
	if len(args) > 0 {
		return ParseDetailID(args[0])
	}
	return 0, errors.New("detail ID required (use --id or pass it as an argument)")
}

// Fail reports err through the formatter and returns it tagged with exitCode
func Fail(f *OutputFormatter, code string, exitCode int, err error) error {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return WithExitCode(exitCode, err)
}

// OpenCLI returns the CLI for a command, reporting initialization failures.
// The caller must Close the returned CLI.
func OpenCLI(ctx context.Context, f *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		exitCode := ExitError
		if errors.Is(err, store.ErrStorageUnavailable) {
			exitCode = ExitStorage
		}
		return nil, Fail(f, "INITIALIZATION_ERROR", exitCode, err)
	}
	return cliInstance, nil
}

// CloseCLI closes the CLI, logging any error
func CloseCLI(c *CLI) {
	if err := c.Close(); err != nil {
		log.Printf("Error closing CLI: %v", err)
	}
}

// AddOutputFlags adds the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// FormatterFromFlags builds an OutputFormatter from --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}
