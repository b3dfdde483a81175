// Package cli holds helpers for executing cobra commands against a test store.
package cli

import (
	"context"
	"testing"

	"github.com/ocluk/caolan/internal/app"
	internalcli "github.com/ocluk/caolan/internal/cli"
	"github.com/ocluk/caolan/internal/testutil"
	"github.com/spf13/cobra"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the context so commands use the test database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctxWithApp := internalcli.WithApp(ctx, testApp)

	SetupCobraCommand(cmd, args)
	cmd.SetContext(ctxWithApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
