package detail

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ocluk/caolan/internal/cli"
	"github.com/ocluk/caolan/internal/models"
	"github.com/spf13/cobra"
)

// ShowCmd returns the detail show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a single detail",
		Long: `Show the four fields of one detail.

Examples:
  caolan detail show 3
  caolan detail show --id=3 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Int64("id", 0, "Detail ID")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := cli.FormatterFromFlags(cmd)

	id, err := cli.ResolveDetailID(cmd, args)
	if err != nil {
		return cli.Fail(formatter, "USAGE_ERROR", cli.ExitUsage, err)
	}

	cliInstance, err := cli.OpenCLI(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	d, err := cliInstance.App.Details.FetchOne(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			if fmtErr := formatter.ErrorWithSuggestion("DETAIL_NOT_FOUND",
				fmt.Sprintf("detail %d not found", id),
				"list the stored details with 'caolan detail list'"); fmtErr != nil {
				return fmtErr
			}
			return cli.WithExitCode(cli.ExitNotFound, err)
		}
		return cli.Fail(formatter, "DETAIL_FETCH_ERROR", cli.ExitError, err)
	}

	if formatter.Quiet {
		return formatter.Success(d)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"detail":  detailJSON(d),
		})
	}

	printDetail(d)
	return nil
}
