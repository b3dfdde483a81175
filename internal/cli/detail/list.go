package detail

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ocluk/caolan/internal/cli"
	"github.com/spf13/cobra"
)

// ListCmd returns the detail list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all details",
		Long:    "List every stored contact detail in creation order.",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.OpenCLI(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	details, err := cliInstance.App.Details.FetchAll(ctx)
	if err != nil {
		return cli.Fail(formatter, "DETAIL_FETCH_ERROR", cli.ExitError, err)
	}

	if formatter.Quiet {
		for _, d := range details {
			fmt.Printf("%d\n", d.ID)
		}
		return nil
	}

	if formatter.JSON {
		items := make([]map[string]any, 0, len(details))
		for _, d := range details {
			items = append(items, detailJSON(d))
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"details": items,
		})
	}

	if len(details) == 0 {
		fmt.Println("No details found")
		return nil
	}

	fmt.Printf("Found %d details:\n\n", len(details))
	for _, d := range details {
		fmt.Printf("  [%d] %s", d.ID, d.Name)
		if d.Telephone != "" {
			fmt.Printf(" - %s", d.Telephone)
		}
		fmt.Println()
	}

	return nil
}
