package detail

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ocluk/caolan/internal/cli"
	"github.com/ocluk/caolan/internal/models"
	"github.com/spf13/cobra"
)

// DeleteCmd returns the detail delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a detail",
		Long:  "Delete a detail by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int64("id", 0, "Detail ID")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
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

	// Get the detail for the confirmation prompt
	d, err := cliInstance.App.Details.FetchOne(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return cli.Fail(formatter, "DETAIL_NOT_FOUND", cli.ExitNotFound, fmt.Errorf("detail %d not found", id))
		}
		return cli.Fail(formatter, "DETAIL_FETCH_ERROR", cli.ExitError, err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Delete detail #%d: '%s'? (y/N): ", id, d.Name)
		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	deleted, err := cliInstance.App.Details.Delete(ctx, id)
	if err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", cli.ExitError, err)
	}
	if !deleted {
		return cli.Fail(formatter, "DETAIL_NOT_FOUND", cli.ExitNotFound, fmt.Errorf("detail %d not found", id))
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":   true,
			"detail_id": id,
		})
	}

	fmt.Printf("✓ Detail %d deleted successfully\n", id)
	return nil
}
