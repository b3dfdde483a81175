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

// UpdateCmd returns the detail update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a detail",
		Long: `Replace the fields of an existing detail.
Fields whose flag is not given keep their stored value.

Examples:
  caolan detail update 3 --telephone="555-0100"
  caolan detail update --id=3 --name="Tony" --address="" --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int64("id", 0, "Detail ID")
	cmd.Flags().String("name", "", "New contact name")
	cmd.Flags().String("address", "", "New postal address")
	cmd.Flags().String("dob", "", "New date of birth")
	cmd.Flags().String("telephone", "", "New telephone number")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := cli.FormatterFromFlags(cmd)

	id, err := cli.ResolveDetailID(cmd, args)
	if err != nil {
		return cli.Fail(formatter, "USAGE_ERROR", cli.ExitUsage, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("name") && !flags.Changed("address") && !flags.Changed("dob") && !flags.Changed("telephone") {
		return cli.Fail(formatter, "USAGE_ERROR", cli.ExitUsage,
			errors.New("nothing to update (use --name, --address, --dob or --telephone)"))
	}

	cliInstance, err := cli.OpenCLI(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	d, err := cliInstance.App.Details.FetchOne(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return cli.Fail(formatter, "DETAIL_NOT_FOUND", cli.ExitNotFound, fmt.Errorf("detail %d not found", id))
		}
		return cli.Fail(formatter, "DETAIL_FETCH_ERROR", cli.ExitError, err)
	}

	if flags.Changed("name") {
		d.Name, _ = flags.GetString("name")
	}
	if flags.Changed("address") {
		d.Address, _ = flags.GetString("address")
	}
	if flags.Changed("dob") {
		d.DateOfBirth, _ = flags.GetString("dob")
	}
	if flags.Changed("telephone") {
		d.Telephone, _ = flags.GetString("telephone")
	}

	updated, err := cliInstance.App.Details.Update(ctx, id, d.Name, d.Address, d.DateOfBirth, d.Telephone)
	if err != nil {
		return cli.Fail(formatter, "DETAIL_UPDATE_ERROR", cli.ExitError, err)
	}
	if !updated {
		return cli.Fail(formatter, "DETAIL_NOT_FOUND", cli.ExitNotFound, fmt.Errorf("detail %d not found", id))
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"detail":  detailJSON(d),
		})
	}

	fmt.Printf("✓ Detail %d updated successfully\n", id)
	return nil
}
