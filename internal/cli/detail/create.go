package detail

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ocluk/caolan/internal/cli"
	"github.com/spf13/cobra"
)

// CreateCmd returns the detail create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new detail",
		Long: `Create a new contact detail. Every field is free text and may be empty.

Examples:
  # Human-readable output
  caolan detail create --name="Tony" --address="1 Main St" --dob="1990-01-01" --telephone="555"

  # JSON output for agents
  caolan detail create --name="Tony" --json

  # Quiet mode for bash capture
  DETAIL_ID=$(caolan detail create --name="Tony" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Contact name")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("dob", "", "Date of birth")
	cmd.Flags().String("telephone", "", "Telephone number")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	address, _ := cmd.Flags().GetString("address")
	dob, _ := cmd.Flags().GetString("dob")
	telephone, _ := cmd.Flags().GetString("telephone")

	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.OpenCLI(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	id, err := cliInstance.App.Details.Create(ctx, name, address, dob, telephone)
	if err != nil {
		return cli.Fail(formatter, "DETAIL_CREATE_ERROR", cli.ExitError, err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"detail": map[string]any{
				"id":            id,
				"name":          name,
				"address":       address,
				"date_of_birth": dob,
				"telephone":     telephone,
			},
		})
	}

	fmt.Printf("✓ Detail '%s' created successfully (ID: %d)\n", name, id)
	return nil
}
