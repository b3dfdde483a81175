// Package detail holds all cli commands related to contact details
//
// e.g., caolan detail ...
package detail

import (
	"fmt"

	"github.com/ocluk/caolan/internal/models"
	"github.com/spf13/cobra"
)

// DetailCmd returns the detail parent command
func DetailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "detail",
		Aliases: []string{"details"},
		Short:   "Manage contact details",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func detailJSON(d *models.Detail) map[string]any {
	return map[string]any{
		"id":            d.ID,
		"name":          d.Name,
		"address":       d.Address,
		"date_of_birth": d.DateOfBirth,
		"telephone":     d.Telephone,
	}
}

// printDetail writes the four fields of a record in human-readable form
func printDetail(d *models.Detail) {
	fmt.Printf("Detail #%d\n", d.ID)
	fmt.Printf("  Name:          %s\n", d.Name)
	fmt.Printf("  Address:       %s\n", d.Address)
	fmt.Printf("  Date of birth: %s\n", d.DateOfBirth)
	fmt.Printf("  Telephone:     %s\n", d.Telephone)
}
