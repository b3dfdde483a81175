// Package huhforms builds the huh forms used by the edit screen.
package huhforms

import (
	"charm.land/huh/v2"
	"github.com/ocluk/caolan/internal/config/colors"
)

// DetailFormValues points at the strings the form writes to
type DetailFormValues struct {
	Name        *string
	Address     *string
	DateOfBirth *string
	Telephone   *string
	Confirm     *bool
}

// CreateDetailForm creates the edit screen: four free-text inputs and a confirm.
// No input is validated; empty values are saved as empty strings.
func CreateDetailForm(values DetailFormValues, editing bool, colorScheme colors.ColorScheme) *huh.Form {
	confirmTitle := "Save these details?"
	if editing {
		confirmTitle = "Save changes to this detail?"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Enter name...").
			Value(values.Name),

		huh.NewInput().
			Key("address").
			Title("Address").
			Placeholder("Enter address...").
			Value(values.Address),

		huh.NewInput().
			Key("dob").
			Title("Date of Birth").
			Placeholder("Enter date of birth...").
			Value(values.DateOfBirth),

		huh.NewInput().
			Key("telephone").
			Title("Telephone").
			Placeholder("Enter telephone...").
			Value(values.Telephone),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Save").
			Negative("Cancel").
			Value(values.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithKeyMap(CreateDetailKeyMap()).
		WithTheme(DetailFormTheme(colorScheme, editing))
}
