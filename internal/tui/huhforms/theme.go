package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/ocluk/caolan/internal/config/colors"
)

// DetailFormTheme styles the detail form: four text inputs and a Save/Cancel confirm.
// The mode color is the scheme's Create color for a new detail and Edit otherwise.
func DetailFormTheme(colorScheme colors.ColorScheme, editing bool) huh.Theme {
	mode := lipgloss.Color(colorScheme.Create)
	if editing {
		mode = lipgloss.Color(colorScheme.Edit)
	}
	title := lipgloss.Color(colorScheme.Title)
	normal := lipgloss.Color(colorScheme.Normal)
	subtle := lipgloss.Color(colorScheme.Subtle)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		// The field being typed into
		t.Focused.Base = t.Focused.Base.BorderForeground(mode)
		t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(mode)
		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(mode)
		t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(normal)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)

		// Save/Cancel
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color(colorScheme.Background)).
			Background(mode).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Foreground(normal).
			Background(subtle)

		// Fields not being typed into are dimmed
		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle).Bold(false)
		t.Blurred.TextInput.Prompt = t.Blurred.TextInput.Prompt.Foreground(subtle)
		t.Blurred.TextInput.Text = t.Blurred.TextInput.Text.Foreground(subtle)
		t.Blurred.FocusedButton = t.Blurred.BlurredButton

		return t
	})
}
