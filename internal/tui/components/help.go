package components

import (
	"fmt"
	"strings"

	"github.com/ocluk/caolan/internal/config"
)

// keyLabel makes the configured key readable in the help screen
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// RenderHelp renders the list screen key bindings
func RenderHelp(km config.KeyMappings) string {
	rows := []struct {
		key  string
		desc string
	}{
		{km.AddDetail, "Add new detail"},
		{km.EditDetail, "Edit selected detail"},
		{km.DeleteDetail, "Delete selected detail"},
		{km.ViewDetail, "Toggle detail pane"},
		{km.Refresh, "Reload the list"},
		{km.NextDetail + "/" + km.PrevDetail, "Move down / up"},
		{km.FirstRow + "/" + km.LastRow, "Jump to first / last"},
		{km.SaveForm, "Save (in the edit screen)"},
		{"esc", "Cancel (in the edit screen)"},
		{km.ShowHelp, "Toggle this help"},
		{km.Quit, "Quit"},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("CAOLAN - Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-10s %s\n", keyLabel(r.key), r.desc)
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("Press any key to close"))
	return b.String()
}
