package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/ocluk/caolan/internal/tui/components"
	"github.com/ocluk/caolan/internal/tui/layers"
	"github.com/ocluk/caolan/internal/tui/state"
)

const (
	dialogMinWidth = 40
	dialogMaxWidth = 70
)

// renderDetailFormLayer renders the edit screen as a centered dialog
func (m Model) renderDetailFormLayer() *lipgloss.Layer {
	if m.FormState.DetailForm == nil {
		return nil
	}

	title := "New Detail"
	box := components.CreateFormBoxStyle
	if m.UiState.Mode() == state.EditFormMode {
		title = fmt.Sprintf("Edit Detail #%d", m.FormState.EditingID)
		box = components.EditFormBoxStyle
	}

	hint := components.SubtleStyle.Render(fmt.Sprintf("%s save • esc cancel", m.Config.KeyMappings.SaveForm))
	content := components.TitleStyle.Render(title) + "\n\n" + m.FormState.DetailForm.View() + "\n" + hint

	width := layers.DialogWidth(m.UiState.Width(), dialogMinWidth, dialogMaxWidth)
	return layers.CreateCenteredLayer(box.Width(width).Render(content), m.UiState.Width(), m.UiState.Height())
}

// renderDeleteConfirmLayer renders the y/N prompt for the selected record
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	detail := m.getCurrentDetail()
	if detail == nil {
		return nil
	}

	name := detail.Name
	if name == "" {
		name = fmt.Sprintf("#%d", detail.ID)
	}

	box := components.DeleteConfirmBoxStyle.
		Width(dialogMinWidth + 10).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", name))
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderDiscardConfirmLayer renders the prompt shown when esc would lose form edits
func (m Model) renderDiscardConfirmLayer() *lipgloss.Layer {
	message := "Discard changes?"
	if ctx := m.UiState.DiscardContext(); ctx != nil {
		message = ctx.Message
	}

	box := components.DeleteConfirmBoxStyle.
		Width(dialogMinWidth + 10).
		Render(message + "\n\n[y]es  [n]o")
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the key binding overlay
func (m Model) renderHelpLayer() *lipgloss.Layer {
	box := components.HelpBoxStyle.Render(components.RenderHelp(m.Config.KeyMappings))
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
