package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/ocluk/caolan/internal/tui/state"
)

// handleDeleteConfirm handles detail deletion confirmation.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteDetail()
	case "n", "N", "esc":
		m.UiState.SetMode(state.ListMode)
		return m, nil
	}
	return m, nil
}

// confirmDeleteDetail deletes the selected record and re-fetches the list.
func (m Model) confirmDeleteDetail() (tea.Model, tea.Cmd) {
	detail := m.getCurrentDetail()
	if detail != nil {
		ctx, cancel := m.DbContext()
		defer cancel()

		deleted, err := m.App.Details.Delete(ctx, detail.ID)
		switch {
		case err != nil:
			slog.Error("Error deleting detail", "id", detail.ID, "error", err)
			m.NotificationState.Add(state.LevelError, "Failed to delete detail")
		case !deleted:
			m.NotificationState.Add(state.LevelInfo, "Detail was already deleted")
		default:
			m.NotificationState.Add(state.LevelInfo, "Detail deleted.")
		}
		m.refreshDetails()
	}
	m.UiState.SetMode(state.ListMode)
	return m, nil
}

// handleDiscardConfirm handles discard confirmation for the edit screen.
func (m Model) handleDiscardConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	ctx := m.UiState.DiscardContext()
	if ctx == nil {
		// Safety: if context is missing, return to the list
		m.FormState.Clear()
		m.UiState.SetMode(state.ListMode)
		return m, nil
	}

	switch msg.String() {
	case "y", "Y":
		return m.cancelDetailForm()
	case "n", "N", "esc":
		// Back to the form without clearing it
		m.UiState.SetMode(ctx.SourceMode)
		m.UiState.ClearDiscardContext()
		return m, nil
	}

	return m, nil
}
