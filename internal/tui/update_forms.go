package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/ocluk/caolan/internal/tui/state"
)

// updateDetailForm handles all messages while the edit screen is open.
// This is separated out because forms need to receive ALL messages, not just key presses.
func (m Model) updateDetailForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.DetailForm == nil {
		m.UiState.SetMode(state.ListMode)
		return m, nil
	}

	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.FormState.HasChanges() {
				message := "Discard new detail?"
				if m.UiState.Mode() == state.EditFormMode {
					message = "Discard changes?"
				}
				m.UiState.SetDiscardContext(&state.DiscardContext{
					SourceMode: m.UiState.Mode(),
					Message:    message,
				})
				m.UiState.SetMode(state.DiscardConfirmMode)
				return m, nil
			}
			// No changes - allow immediate close
			return m.cancelDetailForm()

		case m.Config.KeyMappings.SaveForm:
			// Quick save skips the confirm field
			m.FormState.FormConfirm = true
			return m.submitDetailForm()
		}
	}

	model, cmd := m.FormState.DetailForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.DetailForm = form
	}

	switch m.FormState.DetailForm.State {
	case huh.StateCompleted:
		return m.submitDetailForm()
	case huh.StateAborted:
		return m.cancelDetailForm()
	}

	return m, cmd
}

// submitDetailForm saves the form: Create for a new record, Update for an existing one.
// Answering "Cancel" on the confirm field behaves like esc without changes.
func (m Model) submitDetailForm() (tea.Model, tea.Cmd) {
	if !m.FormState.FormConfirm {
		return m.cancelDetailForm()
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	fs := m.FormState
	savedID := fs.EditingID

	if fs.EditingID == 0 {
		id, err := m.App.Details.Create(ctx, fs.FormName, fs.FormAddress, fs.FormDateOfBirth, fs.FormTelephone)
		if err != nil {
			slog.Error("Error creating detail", "error", err)
			m.NotificationState.Add(state.LevelError, "Failed to save details")
		} else {
			savedID = id
			m.NotificationState.Add(state.LevelInfo, "Details saved.")
		}
	} else {
		updated, err := m.App.Details.Update(ctx, fs.EditingID, fs.FormName, fs.FormAddress, fs.FormDateOfBirth, fs.FormTelephone)
		switch {
		case err != nil:
			slog.Error("Error updating detail", "id", fs.EditingID, "error", err)
			m.NotificationState.Add(state.LevelError, "Failed to save details")
		case !updated:
			m.NotificationState.Add(state.LevelError, "Detail no longer exists")
		default:
			m.NotificationState.Add(state.LevelInfo, "Details saved.")
		}
	}

	m.FormState.Clear()
	m.UiState.SetMode(state.ListMode)
	m.refreshDetails()
	m.selectDetail(savedID)

	return m, tea.ClearScreen
}

// cancelDetailForm closes the edit screen without touching the store
func (m Model) cancelDetailForm() (tea.Model, tea.Cmd) {
	m.FormState.Clear()
	m.UiState.SetMode(state.ListMode)
	m.UiState.ClearDiscardContext()
	m.NotificationState.Add(state.LevelInfo, "Edit cancelled.")
	return m, tea.ClearScreen
}
