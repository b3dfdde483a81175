package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/ocluk/caolan/internal/models"
	"github.com/ocluk/caolan/internal/tui/huhforms"
	"github.com/ocluk/caolan/internal/tui/state"
)

// handleListMode handles key presses on the list screen
func (m Model) handleListMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddDetail:
		return m.handleAddDetail()
	case km.EditDetail, "enter":
		return m.handleEditDetail()
	case km.DeleteDetail:
		return m.handleDeleteDetail()
	case km.ViewDetail:
		m.UiState.ToggleDetailPane()
		return m, nil
	case km.Refresh:
		m.refreshDetails()
		return m, nil
	case km.NextDetail, "down":
		m.UiState.MoveDown(m.ListState.Len())
		return m, nil
	case km.PrevDetail, "up":
		m.UiState.MoveUp()
		return m, nil
	case km.FirstRow, "home":
		m.UiState.SetSelected(0)
		m.UiState.EnsureSelectionVisible()
		return m, nil
	case km.LastRow, "end":
		m.UiState.SetSelected(m.ListState.Len() - 1)
		m.UiState.EnsureSelectionVisible()
		return m, nil
	}

	return m, nil
}

// handleAddDetail opens a blank edit screen
func (m Model) handleAddDetail() (tea.Model, tea.Cmd) {
	m.FormState.Load(nil)
	m.FormState.DetailForm = m.newDetailForm(false)
	m.UiState.SetMode(state.CreateFormMode)
	return m, m.FormState.DetailForm.Init()
}

// handleEditDetail opens the edit screen pre-filled with the selected record.
// The record is read again so the form never starts from a stale row.
func (m Model) handleEditDetail() (tea.Model, tea.Cmd) {
	current := m.getCurrentDetail()
	if current == nil {
		return m, nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	detail, err := m.App.Details.FetchOne(ctx, current.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			m.NotificationState.Add(state.LevelError, "Detail no longer exists")
		} else {
			slog.Error("Error loading detail", "id", current.ID, "error", err)
			m.NotificationState.Add(state.LevelError, "Failed to load detail")
		}
		m.refreshDetails()
		return m, nil
	}

	m.FormState.Load(detail)
	m.FormState.DetailForm = m.newDetailForm(true)
	m.UiState.SetMode(state.EditFormMode)
	return m, m.FormState.DetailForm.Init()
}

// handleDeleteDetail asks for confirmation before deleting the selected record
func (m Model) handleDeleteDetail() (tea.Model, tea.Cmd) {
	if m.getCurrentDetail() == nil {
		return m, nil
	}
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

func (m Model) newDetailForm(editing bool) *huh.Form {
	return huhforms.CreateDetailForm(huhforms.DetailFormValues{
		Name:        &m.FormState.FormName,
		Address:     &m.FormState.FormAddress,
		DateOfBirth: &m.FormState.FormDateOfBirth,
		Telephone:   &m.FormState.FormTelephone,
		Confirm:     &m.FormState.FormConfirm,
	}, editing, m.Config.ColorScheme)
}
