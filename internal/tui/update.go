package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/ocluk/caolan/internal/tui/state"
)

// Update handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.handleWindowResize(size)
	}

	// Forms need ALL messages, not just key presses
	if m.UiState.Mode().IsForm() {
		return m.updateDetailForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleKeyMsg(keyMsg)
	}

	return m, nil
}

// handleKeyMsg dispatches key presses to the handler of the current mode
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.ListMode:
		return m.handleListMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DiscardConfirmMode:
		return m.handleDiscardConfirm(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

// handleWindowResize handles terminal resize events
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.UiState.SetMode(state.ListMode)
	return m, nil
}
