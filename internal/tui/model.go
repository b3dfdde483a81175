// Package tui implements the list and edit screens on top of the record store.
package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/ocluk/caolan/internal/app"
	"github.com/ocluk/caolan/internal/config"
	"github.com/ocluk/caolan/internal/models"
	"github.com/ocluk/caolan/internal/tui/components"
	"github.com/ocluk/caolan/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	// Ctx is cancelled on shutdown; every store call derives from it
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	ListState         *state.ListState
	FormState         *state.FormState
	NotificationState *state.NotificationState
}

// InitialModel creates the TUI model and loads the list from the store
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		UiState:           state.NewUIState(),
		ListState:         state.NewListState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
	}
	m.refreshDetails()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// DbContext returns a context for a single store call
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(m.Ctx)
}

// refreshDetails re-fetches every record and keeps the selection in range
func (m *Model) refreshDetails() {
	ctx, cancel := m.DbContext()
	defer cancel()

	details, err := m.App.Details.FetchAll(ctx)
	if err != nil {
		slog.Error("Error loading details", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to load details")
		return
	}

	m.ListState.SetDetails(details)
	m.UiState.ClampSelection(m.ListState.Len())
	slog.Debug("Number of Records", "count", m.ListState.Len())
}

// selectDetail moves the selection onto the record with id if it is listed
func (m *Model) selectDetail(id int64) {
	if idx := m.ListState.IndexOf(id); idx >= 0 {
		m.UiState.SetSelected(idx)
		m.UiState.EnsureSelectionVisible()
	}
}

// getCurrentDetail returns the highlighted record, or nil for an empty list
func (m Model) getCurrentDetail() *models.Detail {
	return m.ListState.At(m.UiState.Selected())
}
