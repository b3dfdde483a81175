// Package core wraps the TUI model as the single tea.Model handed to the program.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/ocluk/caolan/internal/app"
	"github.com/ocluk/caolan/internal/config"
	"github.com/ocluk/caolan/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, application *app.App, cfg *config.Config) *App {
	model := tui.InitialModel(ctx, application, cfg)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update delegates to Model.Update and stores the result.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the current state of the application.
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}

// Run starts the program and blocks until the user quits
func Run(ctx context.Context, application *app.App, cfg *config.Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, application, cfg), opts...).Run()
	return err
}
