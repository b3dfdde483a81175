package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/ocluk/caolan/internal/tui/components"
	"github.com/ocluk/caolan/internal/tui/state"
	"github.com/ocluk/caolan/internal/tui/theme"
)

// minWidthForPane is the narrowest terminal that still shows the detail pane
const minWidthForPane = 70

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Always show the list with modal overlays on top
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewListScreen()),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.CreateFormMode, state.EditFormMode:
		modalLayer = m.renderDetailFormLayer()
	case state.DeleteConfirmMode:
		modalLayer = m.renderDeleteConfirmLayer()
	case state.DiscardConfirmMode:
		modalLayer = m.renderDiscardConfirmLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	layers = append(layers, m.NotificationState.GetLayers(components.RenderNotification)...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewListScreen renders the list screen, with the detail pane when enabled
func (m Model) viewListScreen() string {
	width := m.UiState.Width()
	showPane := m.UiState.ShowDetailPane() && width >= minWidthForPane

	listWidth := width
	if showPane {
		listWidth = width * 3 / 5
	}

	list := m.renderList(listWidth)
	if !showPane {
		return list
	}

	paneWidth := width - listWidth - 1
	pane := components.DetailPaneStyle.
		Width(paneWidth).
		Render(components.RenderDetailView(components.DetailViewProps{
			Detail: m.getCurrentDetail(),
			Width:  paneWidth - 4,
		}))

	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", pane)
}

// renderList renders the title, the visible rows and the footer
func (m Model) renderList(width int) string {
	var b strings.Builder

	count := m.ListState.Len()
	b.WriteString(components.TitleStyle.Render(fmt.Sprintf("Caolan · %d %s", count, plural(count, "detail", "details"))))
	b.WriteString("\n\n")
	b.WriteString(components.RenderDetailHeader(width))
	b.WriteString("\n")

	if count == 0 {
		b.WriteString(components.SubtleStyle.Render(
			fmt.Sprintf("No details yet. Press %s to add one.", m.Config.KeyMappings.AddDetail)))
		b.WriteString("\n")
	} else {
		start := m.UiState.ScrollOffset()
		end := min(start+m.UiState.VisibleRows(), count)
		for i := start; i < end; i++ {
			b.WriteString(components.RenderDetailRow(components.DetailRowProps{
				Detail:   m.ListState.At(i),
				Selected: i == m.UiState.Selected(),
				Width:    width,
			}))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	km := m.Config.KeyMappings
	b.WriteString(components.SubtleStyle.Render(fmt.Sprintf(
		"%s add • %s edit • %s delete • %s help • %s quit",
		km.AddDetail, km.EditDetail, km.DeleteDetail, km.ShowHelp, km.Quit)))

	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
