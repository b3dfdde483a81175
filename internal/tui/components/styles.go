// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/ocluk/caolan/internal/config/colors"
	"github.com/ocluk/caolan/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the app header
	TitleStyle lipgloss.Style

	// HeaderStyle defines the column header row of the list screen
	HeaderStyle lipgloss.Style

	// RowStyle defines an unselected list row
	RowStyle lipgloss.Style

	// SelectedRowStyle defines the highlighted list row
	SelectedRowStyle lipgloss.Style

	// DetailPaneStyle defines the side pane showing the selected detail
	DetailPaneStyle lipgloss.Style

	// CreateFormBoxStyle defines the edit screen for a new detail (green border)
	CreateFormBoxStyle lipgloss.Style

	// EditFormBoxStyle defines the edit screen for an existing detail (blue border)
	EditFormBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages
	ErrorBannerStyle lipgloss.Style

	// SubtleStyle is used for placeholders and the footer
	SubtleStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title)).
		Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(colors.RowBorder))

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Background(lipgloss.Color(colors.SelectedBg)).
		Bold(true)

	DetailPaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.RowBorder)).
		Padding(0, 1)

	// Dialog box styles
	CreateFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1, 2)

	EditFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	// Banner styles for notifications
	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)
}
