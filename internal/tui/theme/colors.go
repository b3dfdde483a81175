// Package theme exposes the active color scheme as plain values for rendering code.
package theme

import "github.com/ocluk/caolan/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent     string
	Background string
	Subtle     string
	Normal     string
	Title      string
	Create     string
	Edit       string
	Delete     string
	RowBorder  string
	SelectedBg string
	InfoFg     string
	InfoBg     string
	ErrorFg    string
	ErrorBg    string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	RowBorder = colors.RowBorder
	SelectedBg = colors.SelectedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
