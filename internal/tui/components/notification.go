package components

import "github.com/ocluk/caolan/internal/tui/state"

// RenderNotification renders a notification as a colored banner
func RenderNotification(n state.Notification) string {
	switch n.Level {
	case state.LevelError:
		return ErrorBannerStyle.Render("✗ " + n.Message)
	default:
		return InfoBannerStyle.Render("● " + n.Message)
	}
}
