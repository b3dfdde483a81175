// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2

	return lipgloss.NewLayer(content).X(max(x, 0)).Y(max(y, 0))
}

// CreateRightLayer creates a layer anchored to the right edge at row y.
// Returns nil if content is empty.
func CreateRightLayer(content string, screenWidth int, y int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := screenWidth - lipgloss.Width(content)
	return lipgloss.NewLayer(content).X(max(x, 0)).Y(max(y, 0))
}

// DialogWidth returns a dialog width of half the screen bounded by minWidth and maxWidth
func DialogWidth(screenWidth, minWidth, maxWidth int) int {
	return min(max(screenWidth/2, minWidth), maxWidth, screenWidth)
}
