// Package state holds the mutable screen state of the TUI, split by concern.
package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	ListMode           Mode = iota // Default mode: the list screen
	CreateFormMode                 // Edit screen collecting a new detail
	EditFormMode                   // Edit screen pre-filled with the selected detail
	DeleteConfirmMode              // Confirming detail deletion
	DiscardConfirmMode             // Confirming discard of unsaved form changes
	HelpMode                       // Displaying help screen
)

// String returns a readable mode name for logs and test failures
func (m Mode) String() string {
	switch m {
	case ListMode:
		return "ListMode"
	case CreateFormMode:
		return "CreateFormMode"
	case EditFormMode:
		return "EditFormMode"
	case DeleteConfirmMode:
		return "DeleteConfirmMode"
	case DiscardConfirmMode:
		return "DiscardConfirmMode"
	case HelpMode:
		return "HelpMode"
	default:
		return "UnknownMode"
	}
}

// IsForm reports whether the mode shows the edit screen
func (m Mode) IsForm() bool {
	return m == CreateFormMode || m == EditFormMode
}

// DiscardContext tracks information for discard confirmation dialogs.
// It stores the mode to return to if the user cancels, and a context-specific message.
type DiscardContext struct {
	SourceMode Mode   // The mode to return to if user cancels discard (N/ESC)
	Message    string // Context-specific message (e.g., "Discard new detail?")
}

// UIState manages the user interface state.
// This includes the list selection, scrolling, terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selected is the index of the highlighted row in the list screen
	selected int

	// scrollOffset is the index of the first visible row
	scrollOffset int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// discardContext holds context for discard confirmation dialogs
	discardContext *DiscardContext

	// detailPane shows the selected detail beside the list
	detailPane bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode: ListMode,
	}
}

// Selected returns the index of the highlighted row.
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected updates the highlighted row index.
func (s *UIState) SetSelected(index int) {
	s.selected = max(index, 0)
}

// ClampSelection keeps the selection inside a list of count rows.
func (s *UIState) ClampSelection(count int) {
	switch {
	case count == 0:
		s.selected = 0
	case s.selected >= count:
		s.selected = count - 1
	}
	s.EnsureSelectionVisible()
}

// MoveUp moves the selection one row up. Returns false at the top.
func (s *UIState) MoveUp() bool {
	if s.selected == 0 {
		return false
	}
	s.selected--
	s.EnsureSelectionVisible()
	return true
}

// MoveDown moves the selection one row down. Returns false at the bottom.
func (s *UIState) MoveDown(count int) bool {
	if s.selected >= count-1 {
		return false
	}
	s.selected++
	s.EnsureSelectionVisible()
	return true
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
	s.EnsureSelectionVisible()
}

// VisibleRows returns how many list rows fit on screen.
// Header, footer and notification line take listChromeHeight lines.
func (s *UIState) VisibleRows() int {
	return max(s.height-listChromeHeight, 1)
}

// ScrollOffset returns the index of the first visible row.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// EnsureSelectionVisible scrolls so the selected row is on screen.
func (s *UIState) EnsureSelectionVisible() {
	visible := s.VisibleRows()
	if s.selected < s.scrollOffset {
		s.scrollOffset = s.selected
	}
	if s.selected >= s.scrollOffset+visible {
		s.scrollOffset = s.selected - visible + 1
	}
	s.scrollOffset = max(s.scrollOffset, 0)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// DiscardContext returns the current discard context, or nil.
func (s *UIState) DiscardContext() *DiscardContext {
	return s.discardContext
}

// SetDiscardContext stores context for the discard confirmation dialog.
func (s *UIState) SetDiscardContext(ctx *DiscardContext) {
	s.discardContext = ctx
}

// ClearDiscardContext removes the discard context.
func (s *UIState) ClearDiscardContext() {
	s.discardContext = nil
}

// ShowDetailPane reports whether the detail pane is visible.
func (s *UIState) ShowDetailPane() bool {
	return s.detailPane
}

// ToggleDetailPane shows or hides the detail pane.
func (s *UIState) ToggleDetailPane() {
	s.detailPane = !s.detailPane
}

// listChromeHeight is the number of lines the list screen uses outside the rows
const listChromeHeight = 6
