package state

import (
	"testing"

	"github.com/ocluk/caolan/internal/models"
)

func TestUIStateMoveDownStopsAtLastRow(t *testing.T) {
	s := NewUIState()
	s.SetHeight(40)

	if !s.MoveDown(2) {
		t.Fatal("MoveDown(2) from row 0 should move")
	}
	if s.MoveDown(2) {
		t.Error("MoveDown(2) from the last row should not move")
	}
	if s.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", s.Selected())
	}
}

func TestUIStateMoveUpStopsAtTop(t *testing.T) {
	s := NewUIState()
	if s.MoveUp() {
		t.Error("MoveUp() at row 0 should not move")
	}
}

func TestUIStateClampSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		count    int
		want     int
	}{
		{"empty list", 3, 0, 0},
		{"past the end", 5, 3, 2},
		{"inside the list", 1, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetHeight(40)
			s.SetSelected(tt.selected)
			s.ClampSelection(tt.count)
			if s.Selected() != tt.want {
				t.Errorf("Selected() = %d, want %d", s.Selected(), tt.want)
			}
		})
	}
}

func TestUIStateScrollFollowsSelection(t *testing.T) {
	s := NewUIState()
	s.SetHeight(listChromeHeight + 3) // three visible rows

	for range 5 {
		s.MoveDown(10)
	}
	if s.Selected() != 5 {
		t.Fatalf("Selected() = %d, want 5", s.Selected())
	}
	if s.ScrollOffset() != 3 {
		t.Errorf("ScrollOffset() = %d, want 3", s.ScrollOffset())
	}

	for range 5 {
		s.MoveUp()
	}
	if s.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset() after moving back = %d, want 0", s.ScrollOffset())
	}
}

func TestListStateNilBecomesEmpty(t *testing.T) {
	s := NewListState()
	s.SetDetails(nil)
	if s.Details() == nil {
		t.Error("Details() should never be nil")
	}
	if s.At(0) != nil {
		t.Error("At(0) on an empty list should be nil")
	}
}

func TestListStateIndexOf(t *testing.T) {
	s := NewListState()
	s.SetDetails([]*models.Detail{{ID: 4}, {ID: 9}})

	if got := s.IndexOf(9); got != 1 {
		t.Errorf("IndexOf(9) = %d, want 1", got)
	}
	if got := s.IndexOf(5); got != -1 {
		t.Errorf("IndexOf(5) = %d, want -1", got)
	}
}

func TestFormStateChangeDetection(t *testing.T) {
	s := NewFormState()
	s.Load(&models.Detail{ID: 3, Name: "Tony", Address: "Oz", DateOfBirth: "1 Jan 2000", Telephone: "1234"})

	if s.EditingID != 3 {
		t.Errorf("EditingID = %d, want 3", s.EditingID)
	}
	if s.HasChanges() {
		t.Error("HasChanges() right after Load should be false")
	}

	s.FormTelephone = "5678"
	if !s.HasChanges() {
		t.Error("HasChanges() after editing Telephone should be true")
	}

	s.Clear()
	if s.EditingID != 0 || s.FormName != "" || s.HasChanges() {
		t.Errorf("Clear() left state behind: %+v", s)
	}
	if !s.FormConfirm {
		t.Error("Clear() should reset FormConfirm to true")
	}
}

func TestNotificationLayersStackFromTopRight(t *testing.T) {
	s := NewNotificationState()
	s.SetWindowSize(40, 20)
	s.Add(LevelInfo, "Details saved.")
	s.Add(LevelError, "Failed to delete detail")

	layers := s.GetLayers(func(n Notification) string { return n.Message })
	if len(layers) != 2 {
		t.Fatalf("GetLayers() returned %d layers, want 2", len(layers))
	}

	s.Clear()
	if s.HasAny() {
		t.Error("HasAny() after Clear() should be false")
	}
}

func TestNotificationLayersNeedWindowSize(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "Details saved.")
	if got := s.GetLayers(func(n Notification) string { return n.Message }); len(got) != 0 {
		t.Errorf("GetLayers() without a window size returned %d layers, want 0", len(got))
	}
}
