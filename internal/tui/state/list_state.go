package state

import "github.com/ocluk/caolan/internal/models"

// ListState holds the records shown by the list screen.
// It is replaced wholesale on every fetch and never edited in place.
type ListState struct {
	details []*models.Detail
}

// NewListState creates an empty ListState.
func NewListState() *ListState {
	return &ListState{details: []*models.Detail{}}
}

// SetDetails replaces the displayed records.
func (s *ListState) SetDetails(details []*models.Detail) {
	if details == nil {
		details = []*models.Detail{}
	}
	s.details = details
}

// Details returns the displayed records.
func (s *ListState) Details() []*models.Detail {
	return s.details
}

// Len returns the number of displayed records.
func (s *ListState) Len() int {
	return len(s.details)
}

// At returns the record at index, or nil when out of range.
func (s *ListState) At(index int) *models.Detail {
	if index < 0 || index >= len(s.details) {
		return nil
	}
	return s.details[index]
}

// IndexOf returns the position of the record with id, or -1.
func (s *ListState) IndexOf(id int64) int {
	for i, d := range s.details {
		if d.ID == id {
			return i
		}
	}
	return -1
}
