package state

import (
	"charm.land/huh/v2"
	"github.com/ocluk/caolan/internal/models"
)

// FormState holds the edit screen: the huh form and the values it writes to.
// The field values live here so the form's pointers stay valid across
// Model copies.
type FormState struct {
	DetailForm *huh.Form

	// EditingID is the ID of the detail being edited (0 for a new detail)
	EditingID int64

	FormName        string
	FormAddress     string
	FormDateOfBirth string
	FormTelephone   string
	FormConfirm     bool

	// initial values used for change detection
	initialName        string
	initialAddress     string
	initialDateOfBirth string
	initialTelephone   string
}

// NewFormState creates a new FormState with default values.
func NewFormState() *FormState {
	return &FormState{FormConfirm: true}
}

// Load fills the form values from an existing detail and records the snapshot.
// A nil detail starts a blank form.
func (s *FormState) Load(detail *models.Detail) {
	s.EditingID = 0
	s.FormName, s.FormAddress, s.FormDateOfBirth, s.FormTelephone = "", "", "", ""
	if detail != nil {
		s.EditingID = detail.ID
		s.FormName, s.FormAddress, s.FormDateOfBirth, s.FormTelephone = detail.Fields()
	}
	s.FormConfirm = true
	s.SnapshotInitialValues()
}

// SnapshotInitialValues remembers the current values as the unchanged state.
func (s *FormState) SnapshotInitialValues() {
	s.initialName = s.FormName
	s.initialAddress = s.FormAddress
	s.initialDateOfBirth = s.FormDateOfBirth
	s.initialTelephone = s.FormTelephone
}

// HasChanges reports whether any field differs from the snapshot.
func (s *FormState) HasChanges() bool {
	return s.FormName != s.initialName ||
		s.FormAddress != s.initialAddress ||
		s.FormDateOfBirth != s.initialDateOfBirth ||
		s.FormTelephone != s.initialTelephone
}

// Clear drops the form and resets every value.
func (s *FormState) Clear() {
	s.DetailForm = nil
	s.Load(nil)
}
