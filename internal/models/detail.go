package models

// Detail is a single personal-contact record.
// ID is assigned by the store on insert and never changes afterwards.
type Detail struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
	Telephone   string `json:"telephone"`
}

// GetID returns the record ID (used by quiet CLI output)
func (d *Detail) GetID() int {
	return int(d.ID)
}

// Fields returns the four editable fields in column order
func (d *Detail) Fields() (name, address, dob, telephone string) {
	return d.Name, d.Address, d.DateOfBirth, d.Telephone
}
