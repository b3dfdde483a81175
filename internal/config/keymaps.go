package config

// KeyMappings defines all configurable key bindings of the list screen
type KeyMappings struct {
	// Details
	AddDetail    string `yaml:"add_detail"`
	EditDetail   string `yaml:"edit_detail"`
	DeleteDetail string `yaml:"delete_detail"`
	ViewDetail   string `yaml:"view_detail"`
	Refresh      string `yaml:"refresh"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevDetail string `yaml:"prev_detail"`
	NextDetail string `yaml:"next_detail"`
	FirstRow   string `yaml:"first_row"`
	LastRow    string `yaml:"last_row"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Details
		AddDetail:    "a",
		EditDetail:   "e",
		DeleteDetail: "d",
		ViewDetail:   "space",
		Refresh:      "r",

		SaveForm: "ctrl+s",

		// Navigation
		PrevDetail: "k",
		NextDetail: "j",
		FirstRow:   "g",
		LastRow:    "G",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddDetail == "" {
		k.AddDetail = defaults.AddDetail
	}
	if k.EditDetail == "" {
		k.EditDetail = defaults.EditDetail
	}
	if k.DeleteDetail == "" {
		k.DeleteDetail = defaults.DeleteDetail
	}
	if k.ViewDetail == "" {
		k.ViewDetail = defaults.ViewDetail
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevDetail == "" {
		k.PrevDetail = defaults.PrevDetail
	}
	if k.NextDetail == "" {
		k.NextDetail = defaults.NextDetail
	}
	if k.FirstRow == "" {
		k.FirstRow = defaults.FirstRow
	}
	if k.LastRow == "" {
		k.LastRow = defaults.LastRow
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
