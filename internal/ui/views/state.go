package views

// Role is the accessibility role of an element
type Role string

const (
	RoleButton    Role = "button"
	RoleListbox   Role = "listbox"
	RoleOption    Role = "option"
	RoleCheckbox  Role = "checkbox"
	RoleSearchbox Role = "searchbox"
)

// Texts shown by the widget itself
const (
	ClearLabel       = "Clear selection"
	NoOptionsText    = "No options found"
	RequiredMarker   = "*"
	SelectedMarker   = "[x]"
	UnselectedMarker = "[ ]"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width             int
	Label             string
	Required          bool
	HelpText          string
	ClassName         string
	DropdownClassName string

	Trigger TriggerView
	Clear   *ClearView   // nil when the clear control is not offered
	Search  *SearchView  // nil unless open and searchable
	Listbox *ListboxView // nil while closed
	Help    string       // key help line
}

// TriggerView is the pressable control showing the current selection
type TriggerView struct {
	Role        Role
	Text        string
	Placeholder bool // Text is the placeholder
	Disabled    bool
	Expanded    bool
}

// ClearView is the clear control next to the trigger
type ClearView struct {
	Label string
}

// SearchView is the search field of an open searchable panel
type SearchView struct {
	Role        Role
	Placeholder string
	Text        string
	Input       string // rendered text input, cursor included
}

// ListboxView is the option panel
type ListboxView struct {
	Role      Role
	Multiple  bool
	Sections  []SectionView
	Empty     bool
	EmptyText string
}

// SectionView is a group of options; Header is "" for ungrouped options
type SectionView struct {
	Header  string
	Options []OptionView
}

// OptionView is one row of the listbox
type OptionView struct {
	Role        Role
	Index       int
	Value       string
	Label       string
	Description string
	Icon        string
	Disabled    bool
	Selected    bool
	Highlighted bool
}

// IsOpen reports whether the listbox is present
func (s ViewState) IsOpen() bool {
	return s.Listbox != nil
}

// Options returns every option row in display order
func (s ViewState) Options() []OptionView {
	if s.Listbox == nil {
		return nil
	}
	var out []OptionView
	for _, sec := range s.Listbox.Sections {
		out = append(out, sec.Options...)
	}
	return out
}

// OptionsByRole returns the option rows exposing role
func (s ViewState) OptionsByRole(role Role) []OptionView {
	var out []OptionView
	for _, o := range s.Options() {
		if o.Role == role {
			out = append(out, o)
		}
	}
	return out
}

// FindOption returns the row whose label is label
func (s ViewState) FindOption(label string) (OptionView, bool) {
	for _, o := range s.Options() {
		if o.Label == label {
			return o, true
		}
	}
	return OptionView{}, false
}

// Headers returns the group headers shown in the listbox
func (s ViewState) Headers() []string {
	if s.Listbox == nil {
		return nil
	}
	var out []string
	for _, sec := range s.Listbox.Sections {
		if sec.Header != "" {
			out = append(out, sec.Header)
		}
	}
	return out
}

// Highlighted returns the highlighted row, if any
func (s ViewState) Highlighted() (OptionView, bool) {
	for _, o := range s.Options() {
		if o.Highlighted {
			return o, true
		}
	}
	return OptionView{}, false
}
