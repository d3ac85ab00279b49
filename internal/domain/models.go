package domain

import (
	"slices"
	"strings"
)

// Option represents a single selectable entry in a catalog
type Option struct {
	Value       string `koanf:"value" json:"value"`
	Label       string `koanf:"label" json:"label"`
	Group       string `koanf:"group" json:"group,omitempty"` // "" if ungrouped
	Description string `koanf:"description" json:"description,omitempty"`
	Icon        string `koanf:"icon" json:"icon,omitempty"`
	Disabled    bool   `koanf:"disabled" json:"disabled,omitempty"`
}

// Catalog is the ordered list of options supplied by the host.
// Values are assumed unique; nothing enforces it.
type Catalog []Option

// Lookup returns the option carrying value. On duplicate values the last match wins.
func (c Catalog) Lookup(value string) (Option, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Value == value {
			return c[i], true
		}
	}
	return Option{}, false
}

// Value is the committed selection.
// In single mode Single holds the chosen value ("" means nothing selected).
// In multiple mode Values holds the chosen values in selection order.
type Value struct {
	Multiple bool
	Single   string
	Values   []string
}

// SingleValue creates a single-mode value
func SingleValue(v string) Value {
	return Value{Single: v}
}

// MultiValue creates a multiple-mode value
func MultiValue(vs ...string) Value {
	if vs == nil {
		vs = []string{}
	}
	return Value{Multiple: true, Values: slices.Clone(vs)}
}

// EmptyValue returns the empty form for the given mode
func EmptyValue(multiple bool) Value {
	if multiple {
		return MultiValue()
	}
	return SingleValue("")
}

// IsEmpty reports whether nothing is selected
func (v Value) IsEmpty() bool {
	if v.Multiple {
		return len(v.Values) == 0
	}
	return v.Single == ""
}

// Len returns the number of selected values
func (v Value) Len() int {
	if v.Multiple {
		return len(v.Values)
	}
	if v.Single == "" {
		return 0
	}
	return 1
}

// Contains reports whether value is part of the selection
func (v Value) Contains(value string) bool {
	if v.Multiple {
		return slices.Contains(v.Values, value)
	}
	return value != "" && v.Single == value
}

// List returns the selection as a slice regardless of mode
func (v Value) List() []string {
	if v.Multiple {
		return slices.Clone(v.Values)
	}
	if v.Single == "" {
		return []string{}
	}
	return []string{v.Single}
}

// Clone returns a copy that shares no memory with v
func (v Value) Clone() Value {
	if v.Multiple {
		return MultiValue(v.Values...)
	}
	return v
}

// Equal reports whether two values hold the same selection in the same order
func (v Value) Equal(other Value) bool {
	if v.Multiple != other.Multiple {
		return false
	}
	if v.Multiple {
		return slices.Equal(v.Values, other.Values)
	}
	return v.Single == other.Single
}

// String renders the value the way the CLI prints it
func (v Value) String() string {
	if !v.Multiple {
		return v.Single
	}
	return "[" + strings.Join(v.Values, ", ") + "]"
}

// Props is the host-facing configuration of a dropdown
type Props struct {
	Options           Catalog
	Value             Value
	Multiple          bool
	MaxSelections     int // 0 means unlimited
	Searchable        bool
	Clearable         bool
	GroupBy           bool
	Disabled          bool
	Placeholder       string
	Label             string
	Required          bool
	HelpText          string
	ClassName         string
	DropdownClassName string
}

// DefaultPlaceholder is shown when nothing is selected and no placeholder is configured
const DefaultPlaceholder = "Select an option"
