package selection

import "selectdrop/internal/domain"

// State holds selection state
type State struct {
	Value         domain.Value
	Multiple      bool
	MaxSelections int // 0 means unlimited
	Clearable     bool
}

// Outcome describes what a selection request did
type Outcome int

const (
	Selected   Outcome = iota // value set (single) or appended (multiple)
	Deselected                // value toggled out of a multiple selection
	RejectedDisabled
	RejectedLimit
)

// Applied reports whether the selection changed
func (o Outcome) Applied() bool {
	return o == Selected || o == Deselected
}

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case RejectedDisabled:
		return "disabled"
	case RejectedLimit:
		return "limit"
	default:
		return "unknown"
	}
}
