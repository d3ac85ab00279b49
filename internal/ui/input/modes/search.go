package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"selectdrop/internal/ui/input/types"
)

// SearchMode is the open panel of a searchable dropdown: list keys navigate,
// everything else edits the search text
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}
