package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"selectdrop/internal/ui/input/types"
)

// InputTransformer turns the search field into view text
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{
		mode: types.ModeClosed,
	}
}

// SetMode sets the current input mode and the field it reads from.
// textInput may be nil outside search mode.
func (it *InputTransformer) SetMode(mode types.Mode, textInput *textinput.Model) {
	it.mode = mode
	it.textInput = textInput
}

// GetInputText returns the rendered search field, cursor included
func (it *InputTransformer) GetInputText() string {
	if it.mode != types.ModeSearch || it.textInput == nil {
		return ""
	}
	return it.textInput.View()
}
