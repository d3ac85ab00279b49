package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/ui/input/modes"
	"selectdrop/internal/ui/input/types"
)

// SearchPlaceholder is shown in the empty search field
const SearchPlaceholder = "Search..."

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search field of the open panel
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeClosed,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeClosed] = modes.NewClosedMode()
	h.modes[types.ModeOpen] = modes.NewOpenMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)

	return h
}

// HandleKey translates a key into actions for the current mode.
// In search mode, keys the mode does not consume edit the search text.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || !h.isTextMode(h.currentMode) {
		return actions, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.UpdateTextAction{Text: after})
	}
	return actions, cmd
}

// SetMode switches modes, running the exit and enter hooks.
// It is a no-op when mode is already current.
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}

	if old := h.modes[h.currentMode]; old != nil {
		old.Exit(ctx)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		next.Enter(ctx)
	}

	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

// TextInput returns the search field while it is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// SetText replaces the search field content without producing actions
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
