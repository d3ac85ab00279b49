package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/ui/input/types"
)

// ClosedMode handles keys while the trigger is focused and the panel hidden
type ClosedMode struct{}

func NewClosedMode() *ClosedMode {
	return &ClosedMode{}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEnter, tea.KeySpace, tea.KeyDown:
		if ctx.IsDisabled() {
			return nil, true
		}
		return []types.Action{types.OpenAction{}}, true

	case tea.KeyDelete, tea.KeyBackspace:
		if ctx.CanClear() {
			return []types.Action{types.ClearAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case " ":
		// some terminals report space as a rune
		if ctx.IsDisabled() {
			return nil, true
		}
		return []types.Action{types.OpenAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
