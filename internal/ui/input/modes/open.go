package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/ui/input/types"
)

// OpenMode handles list keys on a non-searchable open panel
type OpenMode struct{}

func NewOpenMode() *OpenMode {
	return &OpenMode{}
}

func (m *OpenMode) Name() string {
	return "open"
}

func (m *OpenMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OpenMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OpenMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := listKeys(msg, ctx); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeySpace:
		return commitIfHighlighted(ctx), true
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	switch msg.String() {
	case " ":
		return commitIfHighlighted(ctx), true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	}

	return nil, false
}

// listKeys handles the keys shared by every open mode
func listKeys(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc, tea.KeyTab:
		return []types.Action{types.CloseAction{}}, true
	case tea.KeyDown, tea.KeyCtrlN:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyUp, tea.KeyCtrlP:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyEnter:
		return commitIfHighlighted(ctx), true
	}
	return nil, false
}

func commitIfHighlighted(ctx types.Context) []types.Action {
	if !ctx.HasHighlight() {
		return nil
	}
	return []types.Action{types.CommitAction{}}
}
