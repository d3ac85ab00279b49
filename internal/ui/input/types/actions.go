package types

// Panel actions
type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

type CloseAction struct{}

func (a CloseAction) Type() string { return "close" }

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// CommitAction selects the highlighted option, like clicking it
type CommitAction struct{}

func (a CommitAction) Type() string { return "commit" }

type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
