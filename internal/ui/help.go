package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// helpEntry is one key line of the help screen
type helpEntry struct {
	keys string
	desc string
}

// helpSection is a titled block of key lines
type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{
		title: "Closed",
		entries: []helpEntry{
			{"Enter, Space, ↓", "Open the option list"},
			{"Del, Backspace", "Clear the selection (when clearable)"},
		},
	},
	{
		title: "Open",
		entries: []helpEntry{
			{"↑/↓, Ctrl+P/N", "Move the highlight"},
			{"Home/End", "First/last option (without search)"},
			{"j/k", "Move the highlight (without search)"},
			{"Enter", "Select the highlighted option"},
			{"Space", "Select the highlighted option (without search)"},
			{"Esc, Tab", "Close the option list"},
			{"typing", "Filter options (searchable lists)"},
		},
	},
	{
		title: "Other",
		entries: []helpEntry{
			{"?", "Show this help"},
			{"q", "Quit"},
			{"Ctrl+C", "Quit without a value"},
		},
	},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, sec := range helpSections {
		for _, e := range sec.entries {
			width = max(width, lipgloss.Width(e.keys))
		}
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("selectdrop Help"))
	help.WriteString("\n")

	for i, sec := range helpSections {
		help.WriteString(sectionStyle.Render(sec.title))
		help.WriteString("\n")
		for _, e := range sec.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.keys))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(e.keys), pad, descStyle.Render(e.desc)))
		}
		if i < len(helpSections)-1 {
			help.WriteString("\n")
		}
	}

	return strings.TrimSuffix(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// let ov exit fully before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}
