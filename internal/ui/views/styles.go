package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Label       lipgloss.Style
	Required    lipgloss.Style
	Trigger     lipgloss.Style
	TriggerOpen lipgloss.Style
	Placeholder lipgloss.Style
	Disabled    lipgloss.Style
	Clear       lipgloss.Style
	Panel       lipgloss.Style
	Search      lipgloss.Style
	GroupHeader lipgloss.Style
	Option      lipgloss.Style
	HighlightBg lipgloss.Style
	Selected    lipgloss.Style
	Description lipgloss.Style
	Dim         lipgloss.Style
	HelpText    lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Label:    lipgloss.NewStyle().Bold(true),
		Required: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Trigger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		TriggerOpen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Disabled:    lipgloss.NewStyle().Faint(true),
		Clear:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Search:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		GroupHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Option:      lipgloss.NewStyle(),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:         lipgloss.NewStyle().Faint(true),
		HelpText:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
