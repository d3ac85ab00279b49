package views

import (
	"fmt"
	"strings"
)

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	if state.Label != "" {
		label := r.styles.Label.Render(state.Label)
		if state.Required {
			label += " " + r.styles.Required.Render(RequiredMarker)
		}
		content.WriteString(label)
		content.WriteString("\n")
	}

	content.WriteString(r.renderTrigger(state))
	content.WriteString("\n")

	if state.Listbox != nil {
		content.WriteString(r.renderPanel(state))
		content.WriteString("\n")
	}

	if state.HelpText != "" {
		content.WriteString(r.styles.HelpText.Render(state.HelpText))
		content.WriteString("\n")
	}

	if state.Help != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return content.String()
}

func (r *Renderer) renderTrigger(state ViewState) string {
	t := state.Trigger

	text := t.Text
	if t.Placeholder {
		text = r.styles.Placeholder.Render(text)
	}

	arrow := "▾"
	if t.Expanded {
		arrow = "▴"
	}

	line := fmt.Sprintf("%s %s", text, arrow)
	if state.Clear != nil {
		line = fmt.Sprintf("%s %s", line, r.styles.Clear.Render("✕"))
	}

	style := r.styles.Trigger
	if t.Expanded {
		style = r.styles.TriggerOpen
	}
	if width := r.innerWidth(state); width > 0 {
		style = style.Width(width)
	}

	rendered := style.Render(line)
	if t.Disabled {
		rendered = r.styles.Disabled.Render(rendered)
	}
	return rendered
}

func (r *Renderer) renderPanel(state ViewState) string {
	lb := state.Listbox
	var lines []string

	if state.Search != nil {
		input := state.Search.Input
		if input == "" {
			input = state.Search.Text
		}
		lines = append(lines, r.styles.Search.Render("/ ")+input)
	}

	if lb.Empty {
		lines = append(lines, r.styles.Dim.Render("  "+lb.EmptyText))
	}

	for _, sec := range lb.Sections {
		if sec.Header != "" {
			lines = append(lines, r.styles.GroupHeader.Render(sec.Header))
		}
		for _, opt := range sec.Options {
			lines = append(lines, r.renderOption(opt, lb.Multiple, sec.Header != ""))
		}
	}

	style := r.styles.Panel
	if width := r.innerWidth(state); width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderOption(opt OptionView, multiple, indented bool) string {
	var b strings.Builder

	if indented {
		b.WriteString("  ")
	}

	if multiple {
		if opt.Selected {
			b.WriteString(SelectedMarker)
		} else {
			b.WriteString(UnselectedMarker)
		}
		b.WriteString(" ")
	} else if opt.Selected {
		b.WriteString("✓ ")
	} else {
		b.WriteString("  ")
	}

	if opt.Icon != "" {
		b.WriteString(opt.Icon)
		b.WriteString(" ")
	}

	label := opt.Label
	if opt.Selected {
		label = r.styles.Selected.Render(label)
	}
	b.WriteString(label)

	if opt.Description != "" {
		b.WriteString(" ")
		b.WriteString(r.styles.Description.Render(opt.Description))
	}

	line := b.String()
	switch {
	case opt.Disabled:
		line = r.styles.Disabled.Render(line)
	case opt.Highlighted:
		line = r.styles.HighlightBg.Render(line)
	}
	return line
}

// innerWidth returns the content width for bordered boxes, or 0 to size to content
func (r *Renderer) innerWidth(state ViewState) int {
	if state.Width <= 0 {
		return 0
	}
	w := state.Width - 4 // border + padding
	if w < 10 {
		return 0
	}
	return w
}
