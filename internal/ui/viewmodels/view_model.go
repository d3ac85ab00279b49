package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"selectdrop/internal/domain"
	"selectdrop/internal/ui/input"
	"selectdrop/internal/ui/input/types"
	"selectdrop/internal/ui/logic"
	"selectdrop/internal/ui/views"
)

// Snapshot is the widget state a view is built from
type Snapshot struct {
	Props       domain.Props
	Value       domain.Value
	Open        bool
	Highlight   int // display index, or -1
	Query       string
	Sections    []logic.Section
	DisplayText string
	Placeholder bool // DisplayText is the placeholder
	ShowClear   bool
}

// ViewModel transforms widget state into view-ready data
type ViewModel struct {
	width            int
	help             help.Model
	keys             KeyMap
	showHelp         bool
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel() *ViewModel {
	return &ViewModel{
		help:             help.New(),
		keys:             DefaultKeyMap(),
		showHelp:         true,
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal width
func (vm *ViewModel) SetDimensions(width int) {
	vm.width = width
	vm.help.Width = width
}

// SetShowHelp toggles the key help line
func (vm *ViewModel) SetShowHelp(show bool) {
	vm.showHelp = show
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, textInput *textinput.Model) {
	vm.inputTransformer.SetMode(mode, textInput)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(s Snapshot) views.ViewState {
	p := s.Props
	state := views.ViewState{
		Width:             vm.width,
		Label:             p.Label,
		Required:          p.Required,
		HelpText:          p.HelpText,
		ClassName:         p.ClassName,
		DropdownClassName: p.DropdownClassName,
		Trigger: views.TriggerView{
			Role:        views.RoleButton,
			Text:        s.DisplayText,
			Placeholder: s.Placeholder,
			Disabled:    p.Disabled,
			Expanded:    s.Open,
		},
	}

	if s.ShowClear {
		state.Clear = &views.ClearView{Label: views.ClearLabel}
	}

	if s.Open {
		if p.Searchable {
			state.Search = &views.SearchView{
				Role:        views.RoleSearchbox,
				Placeholder: input.SearchPlaceholder,
				Text:        s.Query,
				Input:       vm.inputTransformer.GetInputText(),
			}
		}
		state.Listbox = vm.buildListbox(s)
	}

	if vm.showHelp {
		keys := vm.keys.ForState(s.Open, p.Multiple, s.ShowClear)
		state.Help = vm.help.View(keys)
	}

	return state
}

func (vm *ViewModel) buildListbox(s Snapshot) *views.ListboxView {
	lb := &views.ListboxView{
		Role:      views.RoleListbox,
		Multiple:  s.Props.Multiple,
		EmptyText: views.NoOptionsText,
	}

	role := views.RoleOption
	if s.Props.Multiple {
		role = views.RoleCheckbox
	}

	for _, sec := range s.Sections {
		sv := views.SectionView{}
		if s.Props.GroupBy {
			sv.Header = sec.Group
		}
		for _, item := range sec.Items {
			opt := item.Option
			sv.Options = append(sv.Options, views.OptionView{
				Role:        role,
				Index:       item.Index,
				Value:       opt.Value,
				Label:       opt.Label,
				Description: opt.Description,
				Icon:        opt.Icon,
				Disabled:    opt.Disabled,
				Selected:    s.Value.Contains(opt.Value),
				Highlighted: item.Index == s.Highlight,
			})
		}
		lb.Sections = append(lb.Sections, sv)
	}

	lb.Empty = len(lb.Sections) == 0
	return lb
}
