package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/logger"
	"selectdrop/internal/ui/input"
	inputtypes "selectdrop/internal/ui/input/types"
	"selectdrop/internal/ui/logic"
	"selectdrop/internal/ui/services/navigation"
	"selectdrop/internal/ui/services/search"
	"selectdrop/internal/ui/services/selection"
	"selectdrop/internal/ui/viewmodels"
	"selectdrop/internal/ui/views"
)

// Model is the dropdown widget
type Model struct {
	bus   eventbus.EventBus
	log   *logger.Logger
	props domain.Props

	// UI-specific state
	width       int
	inPagerMode bool // an external pager owns the terminal
	quitting    bool
	aborted     bool // quit with ctrl+c
	hideKeyHelp bool

	// Services
	selection  *selection.Service
	search     *search.Service
	navigation *navigation.Service

	formatter    *logic.Formatter
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a dropdown from props. A nil bus drops notifications,
// a nil formatter uses the built-in display formats.
func NewModel(props domain.Props, bus eventbus.EventBus, log *logger.Logger, formatter *logic.Formatter) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if log == nil {
		log = logger.Discard()
	}
	if formatter == nil {
		formatter = logic.DefaultFormatter()
	}

	m := &Model{
		bus:          bus,
		log:          log,
		selection:    selection.NewService(bus, log),
		search:       search.NewService(bus, log),
		navigation:   navigation.NewService(bus, log),
		formatter:    formatter,
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}

	// Opening and closing both discard the search text
	m.navigation.SetResetFunction(func() {
		m.search.Reset()
		m.inputHandler.SetText("")
	})

	m.SetProps(props)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetProps applies a full set of props from the host
func (m *Model) SetProps(props domain.Props) {
	props.Options = cloneCatalog(props.Options)
	m.props = props
	m.props.Value = domain.Value{} // the selection service owns the value

	m.selection.Configure(props.Multiple, props.MaxSelections, props.Clearable)
	m.selection.SetValue(props.Value)
	m.search.SetEnabled(props.Searchable)
	m.navigation.SetDisabled(props.Disabled)
	m.navigation.Reconcile(m.displayItems())
	m.syncMode()
}

// SetOptions replaces the option catalog
func (m *Model) SetOptions(options domain.Catalog) {
	m.props.Options = cloneCatalog(options)
	m.navigation.Reconcile(m.displayItems())
}

// SetValue replaces the selection with one chosen by the host. No notification is sent.
func (m *Model) SetValue(v domain.Value) {
	m.selection.SetValue(v)
}

// SetDisabled enables or disables the widget; disabling closes an open panel
func (m *Model) SetDisabled(disabled bool) {
	m.props.Disabled = disabled
	m.navigation.SetDisabled(disabled)
	m.syncMode()
}

// Props returns the props the widget is rendering
func (m *Model) Props() domain.Props {
	p := m.props
	p.Options = cloneCatalog(p.Options)
	p.Value = m.selection.Value()
	return p
}

// Value returns the current selection
func (m *Model) Value() domain.Value {
	return m.selection.Value()
}

// IsOpen reports whether the option panel is shown
func (m *Model) IsOpen() bool {
	return m.navigation.IsOpen()
}

// SearchText returns the current search text
func (m *Model) SearchText() string {
	return m.search.GetQuery()
}

// VisibleOptions returns the options matching the search text, in catalog order
func (m *Model) VisibleOptions() domain.Catalog {
	return m.search.Visible(m.props.Options)
}

// Sections returns the visible options as they are displayed
func (m *Model) Sections() []logic.Section {
	sections, _ := logic.Arrange(m.props.Options, m.search.GetQuery(), m.props.GroupBy)
	return sections
}

// Highlight returns the display index of the highlighted option
func (m *Model) Highlight() (int, bool) {
	return m.navigation.GetHighlight()
}

// HighlightedOption returns the highlighted option
func (m *Model) HighlightedOption() (domain.Option, bool) {
	idx, ok := m.navigation.GetHighlight()
	if !ok {
		return domain.Option{}, false
	}
	items := m.displayItems()
	if idx >= len(items) {
		return domain.Option{}, false
	}
	return items[idx], true
}

// DisplayText returns the text shown on the trigger
func (m *Model) DisplayText() string {
	return m.formatter.DisplayText(m.props, m.selection.Value())
}

// CanClear reports whether the clear control is shown
func (m *Model) CanClear() bool {
	return !m.props.Disabled && m.selection.CanClear()
}

// IsEmptyState reports whether an open panel shows the "no options" text
func (m *Model) IsEmptyState() bool {
	return m.IsOpen() && len(m.VisibleOptions()) == 0
}

// Aborted reports whether the user quit with ctrl+c
func (m *Model) Aborted() bool {
	return m.aborted
}

// IsDisabled implements inputtypes.Context
func (m *Model) IsDisabled() bool {
	return m.props.Disabled
}

// IsMultiple implements inputtypes.Context
func (m *Model) IsMultiple() bool {
	return m.selection.IsMultiple()
}

// HasHighlight implements inputtypes.Context
func (m *Model) HasHighlight() bool {
	_, ok := m.navigation.GetHighlight()
	return ok
}

// ClickTrigger toggles the panel
func (m *Model) ClickTrigger() tea.Cmd {
	m.navigation.Toggle()
	return m.syncMode()
}

// ClickOption commits the visible option with value, if any
func (m *Model) ClickOption(value string) tea.Cmd {
	if !m.IsOpen() {
		return nil
	}
	for i, opt := range m.displayItems() {
		if opt.Value == value {
			m.navigation.MoveToIndex(i, m.displayItems())
			return m.commit(opt)
		}
	}
	m.log.Debug().Str("value", value).Msg("Clicked option not visible")
	return nil
}

// ClickClear presses the clear control. The panel is left as it is.
func (m *Model) ClickClear() {
	if !m.CanClear() {
		return
	}
	m.selection.Clear()
}

// ClickOutside closes an open panel
func (m *Model) ClickOutside() tea.Cmd {
	m.navigation.Close()
	return m.syncMode()
}

// TypeSearch replaces the search text as if the user typed it
func (m *Model) TypeSearch(text string) {
	if !m.IsOpen() || !m.search.IsEnabled() {
		return
	}
	m.inputHandler.SetText(text)
	m.updateSearch(text)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewModel.SetDimensions(msg.Width)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.BlurMsg:
		// the terminal lost focus
		return m, m.ClickOutside()

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("Help pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// cursor blink
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting || m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.ViewState())
}

// ViewState returns what the view shows, roles included
func (m *Model) ViewState() views.ViewState {
	sections, _ := logic.Arrange(m.props.Options, m.search.GetQuery(), m.props.GroupBy)
	highlight := navigation.NoHighlight
	if idx, ok := m.navigation.GetHighlight(); ok {
		highlight = idx
	}

	value := m.selection.Value()
	text, placeholder := m.formatter.Display(m.props, value)

	return m.viewModel.BuildViewState(viewmodels.Snapshot{
		Props:       m.props,
		Value:       value,
		Open:        m.navigation.IsOpen(),
		Highlight:   highlight,
		Query:       m.search.GetQuery(),
		Sections:    sections,
		DisplayText: text,
		Placeholder: placeholder,
		ShowClear:   m.CanClear(),
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug().Str("action", action.Type()).Msg("Processing action")

	switch a := action.(type) {
	case inputtypes.OpenAction:
		m.navigation.Open()
		return m.syncMode()

	case inputtypes.CloseAction:
		m.navigation.Close()
		return m.syncMode()

	case inputtypes.NavigateAction:
		m.navigation.Navigate(navigation.Direction(a.Direction), m.displayItems())
		return nil

	case inputtypes.CommitAction:
		opt, ok := m.HighlightedOption()
		if !ok {
			return nil
		}
		return m.commit(opt)

	case inputtypes.ClearAction:
		m.ClickClear()
		return nil

	case inputtypes.UpdateTextAction:
		m.updateSearch(a.Text)
		return nil

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			// no terminal to hand over; toggle the key line instead
			m.hideKeyHelp = !m.hideKeyHelp
			m.viewModel.SetShowHelp(!m.hideKeyHelp)
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		m.quitting = true
		m.aborted = a.Force
		return tea.Quit
	}

	return nil
}

// commit selects opt; a single selection closes the panel afterwards
func (m *Model) commit(opt domain.Option) tea.Cmd {
	outcome := m.selection.Select(opt)
	if !outcome.Applied() || m.props.Multiple {
		return nil
	}
	m.navigation.Close()
	return m.syncMode()
}

func (m *Model) updateSearch(text string) {
	if m.search.SetQuery(text) {
		m.navigation.Reconcile(m.displayItems())
	}
}

// displayItems returns the visible options in display order; highlight indexes into it
func (m *Model) displayItems() domain.Catalog {
	_, items := logic.Arrange(m.props.Options, m.search.GetQuery(), m.props.GroupBy)
	return items
}

// syncMode points the input handler at the mode matching the panel state
func (m *Model) syncMode() tea.Cmd {
	mode := inputtypes.ModeClosed
	if m.navigation.IsOpen() {
		mode = inputtypes.ModeOpen
		if m.search.IsEnabled() {
			mode = inputtypes.ModeSearch
		}
	}
	cmd := m.inputHandler.SetMode(mode, m)
	m.viewModel.SetInputMode(mode, m.inputHandler.TextInput())
	return cmd
}

func cloneCatalog(c domain.Catalog) domain.Catalog {
	if c == nil {
		return nil
	}
	return append(domain.Catalog(nil), c...)
}
