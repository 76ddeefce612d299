package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kwscout/internal/config"
	"kwscout/internal/domain"
	"kwscout/internal/eventbus"
	"kwscout/internal/ui/services/bookmarks"
	"kwscout/internal/ui/views"
)

// Searcher drives search cycles and owns the search state
type Searcher interface {
	Search(ctx context.Context, query string)
	State() domain.SearchState
	Disabled() bool
}

// Debouncer coalesces keystrokes into committed queries
type Debouncer interface {
	Input(value string)
	Cancel()
	Stop()
}

// Model is the root Bubble Tea model
type Model struct {
	ctx       context.Context
	keys      KeyMap
	renderer  *views.Renderer
	input     textinput.Model
	spin      spinner.Model
	searcher  Searcher
	debouncer Debouncer
	bookmarks *bookmarks.Service
	helpOps   *HelpOps

	state          domain.SearchState
	selectedIndex  int
	viewportOffset int
	width          int
	height         int
	inputFocused   bool
	statusMessage  string
	disabledReason string
}

// NewModel creates the UI model
func NewModel(ctx context.Context, cfg *config.Config, searcher Searcher, debouncer Debouncer, marks *bookmarks.Service) *Model {
	input := textinput.New()
	input.Placeholder = "search keywords…"
	input.CharLimit = 200
	input.Width = 48

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	styles := views.NewStyles()
	renderer := views.NewRenderer(styles, cfg.UISettings.ShowVolume, cfg.UISettings.ShowDifficulty)

	m := &Model{
		ctx:       ctx,
		keys:      DefaultKeyMap(),
		renderer:  renderer,
		input:     input,
		spin:      spin,
		searcher:  searcher,
		debouncer: debouncer,
		bookmarks: marks,
		state:     searcher.State(),
		width:     80,
		height:    24,
	}

	if searcher.Disabled() {
		// Input stays blurred for good; the banner explains why
		m.disabledReason = config.ErrMissingAPIKey.Error()
	} else {
		m.inputFocused = true
		m.input.Focus()
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase == domain.PhaseLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.statusMessage = "help: " + msg.err.Error()
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleEvent reacts to forwarded domain events. The model re-reads the
// orchestrator's state instead of trusting event payloads, so the panel
// always reflects the latest applied transition.
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch ev := event.(type) {
	case eventbus.QueryCommittedEvent:
		m.searcher.Search(m.ctx, ev.Query)
		return m, nil

	case eventbus.SearchStartedEvent:
		m.refreshState()
		return m, m.spin.Tick

	case eventbus.SearchCompletedEvent:
		m.refreshState()
		m.selectedIndex = 0
		m.viewportOffset = 0
		return m, nil

	case eventbus.SearchFailedEvent:
		m.refreshState()
		return m, nil

	case eventbus.SearchClearedEvent:
		m.refreshState()
		m.selectedIndex = 0
		m.viewportOffset = 0
		return m, nil

	case eventbus.ErrorEvent:
		m.statusMessage = ev.Message
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.debouncer.Stop()
		return m, tea.Quit
	}

	if m.disabledReason != "" {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.inputFocused {
		return m.handleInputKey(msg)
	}
	return m.handleResultsKey(msg)
}

// handleInputKey processes keys while the query input has focus
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		// Explicit submit bypasses the quiet interval
		m.debouncer.Cancel()
		m.searcher.Search(m.ctx, m.input.Value())
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		if len(m.state.Keywords) > 0 {
			m.inputFocused = false
			m.input.Blur()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.debouncer.Input(m.input.Value())
	}
	return m, cmd
}

// handleResultsKey processes keys while the results list has focus
func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.debouncer.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		} else {
			m.inputFocused = true
			m.input.Focus()
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIndex < len(m.state.Keywords)-1 {
			m.selectedIndex++
		}

	case key.Matches(msg, m.keys.Top):
		m.selectedIndex = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.state.Keywords) > 0 {
			m.selectedIndex = len(m.state.Keywords) - 1
		}

	case key.Matches(msg, m.keys.Bookmark):
		if kw, ok := m.selectedKeyword(); ok {
			m.bookmarks.Toggle(kw.Term)
		}

	case key.Matches(msg, m.keys.FocusInput):
		m.inputFocused = true
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()
	}

	m.scrollToSelection()
	return m, nil
}

func (m *Model) selectedKeyword() (domain.Keyword, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.state.Keywords) {
		return domain.Keyword{}, false
	}
	return m.state.Keywords[m.selectedIndex], true
}

func (m *Model) refreshState() {
	m.state = m.searcher.State()
	if m.selectedIndex >= len(m.state.Keywords) {
		m.selectedIndex = 0
		m.viewportOffset = 0
	}
	if len(m.state.Keywords) == 0 {
		// Nothing to navigate, return focus to the input
		m.inputFocused = true
		m.input.Focus()
	}
}

func (m *Model) scrollToSelection() {
	visible := m.height - 10
	if visible < 3 {
		visible = 3
	}
	if m.selectedIndex < m.viewportOffset {
		m.viewportOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.viewportOffset+visible {
		m.viewportOffset = m.selectedIndex - visible + 1
	}
}

func (m *Model) showHelp() tea.Cmd {
	content := NewHelpRenderer().renderHelpContent()
	return func() tea.Msg {
		if m.helpOps == nil {
			return helpPagerMsg{}
		}
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	marked := make(map[string]bool, m.bookmarks.Count())
	for _, term := range m.bookmarks.Terms() {
		marked[term] = true
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		InputView:      m.input.View(),
		InputFocused:   m.inputFocused,
		Disabled:       m.disabledReason != "",
		DisabledReason: m.disabledReason,
		Phase:          m.state.Phase,
		Keywords:       m.state.Keywords,
		ErrorMessage:   m.state.Message,
		InfoMessage:    m.state.Info,
		SelectedIndex:  m.selectedIndex,
		ViewportOffset: m.viewportOffset,
		Bookmarked:     marked,
		BookmarkCount:  m.bookmarks.Count(),
		SpinnerView:    m.spin.View(),
		StatusMessage:  m.statusMessage,
	})
}
