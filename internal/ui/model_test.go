package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kwscout/internal/config"
	"kwscout/internal/domain"
	"kwscout/internal/eventbus"
	"kwscout/internal/ui/services/bookmarks"
)

type fakeSearcher struct {
	state    domain.SearchState
	disabled bool
	queries  []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) {
	f.queries = append(f.queries, query)
}

func (f *fakeSearcher) State() domain.SearchState { return f.state }
func (f *fakeSearcher) Disabled() bool            { return f.disabled }

type fakeDebouncer struct {
	inputs  []string
	cancels int
	stops   int
}

func (f *fakeDebouncer) Input(value string) { f.inputs = append(f.inputs, value) }
func (f *fakeDebouncer) Cancel()            { f.cancels++ }
func (f *fakeDebouncer) Stop()              { f.stops++ }

func newTestModel(t *testing.T, searcher *fakeSearcher) (*Model, *fakeDebouncer) {
	t.Helper()
	deb := &fakeDebouncer{}
	m := NewModel(context.Background(), config.DefaultConfig(), searcher, deb, bookmarks.NewService())
	return m, deb
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func keyPress(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func loadedState(terms ...string) domain.SearchState {
	st := domain.SearchState{Phase: domain.PhaseLoaded}
	for _, term := range terms {
		st.Keywords = append(st.Keywords, domain.Keyword{
			Term:       term,
			Volume:     domain.LabelVolume("MoreThanTenThousand"),
			Difficulty: "EASY",
		})
	}
	return st
}

func TestTypingFeedsDebouncer(t *testing.T) {
	m, deb := newTestModel(t, &fakeSearcher{})

	typeRunes(m, "go")

	assert.Equal(t, []string{"g", "go"}, deb.inputs)
}

func TestEnterSubmitsImmediately(t *testing.T) {
	searcher := &fakeSearcher{}
	m, deb := newTestModel(t, searcher)

	typeRunes(m, "go")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, deb.cancels, "explicit submit cancels any pending commit")
	assert.Equal(t, []string{"go"}, searcher.queries)
}

func TestCommittedQueryTriggersSearch(t *testing.T) {
	searcher := &fakeSearcher{}
	m, _ := newTestModel(t, searcher)

	m.Update(EventMsg{Event: eventbus.QueryCommittedEvent{Query: "coffee"}})

	assert.Equal(t, []string{"coffee"}, searcher.queries)
}

func TestCompletedEventRefreshesState(t *testing.T) {
	searcher := &fakeSearcher{}
	m, _ := newTestModel(t, searcher)

	searcher.state = loadedState("coffee beans", "coffee maker")
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Query: "coffee"}})

	assert.Equal(t, domain.PhaseLoaded, m.state.Phase)
	assert.Equal(t, 0, m.selectedIndex)

	view := m.View()
	assert.Contains(t, view, "coffee beans")
	assert.Contains(t, view, "10,000+")
	assert.Contains(t, view, "Easy")
	assert.Contains(t, view, "2 keywords")
}

func TestBookmarkToggleOnSelection(t *testing.T) {
	searcher := &fakeSearcher{}
	m, _ := newTestModel(t, searcher)

	searcher.state = loadedState("coffee beans")
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Query: "coffee"}})

	// Move focus into the results and toggle
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.inputFocused)
	keyPress(m, " ")
	assert.True(t, m.bookmarks.Contains("coffee beans"))

	keyPress(m, " ")
	assert.False(t, m.bookmarks.Contains("coffee beans"), "second toggle restores prior state")
}

func TestResultsNavigation(t *testing.T) {
	searcher := &fakeSearcher{}
	m, _ := newTestModel(t, searcher)

	searcher.state = loadedState("a", "b", "c")
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Query: "q"}})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	keyPress(m, "j")
	keyPress(m, "j")
	assert.Equal(t, 2, m.selectedIndex)

	keyPress(m, "j") // already at bottom
	assert.Equal(t, 2, m.selectedIndex)

	keyPress(m, "g")
	assert.Equal(t, 0, m.selectedIndex)

	keyPress(m, "G")
	assert.Equal(t, 2, m.selectedIndex)

	// Up past the top returns focus to the input
	keyPress(m, "g")
	keyPress(m, "k")
	assert.True(t, m.inputFocused)
}

func TestFailedEventShowsError(t *testing.T) {
	searcher := &fakeSearcher{}
	m, _ := newTestModel(t, searcher)

	searcher.state = domain.SearchState{Phase: domain.PhaseError, Message: "quota exceeded"}
	m.Update(EventMsg{Event: eventbus.SearchFailedEvent{Query: "q", Message: "quota exceeded"}})

	assert.Contains(t, m.View(), "quota exceeded")
}

func TestEmptyResultsShowInfoAlongsideLoaded(t *testing.T) {
	searcher := &fakeSearcher{}
	m, _ := newTestModel(t, searcher)

	searcher.state = domain.SearchState{Phase: domain.PhaseLoaded, Info: "no results"}
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Query: "q", Info: "no results"}})

	view := m.View()
	assert.Contains(t, view, "no results")
	assert.NotContains(t, view, "error:")
}

func TestClearedEventResetsPanel(t *testing.T) {
	searcher := &fakeSearcher{}
	m, _ := newTestModel(t, searcher)

	searcher.state = loadedState("a")
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Query: "q"}})

	searcher.state = domain.SearchState{Phase: domain.PhaseIdle}
	m.Update(EventMsg{Event: eventbus.SearchClearedEvent{}})

	assert.Equal(t, domain.PhaseIdle, m.state.Phase)
	assert.Contains(t, m.View(), "Type a topic")
}

func TestDisabledModelBlocksInput(t *testing.T) {
	searcher := &fakeSearcher{disabled: true}
	m, deb := newTestModel(t, searcher)

	view := m.View()
	assert.Contains(t, view, "search disabled")
	assert.Contains(t, view, config.EnvAPIKey)

	typeRunes(m, "coffee")
	assert.Empty(t, deb.inputs, "disabled panel must not feed the debouncer")
	assert.Empty(t, searcher.queries)
}

func TestQuitStopsDebouncer(t *testing.T) {
	searcher := &fakeSearcher{}
	m, deb := newTestModel(t, searcher)

	searcher.state = loadedState("a")
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Query: "q"}})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, deb.stops)
}
