package views

import (
	"fmt"
	"strings"

	"kwscout/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	InputView      string
	InputFocused   bool
	Disabled       bool
	DisabledReason string
	Phase          domain.SearchPhase
	Keywords       []domain.Keyword
	ErrorMessage   string
	InfoMessage    string
	SelectedIndex  int
	ViewportOffset int
	Bookmarked     map[string]bool
	BookmarkCount  int
	SpinnerView    string
	StatusMessage  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	keywordRender *KeywordRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles, showVolume, showDifficulty bool) *Renderer {
	return &Renderer{
		styles:        styles,
		keywordRender: NewKeywordRenderer(styles, showVolume, showDifficulty),
	}
}

// Render produces the full screen for the current state
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("kwscout"))
	b.WriteString("\n")

	// Permanent configuration banner replaces the input entirely
	if state.Disabled {
		b.WriteString(r.styles.Banner.Render("search disabled: " + state.DisabledReason))
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render("q quit"))
		return r.styles.Main.Render(b.String())
	}

	b.WriteString(r.styles.InputBox.Render(state.InputView))
	b.WriteString("\n")

	b.WriteString(r.renderBody(state))

	b.WriteString(r.renderStatusLine(state))
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render(r.helpLine(state)))

	return r.styles.Main.Render(b.String())
}

func (r *Renderer) renderBody(state ViewState) string {
	var b strings.Builder

	switch state.Phase {
	case domain.PhaseIdle:
		b.WriteString(r.styles.Dim.Render("Type a topic to find keyword ideas."))
		b.WriteString("\n")

	case domain.PhaseLoading:
		b.WriteString(r.styles.Loading.Render(state.SpinnerView + " searching…"))
		b.WriteString("\n")

	case domain.PhaseError:
		b.WriteString(r.styles.StatusError.Render("error: " + state.ErrorMessage))
		b.WriteString("\n")

	case domain.PhaseLoaded:
		if state.InfoMessage != "" {
			b.WriteString(r.styles.StatusInfo.Render(state.InfoMessage))
			b.WriteString("\n")
		}
		b.WriteString(r.renderKeywordList(state))
	}

	return b.String()
}

func (r *Renderer) renderKeywordList(state ViewState) string {
	var b strings.Builder

	visible := state.Height - 10
	if visible < 3 {
		visible = 3
	}

	start := state.ViewportOffset
	if start > len(state.Keywords) {
		start = len(state.Keywords)
	}
	end := start + visible
	if end > len(state.Keywords) {
		end = len(state.Keywords)
	}

	for i := start; i < end; i++ {
		kw := state.Keywords[i]
		line := r.keywordRender.RenderKeyword(
			kw,
			i == state.SelectedIndex && !state.InputFocused,
			state.Bookmarked[kw.Term],
			state.Width,
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if end < len(state.Keywords) {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("  … %d more", len(state.Keywords)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) renderStatusLine(state ViewState) string {
	var parts []string

	if state.Phase == domain.PhaseLoaded && len(state.Keywords) > 0 {
		parts = append(parts, fmt.Sprintf("%d keywords", len(state.Keywords)))
	}
	if state.BookmarkCount > 0 {
		parts = append(parts, fmt.Sprintf("%d bookmarked", state.BookmarkCount))
	}
	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}

	return r.styles.Status.Render(strings.Join(parts, " · "))
}

func (r *Renderer) helpLine(state ViewState) string {
	if state.InputFocused {
		return "enter search · tab results · ? help · ctrl+c quit"
	}
	return "j/k move · space bookmark · / edit query · ? help · q quit"
}
