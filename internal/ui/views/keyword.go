package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kwscout/internal/domain"
	"kwscout/internal/search"
)

// KeywordRenderer handles rendering of keyword cards
type KeywordRenderer struct {
	styles         *Styles
	showVolume     bool
	showDifficulty bool
}

// NewKeywordRenderer creates a new keyword renderer
func NewKeywordRenderer(styles *Styles, showVolume, showDifficulty bool) *KeywordRenderer {
	return &KeywordRenderer{
		styles:         styles,
		showVolume:     showVolume,
		showDifficulty: showDifficulty,
	}
}

// RenderKeyword renders one keyword card line: bookmark star, term, and the
// formatted metrics
func (r *KeywordRenderer) RenderKeyword(kw domain.Keyword, isSelected bool, isBookmarked bool, width int) string {
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}

	withBg := func(s lipgloss.Style) lipgloss.Style {
		if bgColor != "" {
			return s.Background(lipgloss.Color(bgColor))
		}
		return s
	}

	var parts []string

	// Cursor marker
	marker := "  "
	if isSelected {
		marker = "▸ "
	}
	parts = append(parts, withBg(lipgloss.NewStyle()).Render(marker))

	// Bookmark star
	if isBookmarked {
		parts = append(parts, withBg(r.styles.Star).Render("★"))
	} else {
		parts = append(parts, withBg(r.styles.StarEmpty).Render("☆"))
	}
	parts = append(parts, " ")

	// Term
	termStyle := r.styles.Term
	if isSelected {
		termStyle = r.styles.TermSelected
	}
	term := kw.Term
	if maxTerm := width - 30; maxTerm > 8 && len(term) > maxTerm {
		term = term[:maxTerm-1] + "…"
	}
	parts = append(parts, withBg(termStyle).Render(term))

	// Metrics, reconciled from either representation only here
	if r.showVolume {
		parts = append(parts, "  ")
		parts = append(parts, withBg(r.styles.MetricName).Render("vol "))
		parts = append(parts, withBg(r.styles.Metric).Render(search.FormatVolume(kw.Volume)))
	}
	if r.showDifficulty {
		difficulty := search.FormatDifficulty(kw.Difficulty)
		diffStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(GetDifficultyColor(difficulty)))
		parts = append(parts, "  ")
		parts = append(parts, withBg(r.styles.MetricName).Render("kd "))
		parts = append(parts, withBg(diffStyle).Render(difficulty))
	}

	return strings.Join(parts, "")
}
