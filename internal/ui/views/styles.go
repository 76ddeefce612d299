package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Banner       lipgloss.Style
	InputBox     lipgloss.Style
	Term         lipgloss.Style
	TermSelected lipgloss.Style
	Metric       lipgloss.Style
	MetricName   lipgloss.Style
	Star         lipgloss.Style
	StarEmpty    lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	StatusError  lipgloss.Style
	StatusInfo   lipgloss.Style
	Loading      lipgloss.Style
	SelectionBg  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 1),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Term:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TermSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Metric:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		MetricName:   lipgloss.NewStyle().Faint(true),
		Star:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		StarEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:         lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// GetDifficultyColor returns the color for a formatted difficulty label
func GetDifficultyColor(difficulty string) string {
	switch difficulty {
	case "Easy":
		return "78" // green
	case "Medium":
		return "214" // yellow
	case "Hard":
		return "203" // red
	default:
		return "241" // gray
	}
}
