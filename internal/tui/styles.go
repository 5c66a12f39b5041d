package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by all screens.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style

	Answer         lipgloss.Style
	AnswerSelected lipgloss.Style
	AnswerCorrect  lipgloss.Style
	AnswerWrong    lipgloss.Style

	StatusBar lipgloss.Style
}

func DefaultStyles() Styles {
	var (
		primary = lipgloss.Color("99")
		green   = lipgloss.Color("42")
		red     = lipgloss.Color("196")
		yellow  = lipgloss.Color("220")
		gray    = lipgloss.Color("241")
	)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle: lipgloss.NewStyle().Foreground(gray),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),
		Label:   lipgloss.NewStyle().Bold(true),
		Value:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(gray),
		Error:   lipgloss.NewStyle().Foreground(red),
		Success: lipgloss.NewStyle().Foreground(green),
		Warning: lipgloss.NewStyle().Foreground(yellow),

		Answer:         lipgloss.NewStyle().PaddingLeft(2),
		AnswerSelected: lipgloss.NewStyle().PaddingLeft(0).Bold(true).Foreground(primary),
		AnswerCorrect:  lipgloss.NewStyle().PaddingLeft(2).Foreground(green),
		AnswerWrong:    lipgloss.NewStyle().PaddingLeft(2).Foreground(red),

		StatusBar: lipgloss.NewStyle().Foreground(gray).MarginTop(1),
	}
}
