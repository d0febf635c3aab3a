package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cardStyle returns a lipgloss style for a rounded-border card.
func (t *Theme) cardStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(t.Colors.Border)
	}
	return s
}

// Card renders content inside a rounded border box with a styled title.
func (t *Theme) Card(title, content string) string {
	body := t.Title().Render(title) + "\n\n" + content
	return t.cardStyle().Render(body)
}

// SuccessCard renders a check-marked title and optional detail lines.
func (t *Theme) SuccessCard(title string, details ...string) string {
	return t.statusCard(t.Success().Render("✓")+" "+title, details)
}

// ErrorCard renders a cross-marked title and optional detail lines.
func (t *Theme) ErrorCard(title string, details ...string) string {
	return t.statusCard(t.Error().Render("✗")+" "+title, details)
}

func (t *Theme) statusCard(titleLine string, details []string) string {
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.cardStyle().Render(body.String())
}
