package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the adaptive brand colors.
type Palette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
}

// Theme bundles the palette with the no-color switch.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// NewTheme returns the default theme. With noColor set every style renders plain text.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Palette{
			Primary:   lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"},
			Secondary: lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"},
			Success:   lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
			Error:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"},
			Warning:   lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"},
			Text:      lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"},
			Muted:     lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},
			Border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
		},
	}
}

// Fg returns a style with the given foreground, or a plain style in no-color mode.
func (t *Theme) Fg(c lipgloss.AdaptiveColor) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Title is the bold primary style used for headings.
func (t *Theme) Title() lipgloss.Style { return t.Fg(t.Colors.Primary).Bold(true) }

// Success styles confirmations.
func (t *Theme) Success() lipgloss.Style { return t.Fg(t.Colors.Success) }

// Error styles failures.
func (t *Theme) Error() lipgloss.Style { return t.Fg(t.Colors.Error) }

// Warning styles recoverable problems.
func (t *Theme) Warning() lipgloss.Style { return t.Fg(t.Colors.Warning) }

// Muted styles secondary text.
func (t *Theme) Muted() lipgloss.Style { return t.Fg(t.Colors.Muted) }

// Form returns a huh theme in the same palette.
func (t *Theme) Form() *huh.Theme {
	if t.NoColor {
		return huh.ThemeBase()
	}

	f := huh.ThemeBase()
	c := t.Colors

	f.Focused.Base = f.Focused.Base.BorderForeground(c.Border)
	f.Focused.Card = f.Focused.Base
	f.Focused.Title = f.Focused.Title.Foreground(c.Primary).Bold(true)
	f.Focused.Description = f.Focused.Description.Foreground(c.Muted)
	f.Focused.ErrorIndicator = f.Focused.ErrorIndicator.Foreground(c.Error)
	f.Focused.ErrorMessage = f.Focused.ErrorMessage.Foreground(c.Error)
	f.Focused.SelectSelector = f.Focused.SelectSelector.Foreground(c.Primary).SetString("▸ ")
	f.Focused.TextInput.Cursor = f.Focused.TextInput.Cursor.Foreground(c.Primary)
	f.Focused.TextInput.Placeholder = f.Focused.TextInput.Placeholder.Foreground(c.Muted)
	f.Focused.TextInput.Prompt = f.Focused.TextInput.Prompt.Foreground(c.Secondary)
	f.Focused.FocusedButton = f.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(c.Primary)
	f.Focused.BlurredButton = f.Focused.BlurredButton.
		Foreground(c.Text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	f.Focused.Next = f.Focused.FocusedButton

	f.Blurred = f.Focused
	f.Blurred.Base = f.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	f.Blurred.Card = f.Blurred.Base

	f.Group.Title = f.Focused.Title
	f.Group.Description = f.Focused.Description

	return f
}
