package host

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrDuplicateTab indicates a tab title was added twice.
var ErrDuplicateTab = errors.New("host: duplicate settings tab")

// Tab is one titled page of the settings panel.
type Tab struct {
	Title string
	Model tea.Model
}

// TerminalPanel is a Panel that collects tabs and runs them as terminal programs.
type TerminalPanel struct {
	tabs []Tab
}

// NewTerminalPanel creates an empty panel.
func NewTerminalPanel() *TerminalPanel {
	return &TerminalPanel{}
}

// AddTab implements Panel.
func (p *TerminalPanel) AddTab(title string, model tea.Model) error {
	for _, t := range p.tabs {
		if t.Title == title {
			return fmt.Errorf("%w: %s", ErrDuplicateTab, title)
		}
	}
	p.tabs = append(p.tabs, Tab{Title: title, Model: model})
	return nil
}

// Tabs returns the tabs in insertion order.
func (p *TerminalPanel) Tabs() []Tab {
	out := make([]Tab, len(p.tabs))
	copy(out, p.tabs)
	return out
}

// Run shows each tab in turn until the user quits it or ctx is cancelled.
func (p *TerminalPanel) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	for _, t := range p.tabs {
		prog := tea.NewProgram(t.Model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)
		if _, err := prog.Run(); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("settings tab %q: %w", t.Title, err)
		}
	}
	return nil
}
