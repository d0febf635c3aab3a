package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alta-arts/fileicons/internal/association"
	"github.com/alta-arts/fileicons/internal/ui"
)

// TabTitle is the settings tab label.
const TabTitle = "File Icon Associations"

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmRemove
	modeConfirmReset
)

// storeChangedMsg is sent when the store file changed on disk.
type storeChangedMsg struct{}

// Model is the bubbletea model of the settings tab: a table of
// associations with add and remove dialogs.
type Model struct {
	editor *Editor
	theme  *ui.Theme

	table   table.Model
	form    *huh.Form
	request *AddRequest
	confirm *bool
	pending int
	mode    mode

	status  string
	err     error
	changes <-chan struct{}
}

// NewModel creates the table model for ed. changes may be nil; when set,
// each receive reloads the table.
func NewModel(ed *Editor, theme *ui.Theme, changes <-chan struct{}) *Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "File Type", Width: 10},
			{Title: "Icon Path", Width: 48},
			{Title: "Icon", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	if !theme.NoColor {
		styles := table.DefaultStyles()
		styles.Header = styles.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Colors.Border).
			BorderBottom(true).
			Bold(true)
		styles.Selected = styles.Selected.
			Foreground(theme.Colors.Text).
			Background(theme.Colors.Primary)
		t.SetStyles(styles)
	}

	m := &Model{editor: ed, theme: theme, table: t, changes: changes}
	m.load()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.form != nil {
		return tea.Batch(m.form.Init(), waitForChange(m.changes))
	}
	return waitForChange(m.changes)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		if m.mode == modeBrowse {
			m.load()
		}
		return m, waitForChange(m.changes)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEsc && m.mode != modeBrowse {
			if m.mode == modeConfirmReset {
				return m, tea.Quit
			}
			m.closeForm()
			return m, nil
		}
	}

	if m.mode != modeBrowse {
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			return m, tea.Quit
		case "a", "+":
			return m, m.startAdd()
		case "d", "x", "delete", "-":
			return m, m.startRemove()
		case "r":
			m.load()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode != modeBrowse && m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(m.theme.Title().Render(TabTitle))
	b.WriteString("\n\n")
	if m.editor.Len() == 0 {
		b.WriteString(m.theme.Muted().Render("No associations yet. Press a to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(m.theme.Error().Render(m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.theme.Success().Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Muted().Render("a add • d remove • r reload • q quit"))
	b.WriteString("\n")
	return b.String()
}

// Err returns the last error shown in the status line.
func (m *Model) Err() error { return m.err }

// Status returns the last success message shown in the status line.
func (m *Model) Status() string { return m.status }

// load reloads the editor and refreshes the table. A corrupt store
// switches to the reset prompt.
func (m *Model) load() {
	err := m.editor.Reload()
	var corrupt *association.StoreCorruptError
	if errors.As(err, &corrupt) {
		m.err = err
		m.startReset(corrupt)
		return
	}
	m.err = err
	m.refresh()
}

func (m *Model) refresh() {
	rows := m.editor.Rows()
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		mark := "✓"
		if !r.Present {
			mark = "✗"
		}
		out[i] = table.Row{r.Extension, r.IconPath, mark}
	}
	m.table.SetRows(out)
	if c := m.table.Cursor(); c >= len(out) && len(out) > 0 {
		m.table.SetCursor(len(out) - 1)
	}
}

func (m *Model) resize(width, height int) {
	if width > 30 {
		cols := m.table.Columns()
		cols[1].Width = width - cols[0].Width - cols[2].Width - 8
		m.table.SetColumns(cols)
	}
	if height > 10 {
		m.table.SetHeight(height - 8)
	}
}

func (m *Model) startAdd() tea.Cmd {
	m.request = &AddRequest{}
	m.form = NewAddForm(m.theme, m.editor.Store().IconTypes(), m.request)
	m.mode = modeAdd
	return m.form.Init()
}

func (m *Model) startRemove() tea.Cmd {
	if m.editor.Len() == 0 {
		return nil
	}
	m.pending = m.table.Cursor()
	row := m.editor.List()[m.pending]
	m.confirm = new(bool)
	m.form = NewConfirmForm(m.theme,
		fmt.Sprintf("Remove %s?", row.Extension),
		"The association is removed and its icon deleted unless another row uses it.",
		"Remove", m.confirm)
	m.mode = modeConfirmRemove
	return m.form.Init()
}

func (m *Model) startReset(corrupt *association.StoreCorruptError) {
	m.confirm = new(bool)
	m.form = NewConfirmForm(m.theme,
		"Association store is corrupt",
		fmt.Sprintf("%s could not be read. Reset it to an empty list?", corrupt.Path),
		"Reset", m.confirm)
	m.mode = modeConfirmReset
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.finishForm()
		return m, nil
	case huh.StateAborted:
		if m.mode == modeConfirmReset {
			return m, tea.Quit
		}
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// finishForm applies the result of the completed dialog.
func (m *Model) finishForm() {
	switch m.mode {
	case modeAdd:
		m.applyAdd(*m.request)
	case modeConfirmRemove:
		m.applyRemove(*m.confirm)
	case modeConfirmReset:
		m.applyReset(*m.confirm)
	}
	m.closeForm()
}

func (m *Model) applyAdd(req AddRequest) {
	ext := strings.TrimSpace(req.Extension)
	if err := m.editor.Add(ext, strings.TrimSpace(req.IconPath)); err != nil {
		m.err, m.status = err, ""
		return
	}
	m.err, m.status = nil, fmt.Sprintf("Added %s", ext)
	m.refresh()
	m.table.SetCursor(m.editor.Len() - 1)
}

func (m *Model) applyRemove(confirmed bool) {
	if !confirmed {
		return
	}
	ext := m.editor.List()[m.pending].Extension
	if err := m.editor.Remove(m.pending); err != nil {
		m.err, m.status = err, ""
		return
	}
	m.err, m.status = nil, fmt.Sprintf("Removed %s", ext)
	m.refresh()
}

func (m *Model) applyReset(confirmed bool) {
	if !confirmed {
		return
	}
	if err := m.editor.Reset(); err != nil {
		m.err, m.status = err, ""
		return
	}
	m.err, m.status = nil, "Store reset"
	m.refresh()
}

func (m *Model) closeForm() {
	m.form = nil
	m.request = nil
	m.confirm = nil
	m.mode = modeBrowse
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}
