package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alta-arts/fileicons/internal/editor"
	"github.com/alta-arts/fileicons/internal/ui"
)

// Output formats accepted by list --format.
const (
	formatTable    = "table"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

// listEntry is the JSON shape of one association.
type listEntry struct {
	Row       int    `json:"row"`
	Extension string `json:"file_type"`
	IconPath  string `json:"icon_path"`
	Resolved  string `json:"resolved"`
	Present   bool   `json:"present"`
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List file type icon associations",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
	cmd.Flags().StringP("format", "f", formatTable, "output format: table, json, markdown")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	ed := editor.New(d.Store, d.Logger)
	if err := ed.Reload(); err != nil {
		return err
	}
	rows := ed.Rows()
	out := cmd.OutOrStdout()

	switch format {
	case formatTable:
		_, _ = fmt.Fprintln(out, renderTable(d.Theme, rows))
	case formatJSON:
		entries := make([]listEntry, len(rows))
		for i, r := range rows {
			entries[i] = listEntry{
				Row:       i,
				Extension: r.Extension,
				IconPath:  r.IconPath,
				Resolved:  r.Resolved,
				Present:   r.Present,
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case formatMarkdown:
		rendered, err := renderMarkdown(d.Theme, rows)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, rendered)
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatTable, formatJSON, formatMarkdown)
	}
	return nil
}

// renderTable draws rows as a bordered table inside a card.
func renderTable(theme *ui.Theme, rows []editor.Row) string {
	if len(rows) == 0 {
		return theme.Card(editor.TabTitle, theme.Muted().Render("No associations. Add one with 'fileicons add EXT ICON'."))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Fg(theme.Colors.Border)).
		Headers("#", "File Type", "Icon Path", "Icon").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Title().Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for i, r := range rows {
		t.Row(strconv.Itoa(i), r.Extension, r.IconPath, presentMark(theme, r.Present))
	}
	return theme.Card(editor.TabTitle, t.String())
}

func presentMark(theme *ui.Theme, present bool) string {
	if present {
		return theme.Success().Render("✓")
	}
	return theme.Error().Render("✗ missing")
}

// renderMarkdown builds a markdown table of rows and renders it with glamour.
func renderMarkdown(theme *ui.Theme, rows []editor.Row) (string, error) {
	var b strings.Builder
	b.WriteString("# " + editor.TabTitle + "\n\n")
	if len(rows) == 0 {
		b.WriteString("_No associations._\n")
	} else {
		b.WriteString("| # | File Type | Icon Path | Icon |\n")
		b.WriteString("|---|---|---|---|\n")
		for i, r := range rows {
			mark := "✓"
			if !r.Present {
				mark = "✗ missing"
			}
			fmt.Fprintf(&b, "| %d | `%s` | `%s` | %s |\n", i, r.Extension, escapeCell(r.Resolved), mark)
		}
	}

	opt := glamour.WithAutoStyle()
	if theme.NoColor {
		opt = glamour.WithStandardStyle(styles.NoTTYStyle)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(120))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render(b.String())
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
