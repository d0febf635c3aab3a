package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alta-arts/fileicons/internal/association"
	"github.com/alta-arts/fileicons/internal/editor"
	"github.com/alta-arts/fileicons/internal/ui"
)

// CheckStatus is the outcome of a diagnostic check.
type CheckStatus string

const (
	CheckOK   CheckStatus = "ok"
	CheckWarn CheckStatus = "warn"
	CheckFail CheckStatus = "fail"
)

// DiagnosticCheck is one line of doctor output.
type DiagnosticCheck struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
	Detail  string      `json:"detail,omitempty"`
}

// errChecksFailed is returned when at least one check fails.
var errChecksFailed = errors.New("doctor found problems")

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the association store and icon files",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
	cmd.Flags().BoolP("verbose", "v", false, "show details for passing checks")
	cmd.Flags().String("export", "", "write the results as JSON to this file")
	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	exportPath, _ := cmd.Flags().GetString("export")

	checks := []DiagnosticCheck{checkConfig(d)}
	ed := editor.New(d.Store, d.Logger)
	storeCheck, loaded := checkStore(d.Store, ed)
	checks = append(checks, storeCheck, checkIconDir(d.Store))
	if loaded {
		rows := ed.Rows()
		checks = append(checks, checkIconFiles(rows), checkDuplicates(rows))
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderChecks(d.Theme, checks, verbose))

	if exportPath != "" {
		if err := exportDiagnostics(exportPath, checks); err != nil {
			return err
		}
	}

	for _, c := range checks {
		if c.Status == CheckFail {
			return errChecksFailed
		}
	}
	return nil
}

func checkConfig(d *Dependencies) DiagnosticCheck {
	c := DiagnosticCheck{Name: "Configuration", Status: CheckOK}
	if d.Config.FileLoaded() {
		c.Message = "fileicons.yaml loaded"
	} else {
		c.Message = "using defaults"
	}
	if cfg := d.Config.Get(); cfg != nil {
		c.Detail = "plugin dir: " + cfg.Root
	}
	return c
}

// checkStore loads the store through ed. The bool reports whether rows are available.
func checkStore(store *association.Store, ed *editor.Editor) (DiagnosticCheck, bool) {
	c := DiagnosticCheck{Name: "Association store", Detail: "path: " + store.Path()}

	if _, err := os.Stat(store.Path()); os.IsNotExist(err) {
		c.Status = CheckOK
		c.Message = "not created yet"
		return c, true
	}

	if err := ed.Reload(); err != nil {
		c.Status = CheckFail
		var corrupt *association.StoreCorruptError
		if errors.As(err, &corrupt) {
			c.Message = "cannot be parsed"
			c.Detail = fmt.Sprintf("%v; run 'fileicons reset'", corrupt.Err)
		} else {
			c.Message = "cannot be read"
			c.Detail = err.Error()
		}
		return c, false
	}

	c.Status = CheckOK
	c.Message = fmt.Sprintf("%d association(s)", ed.Len())
	return c, true
}

func checkIconDir(store *association.Store) DiagnosticCheck {
	dir := store.Library().Dir()
	c := DiagnosticCheck{Name: "Icon directory", Detail: "path: " + dir}

	info, err := os.Stat(dir)
	switch {
	case err != nil:
		c.Status = CheckFail
		c.Message = "missing"
		c.Detail = err.Error()
	case !info.IsDir():
		c.Status = CheckFail
		c.Message = "not a directory"
	default:
		c.Status = CheckOK
		c.Message = "present"
	}
	return c
}

func checkIconFiles(rows []editor.Row) DiagnosticCheck {
	c := DiagnosticCheck{Name: "Icon files", Status: CheckOK}

	var missing []string
	for i, r := range rows {
		if !r.Present {
			missing = append(missing, fmt.Sprintf("row %d %s: %s", i, r.Extension, r.Resolved))
		}
	}
	if len(missing) == 0 {
		c.Message = fmt.Sprintf("all %d present", len(rows))
		return c
	}
	c.Status = CheckWarn
	c.Message = fmt.Sprintf("%d of %d missing", len(missing), len(rows))
	c.Detail = strings.Join(missing, "\n")
	return c
}

func checkDuplicates(rows []editor.Row) DiagnosticCheck {
	c := DiagnosticCheck{Name: "Duplicate extensions", Status: CheckOK, Message: "none"}

	first := make(map[string]int, len(rows))
	var shadowed []string
	for i, r := range rows {
		if j, ok := first[r.Extension]; ok {
			shadowed = append(shadowed, fmt.Sprintf("row %d %s is shadowed by row %d", i, r.Extension, j))
			continue
		}
		first[r.Extension] = i
	}
	if len(shadowed) > 0 {
		c.Status = CheckWarn
		c.Message = fmt.Sprintf("%d shadowed row(s)", len(shadowed))
		c.Detail = strings.Join(shadowed, "\n")
	}
	return c
}

func renderChecks(theme *ui.Theme, checks []DiagnosticCheck, verbose bool) string {
	var b strings.Builder
	for i, c := range checks {
		if i > 0 {
			b.WriteString("\n")
		}
		var mark string
		switch c.Status {
		case CheckOK:
			mark = theme.Success().Render("✓")
		case CheckWarn:
			mark = theme.Warning().Render("!")
		default:
			mark = theme.Error().Render("✗")
		}
		fmt.Fprintf(&b, "%s %s: %s", mark, c.Name, c.Message)
		if c.Detail != "" && (verbose || c.Status != CheckOK) {
			for _, line := range strings.Split(c.Detail, "\n") {
				b.WriteString("\n    " + theme.Muted().Render(line))
			}
		}
	}
	return theme.Card("fileicons doctor", b.String())
}

// exportDiagnostics writes checks as indented JSON to path.
func exportDiagnostics(path string, checks []DiagnosticCheck) error {
	data, err := json.MarshalIndent(checks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal diagnostics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}
	return nil
}
