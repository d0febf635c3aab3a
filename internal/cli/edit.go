package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alta-arts/fileicons/internal/editor"
	"github.com/alta-arts/fileicons/internal/host"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive association editor",
		Long: `Open the settings tab the host shows for file icons.

Keys: a add, d remove selected row, r reload, q quit.
The table reloads when the store file is changed by another process.`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}
	cmd.Flags().Bool("alt-screen", true, "use the terminal's alternate screen")
	return cmd
}

func runEdit(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	if d.Headless.IsHeadless() {
		return editor.ErrHeadless
	}

	ctx := cmd.Context()
	panel := host.NewTerminalPanel()
	if err := d.Registry.BuildSettingsUI(ctx, panel); err != nil {
		return err
	}

	opts := []tea.ProgramOption{
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if alt, _ := cmd.Flags().GetBool("alt-screen"); alt {
		opts = append(opts, tea.WithAltScreen())
	}
	return panel.Run(ctx, opts...)
}
