package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alta-arts/fileicons/internal/editor"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the association store with an empty list",
		Long: `Replace the association store with an empty list.

Use this when the store file can no longer be read. Icon files in the
Icons directory are left in place.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}
	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		if d.Headless.IsHeadless() {
			return fmt.Errorf("reset needs confirmation: pass --yes when no terminal is attached")
		}
		confirmed := false
		form := editor.NewConfirmForm(d.Theme,
			"Reset file icon associations?",
			"Every association is removed. Icon files are kept.",
			"Reset", &confirmed)
		if err := form.RunWithContext(cmd.Context()); err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(out, d.Theme.Muted().Render("Reset cancelled."))
			return nil
		}
	}

	if err := d.Store.Reset(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, d.Theme.SuccessCard("Association store reset", d.Store.Path()))
	return nil
}
