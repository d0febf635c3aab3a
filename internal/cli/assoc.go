package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add EXTENSION ICON",
		Short: "Associate an icon with a file extension",
		Long: `Copy ICON into the plugin's Icons directory and associate it with EXTENSION.

EXTENSION is a dot followed by 1 to 6 letters or digits (e.g. .xcf).
ICON must be an .ico, .png, .jpg, .jpeg, .bmp, .gif or .svg image.
An existing extension is not replaced: the earlier association keeps winning lookups.`,
		Example: "  fileicons add .xcf ~/Pictures/gimp.png",
		Args:    cobra.ExactArgs(2),
		RunE:    runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	list, err := d.Store.Import(args[0], args[1])
	if err != nil {
		return err
	}
	added := list[len(list)-1]

	details := []string{fmt.Sprintf("%s  %s", added.Extension, d.Store.Resolve(added))}
	if first := list.Find(added.Extension); first != len(list)-1 {
		details = append(details, d.Theme.Warning().Render(
			fmt.Sprintf("row %d already maps %s; lookups keep using it", first, added.Extension)))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), d.Theme.SuccessCard("Association added", details...))
	return nil
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove ROW",
		Aliases: []string{"rm"},
		Short:   "Remove the association at ROW",
		Long: `Remove the association at ROW, the 0-based row number shown by 'fileicons list'.

The icon file is deleted from the Icons directory unless another association still uses it.`,
		Args: cobra.ExactArgs(1),
		RunE: runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid row %q: must be a number", args[0])
	}

	before, err := d.Store.Load()
	if err != nil {
		return err
	}
	if _, err := d.Store.Remove(index); err != nil {
		return err
	}

	detail := fmt.Sprintf("row %d", index)
	if index < len(before) {
		detail = fmt.Sprintf("row %d: %s  %s", index, before[index].Extension, before[index].IconPath)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), d.Theme.SuccessCard("Association removed", detail))
	return nil
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup EXTENSION",
		Short: "Print the icon path for a file extension",
		Long: `Print the icon path the host shows for EXTENSION.

Exits with a non-zero status when no association exists.`,
		Args: cobra.ExactArgs(1),
		RunE: runLookup,
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	path, ok, err := d.Store.Lookup(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoAssociation, args[0])
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
