package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alta-arts/fileicons/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "fileicons",
	Short: "Manage file type icon associations",
	Long: `fileicons maintains the list of file extensions and the icons a host
application shows for them.

Associations are stored as JSON next to the plugin (FileIconsMenu_Config.json)
and icon images are copied into the plugin's Icons directory.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		return deps.Load(loadOptionsFromFlags(cmd))
	},
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the fileicons CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/fileicons/main.go and root_test.go
// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	defer deps.Close()

	if err := rootCmd.Execute(); err != nil {
		if msg := errorMessage(err); msg != "" {
			fmt.Fprintln(rootCmd.ErrOrStderr(), msg)
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("fileicons %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "configuration file (default <plugin-dir>/fileicons.yaml)")
	pf.String("plugin-dir", "", "plugin directory holding the store and Icons (default: $FILEICONS_PLUGIN_DIR or the executable's directory)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Bool("no-color", false, "disable colored output")
	pf.Bool("non-interactive", false, "never prompt; fail instead of opening the editor")

	rootCmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newLookupCmd(),
		newEditCmd(),
		newResetCmd(),
		newDoctorCmd(),
	)
}

// loadOptionsFromFlags reads the persistent flags of cmd.
func loadOptionsFromFlags(cmd *cobra.Command) LoadOptions {
	flags := cmd.Flags()
	opts := LoadOptions{Stderr: cmd.ErrOrStderr()}
	opts.ConfigFile, _ = flags.GetString("config")
	opts.PluginDir, _ = flags.GetString("plugin-dir")
	opts.LogLevel, _ = flags.GetString("log-level")
	opts.NoColor, _ = flags.GetBool("no-color")
	opts.NonInteractive, _ = flags.GetBool("non-interactive")
	return opts
}
