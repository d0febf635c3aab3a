// Package cli provides the Cobra command tree and dependency injection
// wiring for the fileicons CLI. This file defines the Dependencies struct
// (Composition Root) that wires the store and the host registry.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alta-arts/fileicons/internal/association"
	"github.com/alta-arts/fileicons/internal/config"
	"github.com/alta-arts/fileicons/internal/defs"
	"github.com/alta-arts/fileicons/internal/host"
	"github.com/alta-arts/fileicons/internal/ui"
)

// EnvPluginDir names the environment variable that locates the plugin directory.
const EnvPluginDir = "FILEICONS_PLUGIN_DIR"

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.ConfigManager
	Store    *association.Store
	Registry *host.Registry
	Plugin   *host.FileIconsPlugin
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
}

// LoadOptions carries the global flag values into Load.
type LoadOptions struct {
	PluginDir      string
	ConfigFile     string
	LogLevel       string
	NoColor        bool
	NonInteractive bool
	Stderr         io.Writer
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root entry point
// @MX:REASON: [AUTO] fan_in=3, called from root.go, deps_test.go and cli tests
// InitDependencies creates the flag-independent dependencies. The store and
// registry need the plugin directory and are built by Load once flags are parsed.
func InitDependencies() {
	deps = &Dependencies{
		Config:   config.NewConfigManager(),
		Headless: ui.NewHeadlessManager(),
		Theme:    ui.NewTheme(false),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// Load reads configuration and builds everything that depends on the
// plugin directory.
func (d *Dependencies) Load(opts LoadOptions) error {
	pluginDir, err := resolvePluginDir(opts.PluginDir)
	if err != nil {
		return err
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = filepath.Join(pluginDir, defs.ConfigYAML)
	}
	cfg, err := d.Config.LoadFile(pluginDir, configFile)
	if err != nil {
		return err
	}

	if opts.LogLevel != "" {
		cfg.System.LogLevel = opts.LogLevel
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger, err := newLogger(stderr, cfg.System)
	if err != nil {
		return err
	}
	d.Logger = logger
	slog.SetDefault(logger)

	_, noColorEnv := os.LookupEnv("NO_COLOR")
	d.Theme = ui.NewTheme(opts.NoColor || cfg.System.NoColor || noColorEnv)
	if opts.NonInteractive || cfg.System.NonInteractive {
		d.Headless.ForceHeadless(true)
	}

	store, err := association.NewStore(association.Options{
		StorePath:        cfg.StorePath(),
		IconDir:          cfg.IconDirPath(),
		AllowedIconTypes: cfg.Icons.AllowedTypes,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("open association store: %w", err)
	}
	d.Store = store

	d.Registry = host.NewRegistry(logger)
	d.Plugin = host.NewFileIconsPlugin(store, d.Theme, logger)
	d.Registry.Register(d.Plugin)

	logger.Debug("dependencies loaded",
		"plugin_dir", pluginDir,
		"config", configFile,
		"config_found", d.Config.FileLoaded(),
		"store", store.Path(),
	)
	return nil
}

// Close releases resources held by the plugin.
func (d *Dependencies) Close() {
	if d.Plugin != nil {
		_ = d.Plugin.Close()
	}
}

// resolvePluginDir picks the plugin directory: flag, then FILEICONS_PLUGIN_DIR,
// then the directory of the running executable.
func resolvePluginDir(flag string) (string, error) {
	dir := flag
	if dir == "" {
		dir = os.Getenv(EnvPluginDir)
	}
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate plugin directory: %w", err)
		}
		dir = filepath.Dir(exe)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve plugin directory %s: %w", dir, err)
	}
	return abs, nil
}

// newLogger builds the CLI logger from the system configuration.
func newLogger(w io.Writer, sys config.SystemConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(sys.LogLevel)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", config.ErrInvalidConfig, sys.LogLevel)
	}
	hopts := &slog.HandlerOptions{Level: level}
	if sys.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}
