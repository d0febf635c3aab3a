// Package host models the extension points a host application offers
// plugins: building a settings tab and resolving an icon for a file type.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alta-arts/fileicons/internal/defs"
)

// ErrNoSettingsUI indicates no active plugin registered a settings callback.
var ErrNoSettingsUI = errors.New("host: no settings UI registered")

// Panel is the settings window a plugin adds its tab to.
type Panel interface {
	AddTab(title string, tab tea.Model) error
}

// SettingsUIFunc populates panel with a plugin's settings tab.
type SettingsUIFunc func(ctx context.Context, panel Panel) error

// IconResolverFunc returns the icon path for a file extension.
// A miss is ("", false, nil).
type IconResolverFunc func(extension string) (string, bool, error)

// Plugin is implemented by anything that hooks into the host.
type Plugin interface {
	Name() string
	IsActive() bool
	RegisterCallbacks(r *Registry)
}

type settingsCallback struct {
	plugin string
	fn     SettingsUIFunc
}

type resolverCallback struct {
	plugin string
	fn     IconResolverFunc
}

// Registry holds plugin callbacks and dispatches host events to them
// sequentially in registration order.
type Registry struct {
	settings  []settingsCallback
	resolvers []resolverCallback
	logger    *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Register lets p add its callbacks. Inactive plugins are skipped.
func (r *Registry) Register(p Plugin) {
	if !p.IsActive() {
		r.logger.Debug("plugin inactive, skipping", "plugin", p.Name())
		return
	}
	p.RegisterCallbacks(r)
}

// OnSettingsUI registers a userSettings_loadUI callback.
func (r *Registry) OnSettingsUI(plugin string, fn SettingsUIFunc) {
	r.settings = append(r.settings, settingsCallback{plugin: plugin, fn: fn})
	r.logger.Debug("callback registered", "callback", defs.CallbackSettingsUI, "plugin", plugin)
}

// OnIconForFileType registers a getIconPathForFileType callback.
func (r *Registry) OnIconForFileType(plugin string, fn IconResolverFunc) {
	r.resolvers = append(r.resolvers, resolverCallback{plugin: plugin, fn: fn})
	r.logger.Debug("callback registered", "callback", defs.CallbackIconForFileType, "plugin", plugin)
}

// Callbacks returns how many callbacks are registered under name.
func (r *Registry) Callbacks(name string) int {
	switch name {
	case defs.CallbackSettingsUI:
		return len(r.settings)
	case defs.CallbackIconForFileType:
		return len(r.resolvers)
	}
	return 0
}

// BuildSettingsUI asks every settings callback to populate panel.
// The first error stops dispatch.
func (r *Registry) BuildSettingsUI(ctx context.Context, panel Panel) error {
	if len(r.settings) == 0 {
		return ErrNoSettingsUI
	}
	for _, cb := range r.settings {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cb.fn(ctx, panel); err != nil {
			r.logger.Error("settings callback failed", "plugin", cb.plugin, "error", err)
			return fmt.Errorf("%s %s: %w", defs.CallbackSettingsUI, cb.plugin, err)
		}
	}
	return nil
}

// ResolveIconForFileType returns the first icon any resolver reports for
// extension. Resolver errors are logged and treated as a miss.
func (r *Registry) ResolveIconForFileType(extension string) (string, bool) {
	for _, cb := range r.resolvers {
		path, ok, err := cb.fn(extension)
		if err != nil {
			r.logger.Warn("icon resolver failed", "plugin", cb.plugin, "extension", extension, "error", err)
			continue
		}
		if ok {
			return path, true
		}
	}
	return "", false
}
