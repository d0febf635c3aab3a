package host

import (
	"context"
	"log/slog"

	"github.com/alta-arts/fileicons/internal/association"
	"github.com/alta-arts/fileicons/internal/editor"
	"github.com/alta-arts/fileicons/internal/ui"
)

// PluginName is the name the file icons plugin registers under.
const PluginName = "FileIconsMenu"

// FileIconsPlugin connects the association store to the host: it builds the
// association editor tab and answers icon lookups.
type FileIconsPlugin struct {
	store  *association.Store
	theme  *ui.Theme
	logger *slog.Logger

	// Watch enables reloading the editor tab when the store file changes.
	Watch bool

	watchers []*editor.Watcher
}

// NewFileIconsPlugin creates the plugin around store.
func NewFileIconsPlugin(store *association.Store, theme *ui.Theme, logger *slog.Logger) *FileIconsPlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileIconsPlugin{store: store, theme: theme, logger: logger, Watch: true}
}

// Name implements Plugin.
func (p *FileIconsPlugin) Name() string { return PluginName }

// IsActive implements Plugin. The plugin is always loaded.
func (p *FileIconsPlugin) IsActive() bool { return true }

// RegisterCallbacks implements Plugin.
func (p *FileIconsPlugin) RegisterCallbacks(r *Registry) {
	r.OnSettingsUI(PluginName, p.settingsUI)
	r.OnIconForFileType(PluginName, p.store.Lookup)
}

// Close stops any store watchers started for editor tabs.
func (p *FileIconsPlugin) Close() error {
	for _, w := range p.watchers {
		_ = w.Close()
	}
	p.watchers = nil
	return nil
}

func (p *FileIconsPlugin) settingsUI(_ context.Context, panel Panel) error {
	ed := editor.New(p.store, p.logger)

	var changes <-chan struct{}
	if p.Watch {
		w, err := editor.WatchStore(p.store.Path(), p.logger)
		if err != nil {
			p.logger.Warn("store watch unavailable, editor will not auto-reload", "error", err)
		} else {
			p.watchers = append(p.watchers, w)
			changes = w.Changes()
		}
	}

	return panel.AddTab(editor.TabTitle, editor.NewModel(ed, p.theme, changes))
}
