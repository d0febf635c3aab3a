package defs

// File and directory names inside the plugin directory.
const (
	// StoreJSON is the association store. The name matches earlier installs
	// so their data is picked up as-is.
	StoreJSON = "FileIconsMenu_Config.json"

	// IconsDir is the managed icon directory holding copied icon images.
	IconsDir = "Icons"

	// ConfigYAML is the optional plugin configuration file.
	ConfigYAML = "fileicons.yaml"
)

// Host callback names used by the plugin registry.
const (
	// CallbackSettingsUI builds the settings tab when the user opens settings.
	CallbackSettingsUI = "userSettings_loadUI"

	// CallbackIconForFileType resolves a display icon for a file extension.
	CallbackIconForFileType = "getIconPathForFileType"
)

// AllowedIconTypes is the default set of icon image suffixes.
var AllowedIconTypes = []string{".ico", ".png", ".jpg", ".jpeg", ".bmp", ".gif", ".svg"}
