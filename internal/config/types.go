package config

import "path/filepath"

// Config is the root plugin configuration.
type Config struct {
	Plugin PluginConfig `yaml:"plugin"`
	Icons  IconsConfig  `yaml:"icons"`
	System SystemConfig `yaml:"system"`

	// Root is the plugin directory the configuration was loaded from.
	// Relative paths in Plugin are resolved against it.
	Root string `yaml:"-"`
}

// PluginConfig locates the association store and the managed icon directory.
type PluginConfig struct {
	StoreFile string `yaml:"store_file" env:"FILEICONS_STORE_FILE"`
	IconDir   string `yaml:"icon_dir" env:"FILEICONS_ICON_DIR"`
}

// IconsConfig controls which icon images may be associated.
type IconsConfig struct {
	// AllowedTypes lists accepted icon suffixes, e.g. ".png". Matching is case-insensitive.
	AllowedTypes []string `yaml:"allowed_types" env:"FILEICONS_ALLOWED_ICON_TYPES" envSeparator:","`
}

// SystemConfig represents logging and terminal behavior.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level" env:"FILEICONS_LOG_LEVEL"`
	LogFormat      string `yaml:"log_format" env:"FILEICONS_LOG_FORMAT"`
	NoColor        bool   `yaml:"no_color" env:"FILEICONS_NO_COLOR"`
	NonInteractive bool   `yaml:"non_interactive" env:"FILEICONS_NON_INTERACTIVE"`
}

// StorePath returns the absolute-or-root-relative path of the association store.
func (c *Config) StorePath() string {
	return c.resolve(c.Plugin.StoreFile)
}

// IconDirPath returns the path of the managed icon directory.
func (c *Config) IconDirPath() string {
	return c.resolve(c.Plugin.IconDir)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.Root == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root, p)
}
