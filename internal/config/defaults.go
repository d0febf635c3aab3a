package config

import (
	"slices"

	"github.com/alta-arts/fileicons/internal/defs"
)

// Default value constants to avoid magic strings.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Plugin: PluginConfig{
			StoreFile: defs.StoreJSON,
			IconDir:   defs.IconsDir,
		},
		Icons: IconsConfig{
			AllowedTypes: slices.Clone(defs.AllowedIconTypes),
		},
		System: SystemConfig{
			LogLevel:  DefaultLogLevel,
			LogFormat: DefaultLogFormat,
		},
	}
}
