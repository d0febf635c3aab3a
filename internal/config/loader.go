package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alta-arts/fileicons/internal/defs"
	"gopkg.in/yaml.v3"
)

// Loader reads configuration from the plugin YAML file.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu         sync.RWMutex
	fileLoaded bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads fileicons.yaml from pluginDir and returns a Config with
// defaults applied for missing fields. A missing file yields the defaults;
// invalid YAML returns ErrInvalidYAML.
func (l *Loader) Load(pluginDir string) (*Config, error) {
	return l.LoadFile(pluginDir, filepath.Join(pluginDir, defs.ConfigYAML))
}

// LoadFile is Load with an explicit configuration file path. Relative
// paths in the file are still resolved against pluginDir.
func (l *Loader) LoadFile(pluginDir, path string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fileLoaded = false
	cfg := NewDefaultConfig()
	cfg.Root = filepath.Clean(pluginDir)

	loaded, err := loadYAMLFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if !loaded {
		slog.Debug("plugin config not found, using defaults", "path", path)
	}
	l.fileLoaded = loaded

	return cfg, nil
}

// FileLoaded reports whether the last Load found a configuration file.
func (l *Loader) FileLoaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fileLoaded
}

// loadYAMLFile reads a YAML file and unmarshals it into the target struct.
// Returns (true, nil) if the file was found and parsed, (false, nil) if the
// file does not exist, or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	filename := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
