package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		field   string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "empty store file",
			mutate:  func(c *Config) { c.Plugin.StoreFile = " " },
			wantErr: ErrInvalidConfig,
			field:   "plugin.store_file",
		},
		{
			name:    "unexpanded token in icon dir",
			mutate:  func(c *Config) { c.Plugin.IconDir = "${PLUGIN_ROOT}/Icons" },
			wantErr: ErrDynamicToken,
			field:   "plugin.icon_dir",
		},
		{
			name:    "icon type without dot",
			mutate:  func(c *Config) { c.Icons.AllowedTypes = []string{"png"} },
			wantErr: ErrInvalidConfig,
			field:   "icons.allowed_types",
		},
		{
			name:    "icon type with glob metacharacters",
			mutate:  func(c *Config) { c.Icons.AllowedTypes = []string{".p*g"} },
			wantErr: ErrInvalidConfig,
			field:   "icons.allowed_types",
		},
		{
			name:    "no icon types",
			mutate:  func(c *Config) { c.Icons.AllowedTypes = nil },
			wantErr: ErrInvalidConfig,
			field:   "icons.allowed_types",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.System.LogLevel = "verbose" },
			wantErr: ErrInvalidConfig,
			field:   "system.log_level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.System.LogFormat = "xml" },
			wantErr: ErrInvalidConfig,
			field:   "system.log_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error type = %T, want *ValidationErrors", err)
			}
			if verrs.Errors[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", verrs.Errors[0].Field, tt.field)
			}
		})
	}
}
