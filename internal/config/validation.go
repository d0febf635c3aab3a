package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Dynamic token patterns that must not appear in path values.
// They indicate unexpanded template variables from an installer.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validatePlugin(&cfg.Plugin)...)
	errs = append(errs, validateIcons(&cfg.Icons)...)
	errs = append(errs, validateSystem(&cfg.System)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validatePlugin(p *PluginConfig) []ValidationError {
	var errs []ValidationError

	fields := []struct {
		name  string
		value string
	}{
		{"plugin.store_file", p.StoreFile},
		{"plugin.icon_dir", p.IconDir},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, ValidationError{
				Field:   f.name,
				Message: "required field is empty",
				Wrapped: ErrInvalidConfig,
			})
			continue
		}
		for _, re := range dynamicTokenPatterns {
			if re.MatchString(f.value) {
				errs = append(errs, ValidationError{
					Field:   f.name,
					Message: fmt.Sprintf("contains unexpanded token %q", re.FindString(f.value)),
					Value:   f.value,
					Wrapped: ErrDynamicToken,
				})
				break
			}
		}
	}
	return errs
}

func validateIcons(ic *IconsConfig) []ValidationError {
	if len(ic.AllowedTypes) == 0 {
		return []ValidationError{{
			Field:   "icons.allowed_types",
			Message: "at least one icon type is required",
			Wrapped: ErrInvalidConfig,
		}}
	}

	var errs []ValidationError
	for _, t := range ic.AllowedTypes {
		if len(t) < 2 || !strings.HasPrefix(t, ".") || strings.ContainsAny(t, `/\*?[]{}`) {
			errs = append(errs, ValidationError{
				Field:   "icons.allowed_types",
				Message: "must be a suffix such as .png",
				Value:   t,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

func validateSystem(s *SystemConfig) []ValidationError {
	var errs []ValidationError

	if !slices.Contains(validLogLevels, s.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "system.log_level",
			Message: "must be one of: " + strings.Join(validLogLevels, ", "),
			Value:   s.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}
	if !slices.Contains(validLogFormats, s.LogFormat) {
		errs = append(errs, ValidationError{
			Field:   "system.log_format",
			Message: "must be one of: " + strings.Join(validLogFormats, ", "),
			Value:   s.LogFormat,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}
