package association

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestValidateExtensionMessageNamesRule(t *testing.T) {
	t.Parallel()

	err := ValidateExtension("png")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidateExtension(png) error = %v, want *ValidationError", err)
	}
	if verr.Field != "extension" || verr.Value != "png" {
		t.Errorf("ValidationError = %+v", verr)
	}
	if !strings.Contains(err.Error(), RuleBadExtension) {
		t.Errorf("message %q does not name the rule", err.Error())
	}
}

func TestIconTypes(t *testing.T) {
	t.Parallel()

	types, err := NewIconTypes([]string{".PNG", ".svg"})
	if err != nil {
		t.Fatalf("NewIconTypes() error: %v", err)
	}
	if got := types.Suffixes(); !slices.Equal(got, []string{".png", ".svg"}) {
		t.Errorf("Suffixes() = %v", got)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"a.png", true},
		{"A.PnG", true},
		{".png", true},
		{"a.svg", true},
		{"a.svgz", false},
		{"a.jpg", false},
		{"a[1].png", true},
		{"*.png", true},
	}
	for _, tt := range tests {
		if got := types.Match(tt.path); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	err = types.Validate("a.jpg")
	if !strings.Contains(err.Error(), ".png, .svg") {
		t.Errorf("Validate message %q does not list allowed types", err.Error())
	}
}

func TestNewIconTypesEmpty(t *testing.T) {
	t.Parallel()

	if _, err := NewIconTypes(nil); err == nil {
		t.Error("NewIconTypes(nil) error = nil, want error")
	}
}
