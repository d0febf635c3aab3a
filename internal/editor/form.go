package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/alta-arts/fileicons/internal/association"
	"github.com/alta-arts/fileicons/internal/ui"
)

// AddRequest receives the values entered in the add dialog.
type AddRequest struct {
	Extension string
	IconPath  string
}

// NewAddForm builds the "Add Icon Association" dialog. The extension field
// starts with "." and both fields are validated with the store's rules
// before the form can be submitted.
func NewAddForm(theme *ui.Theme, types *association.IconTypes, req *AddRequest) *huh.Form {
	if req.Extension == "" {
		req.Extension = "."
	}

	allowed := strings.Join(types.Suffixes(), " ")

	ext := huh.NewInput().
		Key("extension").
		Title("File Extension").
		Description("File extension.  Examples:  .py .fspy .xcf").
		Value(&req.Extension).
		Validate(func(s string) error {
			return userError(association.ValidateExtension(s))
		})

	icon := huh.NewInput().
		Key("icon").
		Title("Icon Location").
		Description("Choose icon file.  Allowed: " + allowed).
		Placeholder("/path/to/icon.png").
		Value(&req.IconPath).
		Validate(func(s string) error {
			return ValidateIconFile(types, strings.TrimSpace(s))
		})

	return huh.NewForm(
		huh.NewGroup(ext, icon).Title("Add Icon Association"),
	).WithTheme(theme.Form()).WithShowHelp(true)
}

// NewConfirmForm builds a yes/no dialog bound to value.
func NewConfirmForm(theme *ui.Theme, title, description, affirmative string, value *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative(affirmative).
			Negative("Cancel").
			Value(value),
	)).WithTheme(theme.Form())
}

// ValidateIconFile checks the icon suffix and that path names a readable file.
func ValidateIconFile(types *association.IconTypes, path string) error {
	if err := types.Validate(path); err != nil {
		return userError(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("icon file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("icon path is a directory: %s", path)
	}
	return nil
}

// userError strips a ValidationError down to its user-facing message.
func userError(err error) error {
	var verr *association.ValidationError
	if errors.As(err, &verr) {
		return errors.New(verr.Message)
	}
	return err
}
