package cli

import (
	"errors"
	"fmt"

	"github.com/alta-arts/fileicons/internal/association"
	"github.com/alta-arts/fileicons/internal/editor"
)

// ErrNoAssociation is returned by lookup when no icon is associated with the extension.
var ErrNoAssociation = errors.New("no icon associated")

// errNotInitialized is returned when a command runs before Load.
var errNotInitialized = errors.New("dependencies not initialized")

// requireDeps returns the loaded dependencies.
func requireDeps() (*Dependencies, error) {
	if deps == nil || deps.Store == nil {
		return nil, errNotInitialized
	}
	return deps, nil
}

// errorMessage formats err for the terminal, adding a hint where the user
// has an obvious next step.
func errorMessage(err error) string {
	var corrupt *association.StoreCorruptError
	var invalid *association.ValidationError
	switch {
	case errors.As(err, &corrupt):
		return fmt.Sprintf("Error: %v\nRun 'fileicons reset' to start over with an empty list.", err)
	case errors.As(err, &invalid):
		return fmt.Sprintf("Error: %s (%s)", invalid.Message, invalid.Rule)
	case errors.Is(err, editor.ErrHeadless):
		return fmt.Sprintf("Error: %v\nUse 'fileicons add' and 'fileicons remove' when no terminal is attached.", err)
	}
	return "Error: " + err.Error()
}
