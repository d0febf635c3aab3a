// Package editor implements the association settings editor. An Editor
// holds the association list in memory and applies add/remove through the
// store; Model renders that list as an interactive terminal table.
package editor

import (
	"errors"
	"log/slog"

	"github.com/alta-arts/fileicons/internal/association"
	"github.com/alta-arts/fileicons/pkg/models"
)

// ErrHeadless is returned when the interactive editor is requested without a terminal.
var ErrHeadless = errors.New("editor: interactive editor requires a terminal")

// Row is one association as presented to the user.
type Row struct {
	models.Association

	// Resolved is the filesystem path the host will use for the icon.
	Resolved string

	// Present reports whether Resolved exists.
	Present bool
}

// Editor owns the in-memory association list shown to the user.
// Mutations go through the store, and the editor adopts the list the
// store returns, so the view never diverges from what was saved.
type Editor struct {
	store  *association.Store
	list   models.List
	logger *slog.Logger
}

// New creates an Editor over store. Call Reload to populate it.
func New(store *association.Store, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{store: store, list: models.List{}, logger: logger}
}

// Store returns the backing store.
func (e *Editor) Store() *association.Store { return e.store }

// Reload replaces the in-memory list with the stored one. On error the
// current list is kept and the error (possibly *association.StoreCorruptError)
// is returned.
func (e *Editor) Reload() error {
	list, err := e.store.Load()
	if err != nil {
		return err
	}
	e.list = list
	return nil
}

// Len returns the number of rows.
func (e *Editor) Len() int { return len(e.list) }

// List returns a copy of the in-memory list.
func (e *Editor) List() models.List { return e.list.Clone() }

// Rows returns the list with resolved icon paths.
func (e *Editor) Rows() []Row {
	lib := e.store.Library()
	rows := make([]Row, len(e.list))
	for i, a := range e.list {
		rows[i] = Row{
			Association: a,
			Resolved:    e.store.Resolve(a),
			Present:     lib.Exists(a.IconPath),
		}
	}
	return rows
}

// Add validates the pair, copies the icon into the managed directory and
// appends the association.
func (e *Editor) Add(extension, iconPath string) error {
	list, err := e.store.Import(extension, iconPath)
	if err != nil {
		return err
	}
	e.list = list
	e.logger.Info("association added", "extension", extension, "icon", iconPath)
	return nil
}

// Remove deletes the row at index.
func (e *Editor) Remove(index int) error {
	if index < 0 || index >= len(e.list) {
		return &association.IndexError{Index: index, Len: len(e.list)}
	}
	ext := e.list[index].Extension

	list, err := e.store.Remove(index)
	if err != nil {
		return err
	}
	e.list = list
	e.logger.Info("association removed", "extension", ext, "row", index)
	return nil
}

// Reset empties the store and the in-memory list.
func (e *Editor) Reset() error {
	if err := e.store.Reset(); err != nil {
		return err
	}
	e.list = models.List{}
	e.logger.Warn("association store reset", "path", e.store.Path())
	return nil
}
