package association

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alta-arts/fileicons/internal/defs"
	"github.com/alta-arts/fileicons/pkg/models"
)

// Options configures a Store. It is fixed for the lifetime of the Store.
type Options struct {
	// StorePath is the JSON file holding the association list.
	StorePath string

	// IconDir is the managed icon directory; created if missing.
	IconDir string

	// AllowedIconTypes overrides the default icon suffixes when non-empty.
	AllowedIconTypes []string

	// Logger receives warnings for best-effort steps. Defaults to slog.Default().
	Logger *slog.Logger
}

// @MX:ANCHOR: [AUTO] Store is the only writer of the association file; the editor, the host callbacks and every CLI command go through it.
// @MX:REASON: [AUTO] fan_in=6, called from cli, editor and host
// Store is the file-backed association list. Every operation reads the
// file afresh and every mutation rewrites it in full; nothing is cached.
type Store struct {
	path   string
	icons  *Library
	types  *IconTypes
	logger *slog.Logger
}

// NewStore creates a Store and ensures the managed icon directory exists.
func NewStore(opts Options) (*Store, error) {
	if opts.StorePath == "" {
		return nil, &IOError{Op: "open store", Path: opts.StorePath, Err: errors.New("empty store path")}
	}

	suffixes := opts.AllowedIconTypes
	if len(suffixes) == 0 {
		suffixes = defs.AllowedIconTypes
	}
	types, err := NewIconTypes(suffixes)
	if err != nil {
		return nil, err
	}

	icons, err := NewLibrary(opts.IconDir)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		path:   filepath.Clean(opts.StorePath),
		icons:  icons,
		types:  types,
		logger: logger,
	}, nil
}

// Path returns the store file path.
func (s *Store) Path() string { return s.path }

// Library returns the managed icon directory.
func (s *Store) Library() *Library { return s.icons }

// IconTypes returns the icon suffix matcher.
func (s *Store) IconTypes() *IconTypes { return s.types }

// Load reads the full association list. A missing or empty file is an
// empty list. Undecodable content returns *StoreCorruptError.
func (s *Store) Load() (models.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.List{}, nil
		}
		return nil, &IOError{Op: "read store", Path: s.path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return models.List{}, nil
	}

	var list models.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, &StoreCorruptError{Path: s.path, Err: err}
	}
	if list == nil {
		list = models.List{}
	}
	return list, nil
}

// Save overwrites the store with list. The new content is written to a temp
// file and renamed into place, so readers see either the old or the new list.
func (s *Store) Save(list models.List) error {
	if list == nil {
		list = models.List{}
	}

	data, err := encodeList(list)
	if err != nil {
		return &IOError{Op: "encode store", Path: s.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &IOError{Op: "create store directory", Path: s.path, Err: err}
	}
	if err := atomicWrite(s.path, data); err != nil {
		return &IOError{Op: "write store", Path: s.path, Err: err}
	}

	s.logger.Debug("association store saved", "path", s.path, "count", len(list))
	return nil
}

// Validate checks a proposed association without touching the store.
func (s *Store) Validate(extension, iconPath string) error {
	if err := ValidateExtension(extension); err != nil {
		return err
	}
	return s.types.Validate(iconPath)
}

// Add appends an association and saves the list. iconPath is stored as
// given; callers that want the icon managed should use Import.
// Duplicate extensions are accepted and shadowed by earlier rows on lookup.
func (s *Store) Add(extension, iconPath string) (models.List, error) {
	if err := s.Validate(extension, iconPath); err != nil {
		return nil, err
	}

	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	return s.appendAndSave(list, models.Association{Extension: extension, IconPath: iconPath})
}

// Import validates the association, copies sourcePath into the managed icon
// directory and appends a record referencing the copy by name.
// Nothing is copied when validation fails or the store cannot be read, and
// the copy happens before the save so a saved record never points at a
// missing file.
func (s *Store) Import(extension, sourcePath string) (models.List, error) {
	if err := s.Validate(extension, sourcePath); err != nil {
		return nil, err
	}

	list, err := s.Load()
	if err != nil {
		return nil, err
	}

	name, err := s.icons.Import(sourcePath)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("icon imported", "source", sourcePath, "name", name)

	return s.appendAndSave(list, models.Association{Extension: extension, IconPath: name})
}

func (s *Store) appendAndSave(list models.List, a models.Association) (models.List, error) {
	list = append(list, a)
	if err := s.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove deletes the row at index, saves, then releases its icon file.
// The icon is kept while another remaining row resolves to it. Icon
// deletion is best-effort: failures are logged, not returned.
func (s *Store) Remove(index int) (models.List, error) {
	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return nil, &IndexError{Index: index, Len: len(list)}
	}

	removed := list[index]
	remaining := list.Without(index)
	if err := s.Save(remaining); err != nil {
		return nil, err
	}

	deleted, err := s.icons.Release(removed.IconPath, remaining)
	switch {
	case err != nil:
		s.logger.Warn("failed to delete icon", "extension", removed.Extension, "error", err)
	case deleted:
		s.logger.Debug("icon deleted", "icon", s.icons.displayName(s.icons.Resolve(removed.IconPath)))
	}

	return remaining, nil
}

// Lookup returns the icon path of the first association whose extension
// equals ext exactly. A miss returns ("", false, nil).
func (s *Store) Lookup(ext string) (string, bool, error) {
	list, err := s.Load()
	if err != nil {
		return "", false, err
	}
	i := list.Find(ext)
	if i < 0 {
		return "", false, nil
	}
	return s.Resolve(list[i]), true, nil
}

// Resolve returns the filesystem path of a's icon.
func (s *Store) Resolve(a models.Association) string {
	return s.icons.Resolve(a.IconPath)
}

// Reset replaces the store with an empty list. It is the recovery path
// for a StoreCorruptError.
func (s *Store) Reset() error {
	return s.Save(models.List{})
}

// encodeList renders list the way the store has always been written:
// a JSON array indented by four spaces, without HTML escaping.
func encodeList(list models.List) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(list); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fileicons-store-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
