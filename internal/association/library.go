package association

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/alta-arts/fileicons/pkg/models"
)

// Library is the managed icon directory. Icons selected by the user are
// copied here and referenced from the store by base name.
type Library struct {
	dir string
}

// NewLibrary returns a Library rooted at dir, creating the directory if needed.
func NewLibrary(dir string) (*Library, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &IOError{Op: "resolve", Path: dir, Err: err}
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, &IOError{Op: "create icon directory", Path: abs, Err: err}
	}
	return &Library{dir: abs}, nil
}

// Dir returns the absolute path of the managed icon directory.
func (l *Library) Dir() string {
	return l.dir
}

// Resolve turns a stored icon path into a filesystem path.
// Relative values are names inside the managed directory; absolute values
// (written by older installs) are returned unchanged.
func (l *Library) Resolve(stored string) string {
	if stored == "" {
		return ""
	}
	if filepath.IsAbs(stored) {
		return filepath.Clean(stored)
	}
	return filepath.Join(l.dir, stored)
}

// Import copies src into the managed directory under its base name and
// returns that name. The copy is skipped when src already is the managed file.
// An existing icon with the same name is replaced.
func (l *Library) Import(src string) (string, error) {
	name := filepath.Base(src)
	dst := filepath.Join(l.dir, name)

	if samePath(src, dst) {
		return name, nil
	}
	if err := copyFile(src, dst); err != nil {
		return "", err
	}
	return name, nil
}

// Release deletes the icon referenced by stored unless one of the remaining
// associations still resolves to the same file. Files outside the managed
// directory are never deleted. A missing file is not an error.
// It reports whether a file was removed.
func (l *Library) Release(stored string, remaining models.List) (bool, error) {
	target := l.Resolve(stored)
	if target == "" || !l.contains(target) {
		return false, nil
	}
	for _, a := range remaining {
		if samePath(l.Resolve(a.IconPath), target) {
			return false, nil
		}
	}

	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &IOError{Op: "delete icon", Path: target, Err: err}
	}
	return true, nil
}

// Exists reports whether the stored icon path resolves to an existing file.
func (l *Library) Exists(stored string) bool {
	p := l.Resolve(stored)
	if p == "" {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// contains reports whether p lies directly inside the managed directory.
func (l *Library) contains(p string) bool {
	return samePath(filepath.Dir(p), l.dir)
}

// samePath reports whether a and b name the same file. Paths are compared
// lexically after NFC normalization first, then by file identity when both exist.
func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && norm.NFC.String(absA) == norm.NFC.String(absB) {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

// copyFile copies src to dst through a temp file in dst's directory,
// preserving the permission bits and modification time of src.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &IOError{Op: "open icon", Path: src, Err: err}
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return &IOError{Op: "stat icon", Path: src, Err: err}
	}
	if info.IsDir() {
		return &IOError{Op: "open icon", Path: src, Err: errors.New("is a directory")}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".icon-*.tmp")
	if err != nil {
		return &IOError{Op: "copy icon", Path: dst, Err: err}
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return &IOError{Op: "copy icon", Path: dst, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "copy icon", Path: dst, Err: err}
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return &IOError{Op: "copy icon", Path: dst, Err: err}
	}
	if err := os.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
		return &IOError{Op: "copy icon", Path: dst, Err: err}
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return &IOError{Op: "copy icon", Path: dst, Err: err}
	}
	return nil
}

// displayName trims the managed directory prefix from p for messages.
func (l *Library) displayName(p string) string {
	if rel, err := filepath.Rel(l.dir, p); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return p
}
