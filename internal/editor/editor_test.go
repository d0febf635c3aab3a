package editor

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alta-arts/fileicons/internal/association"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	root := t.TempDir()
	store, err := association.NewStore(association.Options{
		StorePath: filepath.Join(root, "FileIconsMenu_Config.json"),
		IconDir:   filepath.Join(root, "Icons"),
		Logger:    discardLogger(),
	})
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	return New(store, discardLogger())
}

func writeSourceIcon(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(name), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEditorAddRemove(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	if err := ed.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	if ed.Len() != 0 {
		t.Fatalf("Len() = %d on a fresh store", ed.Len())
	}

	for _, ext := range []string{".xcf", ".fspy", ".sni"} {
		if err := ed.Add(ext, writeSourceIcon(t, ext[1:]+".png")); err != nil {
			t.Fatalf("Add(%s) error: %v", ext, err)
		}
	}
	rows := ed.Rows()
	if len(rows) != 3 {
		t.Fatalf("Rows() = %d, want 3", len(rows))
	}
	for _, r := range rows {
		if !r.Present {
			t.Errorf("row %s: icon %s not present", r.Extension, r.Resolved)
		}
	}

	if err := ed.Remove(0); err != nil {
		t.Fatalf("Remove(0) error: %v", err)
	}
	got := ed.List()
	if len(got) != 2 || got[0].Extension != ".fspy" || got[1].Extension != ".sni" {
		t.Fatalf("List() after Remove(0) = %+v", got)
	}

	stored, err := ed.Store().Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 || stored[0] != got[0] || stored[1] != got[1] {
		t.Errorf("store = %+v, editor = %+v", stored, got)
	}
}

func TestEditorAddInvalidKeepsList(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	err := ed.Add("png", writeSourceIcon(t, "icon.png"))
	if !errors.Is(err, association.ErrValidation) {
		t.Fatalf("Add() error = %v, want ErrValidation", err)
	}
	if ed.Len() != 0 {
		t.Errorf("Len() = %d after rejected Add", ed.Len())
	}
}

func TestEditorRemoveOutOfRange(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	if err := ed.Remove(0); !errors.Is(err, association.ErrIndexOutOfRange) {
		t.Errorf("Remove(0) on empty editor error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestEditorReloadCorruptKeepsList(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	if err := ed.Add(".png", writeSourceIcon(t, "icon.png")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ed.Store().Path(), []byte("[{"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ed.Reload(); !errors.Is(err, association.ErrStoreCorrupt) {
		t.Fatalf("Reload() error = %v, want ErrStoreCorrupt", err)
	}
	if ed.Len() != 1 {
		t.Errorf("Len() = %d, failed reload must keep the list", ed.Len())
	}

	if err := ed.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if ed.Len() != 0 {
		t.Errorf("Len() = %d after Reset", ed.Len())
	}
	if err := ed.Reload(); err != nil {
		t.Errorf("Reload() after Reset error: %v", err)
	}
}

func TestEditorRowsMissingIcon(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	if _, err := ed.Store().Add(".gone", "gone.png"); err != nil {
		t.Fatal(err)
	}
	if err := ed.Reload(); err != nil {
		t.Fatal(err)
	}
	rows := ed.Rows()
	if len(rows) != 1 || rows[0].Present {
		t.Errorf("Rows() = %+v, want one row with Present=false", rows)
	}
	if want := filepath.Join(ed.Store().Library().Dir(), "gone.png"); rows[0].Resolved != want {
		t.Errorf("Resolved = %q, want %q", rows[0].Resolved, want)
	}
}

func TestValidateIconFile(t *testing.T) {
	t.Parallel()

	types, err := association.NewIconTypes([]string{".png"})
	if err != nil {
		t.Fatal(err)
	}
	good := writeSourceIcon(t, "ok.png")
	dir := filepath.Join(t.TempDir(), "dir.png")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := ValidateIconFile(types, good); err != nil {
		t.Errorf("ValidateIconFile(%s) error: %v", good, err)
	}
	for _, p := range []string{filepath.Join(t.TempDir(), "missing.png"), dir, writeSourceIcon(t, "x.txt")} {
		if err := ValidateIconFile(types, p); err == nil {
			t.Errorf("ValidateIconFile(%s) error = nil", p)
		}
	}
}
