package editor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alta-arts/fileicons/pkg/models"
)

func TestWatchStoreReportsSave(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	w, err := WatchStore(ed.Store().Path(), discardLogger())
	if err != nil {
		t.Fatalf("WatchStore() error: %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := ed.Store().Save(models.List{{Extension: ".png", IconPath: "a.png"}}); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported within 2 seconds")
	}
}

func TestWatchStoreIgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	w, err := WatchStore(ed.Store().Path(), discardLogger())
	if err != nil {
		t.Fatalf("WatchStore() error: %v", err)
	}
	defer func() { _ = w.Close() }()

	other := filepath.Join(filepath.Dir(ed.Store().Path()), "unrelated.txt")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
		t.Fatal("change reported for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
