package host

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alta-arts/fileicons/internal/defs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubPlugin struct {
	name     string
	active   bool
	settings SettingsUIFunc
	resolver IconResolverFunc
}

func (s *stubPlugin) Name() string   { return s.name }
func (s *stubPlugin) IsActive() bool { return s.active }
func (s *stubPlugin) RegisterCallbacks(r *Registry) {
	if s.settings != nil {
		r.OnSettingsUI(s.name, s.settings)
	}
	if s.resolver != nil {
		r.OnIconForFileType(s.name, s.resolver)
	}
}

type nopModel struct{}

func (nopModel) Init() tea.Cmd                       { return nil }
func (nopModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return nopModel{}, nil }
func (nopModel) View() string                        { return "" }

func TestRegistry_RegisterSkipsInactive(t *testing.T) {
	t.Parallel()

	r := NewRegistry(discardLogger())
	r.Register(&stubPlugin{
		name:     "off",
		active:   false,
		resolver: func(string) (string, bool, error) { return "x.png", true, nil },
	})

	if got := r.Callbacks(defs.CallbackIconForFileType); got != 0 {
		t.Errorf("Callbacks() = %d, want 0", got)
	}
	if _, ok := r.ResolveIconForFileType(".xcf"); ok {
		t.Error("inactive plugin answered lookup")
	}
}

func TestRegistry_ResolveFirstHitWins(t *testing.T) {
	t.Parallel()

	r := NewRegistry(discardLogger())
	r.Register(&stubPlugin{name: "broken", active: true,
		resolver: func(string) (string, bool, error) { return "", false, errors.New("boom") }})
	r.Register(&stubPlugin{name: "miss", active: true,
		resolver: func(string) (string, bool, error) { return "", false, nil }})
	r.Register(&stubPlugin{name: "first", active: true,
		resolver: func(ext string) (string, bool, error) { return "/icons/first" + ext, true, nil }})
	r.Register(&stubPlugin{name: "second", active: true,
		resolver: func(string) (string, bool, error) { return "/icons/second", true, nil }})

	got, ok := r.ResolveIconForFileType(".xcf")
	if !ok {
		t.Fatal("ResolveIconForFileType() found nothing")
	}
	if got != "/icons/first.xcf" {
		t.Errorf("ResolveIconForFileType() = %q, want %q", got, "/icons/first.xcf")
	}
}

func TestRegistry_ResolveMiss(t *testing.T) {
	t.Parallel()

	r := NewRegistry(discardLogger())
	if got, ok := r.ResolveIconForFileType(".xcf"); ok || got != "" {
		t.Errorf("ResolveIconForFileType() = (%q, %v), want miss", got, ok)
	}
}

func TestRegistry_BuildSettingsUI(t *testing.T) {
	t.Parallel()

	var order []string
	add := func(name string, err error) SettingsUIFunc {
		return func(_ context.Context, p Panel) error {
			order = append(order, name)
			if err != nil {
				return err
			}
			return p.AddTab(name, nopModel{})
		}
	}

	t.Run("dispatches in order", func(t *testing.T) {
		order = nil
		r := NewRegistry(discardLogger())
		r.Register(&stubPlugin{name: "a", active: true, settings: add("a", nil)})
		r.Register(&stubPlugin{name: "b", active: true, settings: add("b", nil)})

		panel := NewTerminalPanel()
		if err := r.BuildSettingsUI(context.Background(), panel); err != nil {
			t.Fatalf("BuildSettingsUI() error: %v", err)
		}
		tabs := panel.Tabs()
		if len(tabs) != 2 || tabs[0].Title != "a" || tabs[1].Title != "b" {
			t.Errorf("tabs = %+v, want a then b", tabs)
		}
	})

	t.Run("first error stops dispatch", func(t *testing.T) {
		order = nil
		boom := errors.New("boom")
		r := NewRegistry(discardLogger())
		r.Register(&stubPlugin{name: "a", active: true, settings: add("a", boom)})
		r.Register(&stubPlugin{name: "b", active: true, settings: add("b", nil)})

		err := r.BuildSettingsUI(context.Background(), NewTerminalPanel())
		if !errors.Is(err, boom) {
			t.Fatalf("BuildSettingsUI() error = %v, want boom", err)
		}
		if len(order) != 1 {
			t.Errorf("callbacks run = %v, want only a", order)
		}
	})

	t.Run("nothing registered", func(t *testing.T) {
		r := NewRegistry(discardLogger())
		if err := r.BuildSettingsUI(context.Background(), NewTerminalPanel()); !errors.Is(err, ErrNoSettingsUI) {
			t.Errorf("BuildSettingsUI() error = %v, want ErrNoSettingsUI", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		order = nil
		r := NewRegistry(discardLogger())
		r.Register(&stubPlugin{name: "a", active: true, settings: add("a", nil)})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := r.BuildSettingsUI(ctx, NewTerminalPanel()); !errors.Is(err, context.Canceled) {
			t.Errorf("BuildSettingsUI() error = %v, want context.Canceled", err)
		}
		if len(order) != 0 {
			t.Errorf("callbacks run = %v, want none", order)
		}
	})
}

func TestTerminalPanel_DuplicateTab(t *testing.T) {
	t.Parallel()

	p := NewTerminalPanel()
	if err := p.AddTab("x", nopModel{}); err != nil {
		t.Fatalf("AddTab() error: %v", err)
	}
	if err := p.AddTab("x", nopModel{}); !errors.Is(err, ErrDuplicateTab) {
		t.Errorf("AddTab() error = %v, want ErrDuplicateTab", err)
	}
}
