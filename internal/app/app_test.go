package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danlliu/dvim/internal/config"
	"github.com/danlliu/dvim/internal/editor"
	"github.com/danlliu/dvim/internal/renderer/backend"
	"github.com/danlliu/dvim/internal/renderer/window"
)

func runApp(t *testing.T, a *App, ctx context.Context) error {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- a.Run(ctx) }()
	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func newApp(t *testing.T, path string, nb *backend.NullBackend) *App {
	t.Helper()
	a, err := New(Options{Path: path, Backend: nb})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestNewRequiresBackend(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error without backend")
	}
}

func TestRunQuitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nb := backend.NewNullBackend(80, 24)
	a := newApp(t, path, nb)

	nb.InjectString("x:wq\r")
	if err := runApp(t, a, context.Background()); err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ello\n" {
		t.Errorf("file = %q, want %q", data, "ello\n")
	}
}

func TestRunCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	nb := backend.NewNullBackend(80, 24)
	a := newApp(t, path, nb)

	nb.InjectString("ihi")
	nb.InjectKey(backend.KeyEscape, 0)
	nb.InjectString(":wq")
	nb.InjectKey(backend.KeyEnter, 0)
	if err := runApp(t, a, context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hi\n" {
		t.Errorf("file = %q, want %q", data, "hi\n")
	}
}

func TestRunCancelled(t *testing.T) {
	nb := backend.NewNullBackend(80, 24)
	a := newApp(t, "", nb)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runApp(t, a, ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}

func TestRunDrawsScreen(t *testing.T) {
	nb := backend.NewNullBackend(80, 24)
	a := newApp(t, "", nb)

	nb.InjectString("ihi")
	nb.InjectKey(backend.KeyEscape, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = runApp(t, a, ctx)

	if got := nb.Row(0); !strings.HasPrefix(got, "╔") {
		t.Errorf("row 0 = %q, want border", got)
	}
	if got := nb.Row(1); !strings.HasPrefix(got, "║1 hi") {
		t.Errorf("row 1 = %q, want line 1", got)
	}
	status := nb.Row(13)
	if !strings.Contains(status, "NORMAL") || !strings.Contains(status, "[No Name] [+]") {
		t.Errorf("status row = %q", status)
	}
	if strings.TrimSpace(nb.Row(14)) == "" {
		t.Error("hint panel is empty")
	}
	if nb.Shown() == 0 {
		t.Error("backend never shown")
	}
}

func TestRunShowsCommandAndError(t *testing.T) {
	nb := backend.NewNullBackend(80, 24)
	a := newApp(t, "", nb)

	nb.InjectString(":zz\r")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = runApp(t, a, ctx)

	if got := nb.Row(13); !strings.Contains(got, "Unrecognized command zz") {
		t.Errorf("status row = %q", got)
	}
}

func TestRunResize(t *testing.T) {
	nb := backend.NewNullBackend(80, 24)
	a := newApp(t, "", nb)

	nb.Resize(40, 12)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = runApp(t, a, ctx)

	r, ok := a.windows.Geometry(editor.HostWindow)
	if !ok {
		t.Fatal("editor window missing")
	}
	want := window.Rect{Row: 0, Col: 0, Width: 40, Height: 11}
	if r != want {
		t.Errorf("editor rect = %v, want %v", r, want)
	}
	if _, ok := a.windows.Geometry(HintsWindow); ok {
		t.Error("hint window should close when it does not fit")
	}
}

func TestRunAppliesReloadedConfig(t *testing.T) {
	nb := backend.NewNullBackend(80, 24)
	a := newApp(t, "", nb)

	cfg := config.Default()
	cfg.Layout.HintRows = 2
	cfg.Layout.LineNumbers = "relative"
	if err := nb.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: cfg}); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = runApp(t, a, ctx)

	if a.Config() != cfg {
		t.Error("config not applied")
	}
	if a.screen.hintRows != 2 {
		t.Errorf("hint rows = %d, want 2", a.screen.hintRows)
	}
	if got := nb.Row(21); !strings.Contains(got, "config reloaded") {
		t.Errorf("status row = %q", got)
	}
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		hintRows      int
		wantEditor    window.Rect
		wantHints     int
		wantErr       bool
	}{
		{"default", 80, 24, 10, window.Rect{Row: 0, Col: 0, Width: 80, Height: 13}, 10, false},
		{"no hints", 80, 24, 0, window.Rect{Row: 0, Col: 0, Width: 80, Height: 23}, 0, false},
		{"hints dropped", 80, 12, 10, window.Rect{Row: 0, Col: 0, Width: 80, Height: 11}, 0, false},
		{"negative hints", 80, 24, -1, window.Rect{Row: 0, Col: 0, Width: 80, Height: 23}, 0, false},
		{"too short", 80, 3, 0, window.Rect{}, 0, true},
		{"too narrow", 2, 24, 0, window.Rect{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := computeLayout(tt.width, tt.height, tt.hintRows)
			if tt.wantErr {
				if !errors.Is(err, ErrScreenTooSmall) {
					t.Fatalf("err = %v, want ErrScreenTooSmall", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.editor != tt.wantEditor {
				t.Errorf("editor = %v, want %v", s.editor, tt.wantEditor)
			}
			if s.hintRows != tt.wantHints {
				t.Errorf("hintRows = %d, want %d", s.hintRows, tt.wantHints)
			}
			if s.status.Row != s.editor.Height || s.status.Height != 1 {
				t.Errorf("status = %v", s.status)
			}
		})
	}
}

func TestKeyBytes(t *testing.T) {
	tests := []struct {
		name string
		ev   backend.Event
		want string
	}{
		{"letter", backend.Event{Key: backend.KeyRune, Rune: 'a'}, "a"},
		{"multibyte", backend.Event{Key: backend.KeyRune, Rune: 'é'}, "\xc3\xa9"},
		{"enter", backend.Event{Key: backend.KeyEnter}, "\r"},
		{"escape", backend.Event{Key: backend.KeyEscape}, "\x1b"},
		{"backspace", backend.Event{Key: backend.KeyBackspace}, "\x7f"},
		{"tab", backend.Event{Key: backend.KeyTab}, "\t"},
		{"delete", backend.Event{Key: backend.KeyDelete}, ""},
		{"ctrl-c", backend.Event{Key: backend.KeyCtrlC}, ""},
		{"invalid rune", backend.Event{Key: backend.KeyRune, Rune: -1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(keyBytes(tt.ev)); got != tt.want {
				t.Errorf("keyBytes = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaint(t *testing.T) {
	if got := paint("", "x"); got != "x" {
		t.Errorf("paint empty = %q", got)
	}
	if got := paint("2", "x"); got != "\x1b[2mx\x1b[0m" {
		t.Errorf("paint = %q", got)
	}
}
