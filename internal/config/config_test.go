package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danlliu/dvim/internal/config/loader"
	"github.com/danlliu/dvim/internal/renderer/gutter"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Editor.MaxCount != 10000 {
		t.Errorf("MaxCount = %d, want 10000", cfg.Editor.MaxCount)
	}
	if cfg.Theme.Highlight != "7" || cfg.Theme.Gutter != "38;5;243" {
		t.Errorf("Theme = %+v", cfg.Theme)
	}
	if cfg.LineNumberMode() != gutter.LineNumberAbsolute {
		t.Errorf("LineNumberMode = %v", cfg.LineNumberMode())
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "dvim", "config.toml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"zero max count", func(c *Config) { c.Editor.MaxCount = 0 }, "editor.max_count"},
		{"huge max count", func(c *Config) { c.Editor.MaxCount = MaxCountLimit + 1 }, "editor.max_count"},
		{"negative tab width", func(c *Config) { c.Editor.TabWidth = -1 }, "editor.tab_width"},
		{"negative hint rows", func(c *Config) { c.Layout.HintRows = -1 }, "layout.hint_rows"},
		{"line numbers", func(c *Config) { c.Layout.LineNumbers = "roman" }, "layout.line_numbers"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"highlight", func(c *Config) { c.Theme.Highlight = "bold" }, "theme.highlight"},
		{"gutter", func(c *Config) { c.Theme.Gutter = "1;;2" }, "theme.gutter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("ValidationError = %v, want path %s", ve, tt.path)
			}
		})
	}
}

func TestSetGet(t *testing.T) {
	cfg := Default()
	for _, path := range Paths() {
		if _, err := cfg.Get(path); err != nil {
			t.Errorf("Get(%q) error = %v", path, err)
		}
	}

	if err := cfg.Set("editor.max_count", " 42 "); err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.MaxCount != 42 {
		t.Errorf("MaxCount = %d", cfg.Editor.MaxCount)
	}
	if err := cfg.Set("log.level", "DEBUG"); err != nil {
		t.Fatal(err)
	}
	if v, _ := cfg.Get("log.level"); v != "debug" {
		t.Errorf("log.level = %q", v)
	}
	if err := cfg.Set("editor.tab_width", "wide"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Set(non-integer) = %v, want ErrInvalidConfig", err)
	}
	if err := cfg.Set("editor.colour", "x"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("Set(unknown) = %v, want ErrSettingNotFound", err)
	}
	if _, err := cfg.Get("editor.colour"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("Get(unknown) = %v, want ErrSettingNotFound", err)
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	cp := cfg.Clone()
	cp.Editor.MaxCount = 1
	if cfg.Editor.MaxCount == 1 {
		t.Error("Clone shares state with the original")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "[editor]\ntab_width = 8\n\n[layout]\nline_numbers = \"hybrid\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DVIM_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.LineNumberMode() != gutter.LineNumberHybrid {
		t.Errorf("LineNumberMode = %v, want hybrid", cfg.LineNumberMode())
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn from the environment", cfg.Log.Level)
	}
	if cfg.Editor.MaxCount != 10000 {
		t.Errorf("MaxCount = %d, want default", cfg.Editor.MaxCount)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme:\n  highlight: \"4\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadWith(loader.New(), nil, path)
	if err != nil {
		t.Fatalf("LoadWith() error = %v", err)
	}
	if cfg.Theme.Highlight != "4" {
		t.Errorf("Highlight = %q, want 4", cfg.Theme.Highlight)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadWith(loader.New(), nil, filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadWith() error = %v", err)
	}
	if cfg.Editor.MaxCount != Default().Editor.MaxCount {
		t.Error("missing file should yield the defaults")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor]\nmax_count = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWith(loader.New(), nil, path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadWith() = %v, want ErrInvalidConfig", err)
	}

	t.Setenv("DVIM_MAX_COUNT", "lots")
	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() with bad env = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadGenericEnvironment(t *testing.T) {
	t.Setenv("DVIM_THEME_STATUS_LINE", "1;34")
	t.Setenv("DVIM_LAYOUT_HINT_ROWS", "3")
	t.Setenv("DVIM_UNRELATED", "ignored")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme.StatusLine != "1;34" {
		t.Errorf("StatusLine = %q, want 1;34", cfg.Theme.StatusLine)
	}
	if cfg.Layout.HintRows != 3 {
		t.Errorf("HintRows = %d, want 3", cfg.Layout.HintRows)
	}
}
