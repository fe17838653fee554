package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danlliu/dvim/internal/config/loader"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DVIM_"

// Config is the complete dvim configuration.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Theme  ThemeConfig  `toml:"theme" yaml:"theme"`
	Layout LayoutConfig `toml:"layout" yaml:"layout"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EditorConfig contains editing settings.
type EditorConfig struct {
	// MaxCount caps repeat counts.
	MaxCount int `toml:"max_count" yaml:"max_count"`
	// TabWidth expands tabs on screen. 0 draws a tab as one column.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
}

// ThemeConfig holds SGR parameter strings ("1;31", "38;5;243").
type ThemeConfig struct {
	Gutter     string `toml:"gutter" yaml:"gutter"`
	Highlight  string `toml:"highlight" yaml:"highlight"`
	StatusLine string `toml:"status_line" yaml:"status_line"`
	Hints      string `toml:"hints" yaml:"hints"`
	Border     string `toml:"border" yaml:"border"`
}

// LayoutConfig contains screen layout settings.
type LayoutConfig struct {
	// LineNumbers is absolute, relative or hybrid.
	LineNumbers string `toml:"line_numbers" yaml:"line_numbers"`
	// HintRows is the height of the usage hint panel. 0 hides it.
	HintRows int `toml:"hint_rows" yaml:"hint_rows"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards logs.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			MaxCount: 10000,
			TabWidth: 0,
		},
		Theme: ThemeConfig{
			Gutter:     "38;5;243",
			Highlight:  "7",
			StatusLine: "1",
			Hints:      "2",
			Border:     "",
		},
		Layout: LayoutConfig{
			LineNumbers: "absolute",
			HintRows:    10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// DefaultPath returns the user configuration file path.
func DefaultPath() string {
	return filepath.Join(defaultUserConfigDir(), "config.toml")
}

func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dvim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dvim")
}

// Load builds the configuration from the defaults, the file at path and
// the environment, then validates it. A missing file is not an error.
// An empty path skips the file layer.
func Load(path string) (*Config, error) {
	return LoadWith(loader.New(), loader.NewEnvLoader(EnvPrefix), path)
}

// LoadWith is Load with explicit file and environment loaders.
func LoadWith(files *loader.Loader, env *loader.EnvLoader, path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := files.LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if env != nil {
		known := make(map[string]bool)
		for _, p := range Paths() {
			known[p] = true
		}
		overrides := env.Load()
		for _, o := range env.Scan() {
			if known[o.Path] {
				overrides = append(overrides, o)
			}
		}
		for _, o := range overrides {
			if err := cfg.Set(o.Path, o.Value); err != nil {
				return nil, fmt.Errorf("environment %s: %w", o.Env, err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
