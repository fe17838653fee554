package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/danlliu/dvim/internal/renderer/gutter"
)

// MaxCountLimit bounds editor.max_count.
const MaxCountLimit = 1_000_000

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, v any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
	}

	if c.Editor.MaxCount < 1 || c.Editor.MaxCount > MaxCountLimit {
		add("editor.max_count", "must be between 1 and "+strconv.Itoa(MaxCountLimit), c.Editor.MaxCount)
	}
	if c.Editor.TabWidth < 0 || c.Editor.TabWidth > 16 {
		add("editor.tab_width", "must be between 0 and 16", c.Editor.TabWidth)
	}
	if c.Layout.HintRows < 0 {
		add("layout.hint_rows", "must not be negative", c.Layout.HintRows)
	}
	if _, err := gutter.ParseLineNumberMode(c.Layout.LineNumbers); err != nil {
		add("layout.line_numbers", "must be absolute, relative or hybrid", c.Layout.LineNumbers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		add("log.level", "must be debug, info, warn or error", c.Log.Level)
	}

	for _, s := range []struct{ path, value string }{
		{"theme.gutter", c.Theme.Gutter},
		{"theme.highlight", c.Theme.Highlight},
		{"theme.status_line", c.Theme.StatusLine},
		{"theme.hints", c.Theme.Hints},
		{"theme.border", c.Theme.Border},
	} {
		if !validSGR(s.value) {
			add(s.path, "must be SGR parameters like \"1;31\"", s.value)
		}
	}
	return errors.Join(errs...)
}

// validSGR reports whether s is a ';'-separated list of numbers.
func validSGR(s string) bool {
	if s == "" {
		return true
	}
	for _, p := range strings.Split(s, ";") {
		if p == "" {
			return false
		}
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return false
			}
		}
	}
	return true
}

// LineNumberMode returns the parsed layout.line_numbers setting.
func (c *Config) LineNumberMode() gutter.LineNumberMode {
	m, _ := gutter.ParseLineNumberMode(c.Layout.LineNumbers)
	return m
}
