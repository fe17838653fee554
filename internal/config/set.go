package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Paths returns every settable path in sorted order.
func Paths() []string {
	return []string{
		"editor.max_count",
		"editor.tab_width",
		"layout.hint_rows",
		"layout.line_numbers",
		"log.file",
		"log.level",
		"theme.border",
		"theme.gutter",
		"theme.highlight",
		"theme.hints",
		"theme.status_line",
	}
}

// Set assigns a setting from its string form. The value is not validated;
// call Validate afterwards.
func (c *Config) Set(path, value string) error {
	switch strings.ToLower(path) {
	case "editor.max_count":
		return setInt(path, value, &c.Editor.MaxCount)
	case "editor.tab_width":
		return setInt(path, value, &c.Editor.TabWidth)
	case "layout.hint_rows":
		return setInt(path, value, &c.Layout.HintRows)
	case "layout.line_numbers":
		c.Layout.LineNumbers = value
	case "log.file":
		c.Log.File = value
	case "log.level":
		c.Log.Level = strings.ToLower(value)
	case "theme.border":
		c.Theme.Border = value
	case "theme.gutter":
		c.Theme.Gutter = value
	case "theme.highlight":
		c.Theme.Highlight = value
	case "theme.hints":
		c.Theme.Hints = value
	case "theme.status_line":
		c.Theme.StatusLine = value
	default:
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	return nil
}

// Get returns the string form of a setting.
func (c *Config) Get(path string) (string, error) {
	switch strings.ToLower(path) {
	case "editor.max_count":
		return strconv.Itoa(c.Editor.MaxCount), nil
	case "editor.tab_width":
		return strconv.Itoa(c.Editor.TabWidth), nil
	case "layout.hint_rows":
		return strconv.Itoa(c.Layout.HintRows), nil
	case "layout.line_numbers":
		return c.Layout.LineNumbers, nil
	case "log.file":
		return c.Log.File, nil
	case "log.level":
		return c.Log.Level, nil
	case "theme.border":
		return c.Theme.Border, nil
	case "theme.gutter":
		return c.Theme.Gutter, nil
	case "theme.highlight":
		return c.Theme.Highlight, nil
	case "theme.hints":
		return c.Theme.Hints, nil
	case "theme.status_line":
		return c.Theme.StatusLine, nil
	}
	return "", fmt.Errorf("%w: %s", ErrSettingNotFound, path)
}

func setInt(path, value string, dst *int) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return &ValidationError{Path: path, Message: "not an integer", Value: value}
	}
	*dst = n
	return nil
}
