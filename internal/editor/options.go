package editor

import (
	"github.com/danlliu/dvim/internal/input/mode"
	"github.com/danlliu/dvim/internal/input/vim"
	"github.com/danlliu/dvim/internal/renderer/gutter"
	"github.com/danlliu/dvim/internal/renderer/layout"
)

// Options configures an Editor.
type Options struct {
	// MaxCount caps repeat counts. Values <= 0 use vim.DefaultMaxCount.
	MaxCount int

	// Theme styles the projected frame.
	Theme layout.Theme

	// Numbers selects absolute, relative or hybrid line numbers.
	Numbers gutter.LineNumberMode

	// TabWidth expands tabs in the projected frame. 0 draws a tab as one column.
	TabWidth int

	// OnModeChange is called after every mode transition.
	OnModeChange func(from, to mode.Mode)

	// OnSave is called after every write command with its outcome.
	OnSave func(path string, err error)
}

// DefaultOptions returns the default editor options.
func DefaultOptions() Options {
	return Options{
		MaxCount: vim.DefaultMaxCount,
		Theme:    layout.DefaultTheme(),
		Numbers:  gutter.LineNumberAbsolute,
	}
}
