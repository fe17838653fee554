// Package app runs the editor against a terminal backend.
//
// The App owns the window manager, the status line and the viewport. It
// translates backend events into editor input bytes, redraws the screen
// after every event, and applies configuration reloads posted by the
// config watcher.
package app

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/danlliu/dvim/internal/config"
	"github.com/danlliu/dvim/internal/config/watcher"
	"github.com/danlliu/dvim/internal/editor"
	"github.com/danlliu/dvim/internal/engine/buffer"
	"github.com/danlliu/dvim/internal/input/mode"
	"github.com/danlliu/dvim/internal/renderer/backend"
	"github.com/danlliu/dvim/internal/renderer/layout"
	"github.com/danlliu/dvim/internal/renderer/statusline"
	"github.com/danlliu/dvim/internal/renderer/viewport"
	"github.com/danlliu/dvim/internal/renderer/window"
)

// Options configures an App.
type Options struct {
	// Path is the file to edit. Empty starts an unnamed document.
	Path string

	// Config is the initial configuration. Nil uses config.Default().
	Config *config.Config

	// ConfigPath is watched for changes when non-empty.
	ConfigPath string

	// Backend is the terminal to draw to. Required.
	Backend backend.Backend

	// Logger receives application logs. Nil discards them. The app sets
	// its level on config reload.
	Logger *Logger
}

// App is a running editor session.
type App struct {
	opts    Options
	cfg     *config.Config
	backend backend.Backend
	log     *Logger

	windows *window.Manager
	editor  *editor.Editor
	status  *statusline.StatusLine
	view    *viewport.Viewport

	screen   screenLayout
	screenOK bool
	notice   string

	running atomic.Bool
}

// New creates an App and loads the file to edit.
func New(opts Options) (*App, error) {
	if opts.Backend == nil {
		return nil, NewOperationError("create", "app", errors.New("no backend"))
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = NewLogger(DefaultLoggerConfig())
	}

	a := &App{
		opts:    opts,
		cfg:     cfg,
		backend: opts.Backend,
		log:     log.WithComponent("app"),
		windows: window.NewManager(),
		status:  statusline.New(cfg.Theme.StatusLine),
		view:    viewport.NewViewport(1),
	}

	edOpts := a.editorOptions(log.WithComponent("editor"))
	if opts.Path == "" {
		a.editor = editor.New("", buffer.New(), a.windows, edOpts)
	} else {
		ed, err := editor.Open(opts.Path, a.windows, edOpts)
		if err != nil {
			return nil, NewOperationError("open", opts.Path, err)
		}
		a.editor = ed
	}
	return a, nil
}

func (a *App) editorOptions(log *Logger) editor.Options {
	opts := editor.DefaultOptions()
	opts.MaxCount = a.cfg.Editor.MaxCount
	opts.Theme = themeFrom(a.cfg)
	opts.Numbers = a.cfg.LineNumberMode()
	opts.TabWidth = a.cfg.Editor.TabWidth
	opts.OnModeChange = func(from, to mode.Mode) {
		log.Debug("mode %s -> %s", from, to)
	}
	opts.OnSave = func(path string, err error) {
		if err != nil {
			log.Error("write %s: %v", path, err)
			return
		}
		log.Info("wrote %s", path)
	}
	return opts
}

func themeFrom(cfg *config.Config) layout.Theme {
	t := layout.DefaultTheme()
	t.Gutter = cfg.Theme.Gutter
	if cfg.Theme.Highlight != "" {
		t.Highlight = cfg.Theme.Highlight
	}
	return t
}

// Editor returns the editor driven by the app.
func (a *App) Editor() *editor.Editor {
	return a.editor
}

// Config returns the configuration in effect.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Run draws the editor and processes events until the editor stops or ctx
// is cancelled. Quitting the editor returns nil; cancellation returns
// ctx.Err().
func (a *App) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer a.backend.Shutdown()
	a.backend.HideCursor()
	a.applyTheme()
	a.relayout(a.backend.Size())

	stopWatcher := a.startWatcher()
	defer stopWatcher()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
		case <-done:
		}
	}()

	a.log.Info("editing %q", a.opts.Path)
	for {
		a.draw()
		err := a.handleEvent(ctx, a.backend.PollEvent())
		if err == nil {
			continue
		}
		if errors.Is(err, ErrQuit) {
			a.log.Info("quit")
			return nil
		}
		return err
	}
}

func (a *App) handleEvent(ctx context.Context, ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		a.notice = ""
		for _, b := range keyBytes(ev) {
			a.editor.HandleInput(b)
		}
		if a.editor.Stopped() {
			return ErrQuit
		}
	case backend.EventResize:
		w, h := ev.Width, ev.Height
		if w <= 0 || h <= 0 {
			w, h = a.backend.Size()
		}
		a.relayout(w, h)
	case backend.EventInterrupt:
		if cfg, ok := ev.Data.(*config.Config); ok {
			a.applyConfig(cfg)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// applyConfig switches to a reloaded configuration. The count cap is only
// read at startup.
func (a *App) applyConfig(cfg *config.Config) {
	a.cfg = cfg
	a.editor.SetTheme(themeFrom(cfg))
	a.editor.SetDisplay(cfg.LineNumberMode(), cfg.Editor.TabWidth)
	a.log.SetLevel(ParseLogLevel(cfg.Log.Level))
	a.applyTheme()
	a.relayout(a.backend.Size())
	a.notice = "config reloaded"
	a.log.Info("config reloaded")
}

func (a *App) startWatcher() func() {
	path := a.opts.ConfigPath
	if path == "" {
		return func() {}
	}
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		a.log.Warn("config watcher: %v", err)
	}))
	if err != nil {
		a.log.Warn("%v", NewOperationError("watch config", path, err))
		return func() {}
	}
	if err := w.Watch(path); err != nil {
		a.log.Warn("%v", NewOperationError("watch config", path, err))
		_ = w.Stop()
		return func() {}
	}
	w.OnChange(func(ev watcher.Event) {
		cfg, err := config.Load(path)
		if err != nil {
			a.log.Warn("reload %s (%s): %v", path, ev.Op, err)
			return
		}
		if err := a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: cfg}); err != nil {
			a.log.Warn("reload %s: %v", path, err)
		}
	})
	w.Start()
	return func() { _ = w.Stop() }
}
