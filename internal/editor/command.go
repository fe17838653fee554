package editor

import (
	"fmt"

	"github.com/danlliu/dvim/internal/input/mode"
	"github.com/danlliu/dvim/internal/input/vim"
	"github.com/danlliu/dvim/internal/renderer/window"
)

// Window names used with the WindowHost.
const (
	HostWindow     = "editor"
	RegisterWindow = "registers"
)

func (e *Editor) commandInput(b byte) {
	switch b {
	case keyEscape:
		e.command = e.command[:0]
		e.setMode(mode.Normal)
	case keyEnter:
		text := string(e.command)
		e.command = e.command[:0]
		e.execute(vim.ParseCommand(text))
		if e.mode == mode.Command {
			e.setMode(mode.Normal)
		}
	case keyBackspace:
		if n := len(e.command); n > 0 {
			e.command = e.command[:n-1]
		}
	default:
		e.command = append(e.command, b)
	}
}

func (e *Editor) execute(cmd vim.Command) {
	switch cmd.Kind {
	case vim.CommandRegShow:
		e.showRegisters()
		e.setMode(mode.RegisterInspector)

	case vim.CommandRegSelect:
		e.regs.SetActive(cmd.Register)

	case vim.CommandWriteQuit:
		for i := 0; i < len(cmd.Ops); i++ {
			switch cmd.Ops[i] {
			case 'w':
				if err := e.Save(); err != nil {
					e.fail("Write failed: " + err.Error())
					return
				}
			case 'q':
				e.setMode(mode.Stopped)
			}
		}

	default:
		e.fail("Unrecognized command " + vim.Escape(cmd.Text))
	}
}

// Save writes the document to its backing file, reports the outcome to
// OnSave and records a failure in LastError.
func (e *Editor) Save() error {
	err := e.save()
	e.lastErr = err
	if e.opts.OnSave != nil {
		e.opts.OnSave(e.path, err)
	}
	return err
}

func (e *Editor) save() error {
	if e.path == "" {
		return ErrNoFileName
	}
	if err := e.doc.Save(e.path); err != nil {
		return fmt.Errorf("save %s: %w", e.path, err)
	}
	e.modified = false
	return nil
}

func (e *Editor) registerInput(b byte) {
	if b != keyEscape {
		return
	}
	if e.host != nil {
		e.host.CloseWindow(RegisterWindow)
	}
	e.setMode(mode.Normal)
}

// registerRect returns the inspector geometry: the host editor window
// inset on every side, or a fixed box when that is unavailable.
func (e *Editor) registerRect() window.Rect {
	fallback := window.Rect{Row: 2, Col: 4, Width: 60, Height: 16}
	r, ok := e.host.Geometry(HostWindow)
	if !ok {
		return fallback
	}
	inset := window.Rect{Row: r.Row + 4, Col: r.Col + 8, Width: r.Width - 16, Height: r.Height - 8}
	if inset.Width <= 0 || inset.Height <= 0 {
		return fallback
	}
	return inset
}

// RegisterLines returns the inspector content rows, one per register.
func (e *Editor) RegisterLines() []string {
	regs := e.regs.All()
	out := make([]string, len(regs))
	for i, text := range regs {
		mark := " "
		if i == e.regs.Active() {
			mark = "*"
		}
		out[i] = fmt.Sprintf("%d%s: %s", i, mark, vim.Escape(text))
	}
	return out
}

func (e *Editor) showRegisters() {
	if e.host == nil {
		return
	}
	if err := e.host.OpenAuxiliaryWindow(RegisterWindow, e.registerRect()); err != nil {
		return
	}
	e.host.SetCellText(RegisterWindow, 2, 3, "Registers")
	e.host.SetCellText(RegisterWindow, 3, 3, "=========")
	for i, line := range e.RegisterLines() {
		e.host.SetCellText(RegisterWindow, 4+i, 3, line)
	}
}
