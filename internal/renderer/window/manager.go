package window

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/danlliu/dvim/internal/renderer/backend"
)

// Manager owns the open windows and draws them in stacking order.
type Manager struct {
	mu      sync.Mutex
	windows map[string]*Window
	order   []string
}

// NewManager creates a manager with no windows.
func NewManager() *Manager {
	return &Manager{windows: make(map[string]*Window)}
}

// Open creates a window, replacing any open window of the same name.
// The window is raised to the top.
func (m *Manager) Open(name string, r Rect, b Border) error {
	if r.Empty() {
		return fmt.Errorf("open %s %s: %w", name, r, ErrInvalidGeometry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(name)
	m.windows[name] = newWindow(name, r, b)
	m.order = append(m.order, name)
	return nil
}

// OpenAuxiliaryWindow opens a bordered popup window.
func (m *Manager) OpenAuxiliaryWindow(name string, r Rect) error {
	return m.Open(name, r, BorderSingle)
}

// CloseWindow removes a window. Closing an unknown window is a no-op.
func (m *Manager) CloseWindow(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(name)
}

func (m *Manager) removeLocked(name string) {
	if _, ok := m.windows[name]; !ok {
		return
	}
	delete(m.windows, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Resize moves and resizes an open window, discarding its content.
func (m *Manager) Resize(name string, r Rect) error {
	if r.Empty() {
		return fmt.Errorf("resize %s %s: %w", name, r, ErrInvalidGeometry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[name]
	if !ok {
		return fmt.Errorf("resize %s: %w", name, ErrUnknownWindow)
	}
	w.rect = r
	w.Clear()
	return nil
}

// Geometry returns the rect of an open window.
func (m *Manager) Geometry(name string) (Rect, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[name]
	if !ok {
		return Rect{}, false
	}
	return w.rect, true
}

// Window returns an open window.
func (m *Manager) Window(name string) (*Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[name]
	return w, ok
}

// SetCellText writes styled text into a window. Unknown windows are ignored.
func (m *Manager) SetCellText(window string, row, col int, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.windows[window]; ok {
		w.SetText(row, col, text)
	}
}

// SetBorderStyle sets the style of a window's border.
func (m *Manager) SetBorderStyle(name string, st tcell.Style) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.windows[name]; ok {
		w.style = st
	}
}

// ClearWindow removes the content of a window.
func (m *Manager) ClearWindow(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.windows[name]; ok {
		w.Clear()
	}
}

// Names returns the open windows from bottom to top.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Draw clears the backend and draws every window, bottom to top.
func (m *Manager) Draw(b backend.Backend) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b.Clear()
	for _, name := range m.order {
		m.windows[name].draw(b)
	}
}
