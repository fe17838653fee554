package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal is the tcell Backend.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// locked runs f while holding the screen lock.
func (t *Terminal) locked(f func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f(t.screen)
}

func (t *Terminal) Init() error {
	var err error
	t.locked(func(s tcell.Screen) {
		if err = s.Init(); err != nil {
			return
		}
		s.SetStyle(tcell.StyleDefault)
		s.Clear()
	})
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	return nil
}

func (t *Terminal) Shutdown() { t.locked(tcell.Screen.Fini) }

func (t *Terminal) Clear() { t.locked(tcell.Screen.Clear) }

func (t *Terminal) Show() { t.locked(tcell.Screen.Show) }

func (t *Terminal) HideCursor() { t.locked(tcell.Screen.HideCursor) }

func (t *Terminal) Size() (w, h int) {
	t.locked(func(s tcell.Screen) { w, h = s.Size() })
	return w, h
}

// SetCell draws the first rune of the cell text with the rest as
// combining runes. An empty cell draws a space.
func (t *Terminal) SetCell(x, y int, cell Cell) {
	runes := []rune(cell.Text)
	if len(runes) == 0 {
		runes = []rune{' '}
	}
	t.locked(func(s tcell.Screen) {
		s.SetContent(x, y, runes[0], runes[1:], cell.Style)
	})
}

// PollEvent blocks without the screen lock so drawing from other
// goroutines is never held up by input.
func (t *Terminal) PollEvent() Event {
	switch e := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: convertKey(e.Key()), Rune: e.Rune()}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}
	}
	return Event{Type: EventNone}
}

// PostEvent queues key and interrupt events. Other event types are dropped.
func (t *Terminal) PostEvent(event Event) error {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(tcellKey(event.Key), event.Rune, tcell.ModNone)
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(event.Data)
	default:
		return nil
	}
	if err := t.screen.PostEvent(ev); err != nil {
		return ErrEventQueueFull
	}
	return nil
}

// keyTable pairs each Key with the tcell key it is posted as.
var keyTable = []struct {
	key  Key
	tkey tcell.Key
}{
	{KeyRune, tcell.KeyRune},
	{KeyEscape, tcell.KeyEscape},
	{KeyEnter, tcell.KeyEnter},
	{KeyTab, tcell.KeyTab},
	{KeyBackspace, tcell.KeyBackspace2},
	{KeyDelete, tcell.KeyDelete},
	{KeyCtrlC, tcell.KeyCtrlC},
}

func convertKey(k tcell.Key) Key {
	if k == tcell.KeyBackspace {
		return KeyBackspace
	}
	for _, e := range keyTable {
		if e.tkey == k {
			return e.key
		}
	}
	return KeyNone
}

func tcellKey(k Key) tcell.Key {
	for _, e := range keyTable {
		if e.key == k {
			return e.tkey
		}
	}
	return tcell.KeyNUL
}
