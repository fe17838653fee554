// Package backend provides the terminal abstraction the compositor draws to.
//
// Terminal drives a real terminal through tcell. NullBackend keeps the
// screen in memory and is used by tests and headless runs.
package backend

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one screen position.
type Cell struct {
	// Text is the grapheme drawn in the cell. Empty means a blank.
	Text string

	// Width is the number of columns the grapheme occupies (1 or 2).
	Width int

	Style tcell.Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Text: " ", Width: 1, Style: tcell.StyleDefault}
}

// NewCell returns a cell holding text in the given style.
func NewCell(text string, style tcell.Style) Cell {
	w := runewidth.StringWidth(text)
	if w < 1 {
		w = 1
	}
	return Cell{Text: text, Width: w, Style: style}
}

// EventType identifies the kind of event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize

	// EventInterrupt wakes the event loop with a value in Data.
	EventInterrupt
)

// Key identifies special keys. Printable input is KeyRune.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyCtrlC
)

// Event is an input or resize event.
type Event struct {
	Type EventType

	Key  Key
	Rune rune

	Width, Height int

	Data any
}

// Backend is the terminal the application draws to.
type Backend interface {
	// Init prepares the terminal for drawing.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	// Size returns the terminal size in columns and rows.
	Size() (width, height int)

	// SetCell draws a cell. Out-of-bounds positions are ignored.
	SetCell(x, y int, cell Cell)

	// Clear blanks the whole screen.
	Clear()

	// Show flushes pending changes to the terminal.
	Show()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues an event for PollEvent. Safe for concurrent use.
	PostEvent(event Event) error
}

// NullBackend is an in-memory Backend.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]Cell
	shown         int
	events        chan Event
}

// NewNullBackend creates an in-memory backend of the given size.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// Resize changes the size, clears the screen and queues a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.allocate()
	b.mu.Unlock()
	_ = b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = cell
}

// Cell returns the cell at a position, or an empty cell out of bounds.
func (b *NullBackend) Cell(x, y int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return EmptyCell()
	}
	return b.cells[y][x]
}

// Row returns the text of screen row y. The continuation column of a wide
// cell is skipped so the result reads like the terminal would show it.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y][x]
		if c.Text == "" {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(c.Text)
		if c.Width > 1 {
			x += c.Width - 1
		}
	}
	return sb.String()
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allocate()
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shown++
}

// Shown returns how many frames were flushed.
func (b *NullBackend) Shown() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shown
}

func (b *NullBackend) HideCursor() {}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) error {
	select {
	case b.events <- event:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// InjectKey queues a key event.
func (b *NullBackend) InjectKey(key Key, r rune) {
	_ = b.PostEvent(Event{Type: EventKey, Key: key, Rune: r})
}

// InjectString queues one rune event per rune of s.
func (b *NullBackend) InjectString(s string) {
	for _, r := range s {
		b.InjectKey(KeyRune, r)
	}
}
