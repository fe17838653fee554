// Package watcher reports changes to configuration files.
//
// Directories are watched rather than files, so a file replaced by rename
// is still observed and a file that does not exist yet is reported when it
// is created. A burst of changes to one file is delivered once, after the
// file has been quiet for the debounce interval.
package watcher

import (
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a stopped watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// DefaultDebounce is the quiet interval used when no option overrides it.
const DefaultDebounce = 100 * time.Millisecond

// Event is one settled change to a watched file.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the most significant operation of the burst.
	Op Operation

	// Time is when the last change of the burst was seen.
	Time time.Time
}

// Operation is the kind of change.
type Operation int

const (
	OpWrite Operation = iota
	OpCreate
	OpRemove
	OpRename
)

var opNames = [...]string{"write", "create", "remove", "rename"}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// Handler is called with each settled change.
type Handler func(event Event)

// ErrorHandler is called when fsnotify reports an error.
type ErrorHandler func(err error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet interval. Zero delivers every change at once.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the handler for fsnotify errors.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *Watcher) { w.onError = h }
}

// Watcher watches a set of files.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onError  ErrorHandler

	mu       sync.Mutex
	files    map[string]struct{}
	dirs     map[string]int // watched files per directory
	handlers []Handler
	bursts   map[string]*burst
	started  bool
	closed   bool

	done chan struct{}
	wg   sync.WaitGroup
}

// burst accumulates the changes to one file until its timer fires.
type burst struct {
	op    Operation
	last  time.Time
	timer *time.Timer
}

// New creates a watcher. Call Start to begin delivering events.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		debounce: DefaultDebounce,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]int),
		bursts:   make(map[string]*burst),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch adds a file. The file need not exist, but its directory must.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}
	if _, ok := w.files[abs]; ok {
		return nil
	}
	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[abs] = struct{}{}
	return nil
}

// Unwatch removes a file. Its directory is released with its last file.
func (w *Watcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}
	if _, ok := w.files[abs]; !ok {
		return nil
	}
	delete(w.files, abs)
	if b, ok := w.bursts[abs]; ok {
		b.timer.Stop()
		delete(w.bursts, abs)
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir]--; w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	return w.fsw.Remove(dir)
}

// OnChange registers a handler.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins delivering events. Calling it again has no effect.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.closed {
		return
	}
	w.started = true
	w.wg.Add(1)
	go w.loop()
}

// Stop releases the fsnotify watcher and drops undelivered changes.
// Calling it again returns nil.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for path, b := range w.bursts {
		b.timer.Stop()
		delete(w.bursts, path)
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// IsRunning returns true between Start and Stop.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.started && !w.closed
}

// WatchedFiles returns the watched files in sorted order.
func (w *Watcher) WatchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.observe(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// observe records one fsnotify event against its watched file.
func (w *Watcher) observe(ev fsnotify.Event) {
	if ev.Op == fsnotify.Chmod {
		return
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}
	op := translate(ev.Op)
	now := time.Now()

	w.mu.Lock()
	if _, ok := w.files[abs]; !ok || w.closed {
		w.mu.Unlock()
		return
	}
	if w.debounce == 0 {
		w.mu.Unlock()
		w.deliver(Event{Path: abs, Op: op, Time: now})
		return
	}
	b, ok := w.bursts[abs]
	if !ok {
		b = &burst{op: op}
		b.timer = time.AfterFunc(w.debounce, func() { w.settle(abs) })
		w.bursts[abs] = b
	} else {
		// A write after a create is still a creation.
		if op != OpWrite {
			b.op = op
		}
		b.timer.Reset(w.debounce)
	}
	b.last = now
	w.mu.Unlock()
}

// settle delivers the burst of path once its timer fires.
func (w *Watcher) settle(path string) {
	w.mu.Lock()
	b, ok := w.bursts[path]
	if !ok || w.closed {
		w.mu.Unlock()
		return
	}
	delete(w.bursts, path)
	w.mu.Unlock()

	w.deliver(Event{Path: path, Op: b.op, Time: b.last})
}

func (w *Watcher) deliver(event Event) {
	w.mu.Lock()
	handlers := append([]Handler(nil), w.handlers...)
	w.mu.Unlock()

	for _, h := range handlers {
		call(h, event)
	}
}

// call runs a handler. A panicking handler does not stop the watcher.
func call(h Handler, event Event) {
	defer func() { _ = recover() }()
	h(event)
}

func translate(op fsnotify.Op) Operation {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove
	case op.Has(fsnotify.Rename):
		return OpRename
	case op.Has(fsnotify.Create):
		return OpCreate
	default:
		return OpWrite
	}
}
