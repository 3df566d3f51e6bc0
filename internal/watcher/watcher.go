// Package watcher watches a directory for file writes and creations and
// reports them, debounced per path, to a handler. The syncer uses it to
// re-run link resolution whenever the canonical instructions file changes.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// Event is a debounced write or create in the watched directory.
type Event struct {
	Dir  string // watched directory
	Name string // basename of the changed file
}

// Options configures a Watcher.
type Options struct {
	// Debounce collapses bursts of events per path. Zero means the default.
	Debounce time.Duration
	// ErrorHandler receives watcher errors. Nil means they are dropped.
	ErrorHandler func(error)
}

// Watcher delivers debounced change events for one directory.
type Watcher struct {
	dir       string
	source    *fsnotify.Watcher
	handler   func(Event)
	onError   func(error)
	debouncer *debouncer
	done      chan struct{}
}

// New starts watching dir and invokes handler for every debounced write or
// create. The handler runs on the watcher's goroutine; Close stops delivery.
func New(dir string, handler func(Event), opts Options) (*Watcher, error) {
	source, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := source.Add(dir); err != nil {
		source.Close()
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		dir:       dir,
		source:    source,
		handler:   handler,
		onError:   opts.ErrorHandler,
		debouncer: newDebouncer(debounce),
		done:      make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and pending debounce timers.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	w.debouncer.stop()
	return w.source.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.source.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.source.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}
	name := filepath.Base(event.Name)
	w.debouncer.schedule(name, func() {
		select {
		case <-w.done:
		default:
			w.handler(Event{Dir: w.dir, Name: name})
		}
	})
}
