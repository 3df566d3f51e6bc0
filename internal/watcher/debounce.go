package watcher

import (
	"sync"
	"time"
)

// debouncer coalesces repeated triggers per key into one callback after a
// quiet period.
type debouncer struct {
	duration time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDebouncer(duration time.Duration) *debouncer {
	return &debouncer{
		duration: duration,
		timers:   make(map[string]*time.Timer),
	}
}

// schedule arms (or re-arms) the timer for key. fire runs on the timer
// goroutine once the quiet period elapses.
func (d *debouncer) schedule(key string, fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[key]; ok {
		timer.Reset(d.duration)
		return
	}
	d.timers[key] = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fire()
	})
}

// stop cancels all pending timers.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}
