package hydrate

import (
	"sync"
	"time"

	"github.com/sdeepak1/cms/shortcode"
)

// DefaultDebounceWindow matches the editing UI's trailing-edge window:
// only the last edit within the window results in a network call.
const DefaultDebounceWindow = 400 * time.Millisecond

// Debouncer coalesces rapid successive edits of the same placeholder into a
// single deferred callback. Each node owns at most one pending timer; a new
// trigger resets it.
type Debouncer struct {
	window time.Duration

	mu     sync.Mutex
	timers map[*shortcode.Placeholder]*time.Timer
	closed bool
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		window: window,
		timers: make(map[*shortcode.Placeholder]*time.Timer),
	}
}

// Trigger schedules fn to run after the debounce window, replacing any
// callback already pending for the node.
func (d *Debouncer) Trigger(node *shortcode.Placeholder, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if timer, ok := d.timers[node]; ok {
		timer.Stop()
	}

	d.timers[node] = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		delete(d.timers, node)
		d.mu.Unlock()

		fn()
	})
}

// Cancel drops any pending callback for the node. Called when a node is
// removed from the tree so its timer cannot fire on a destroyed placeholder.
func (d *Debouncer) Cancel(node *shortcode.Placeholder) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[node]; ok {
		timer.Stop()
		delete(d.timers, node)
	}
}

// Close cancels all pending callbacks and rejects further triggers.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	for node, timer := range d.timers {
		timer.Stop()
		delete(d.timers, node)
	}
}
