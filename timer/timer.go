// Package timer provides a periodic re-arm-on-fire Timer: a client starts a
// timer with an interval, and on every expiry a bound Callable is delivered
// through an Async wrapper onto a chosen Dispatcher, rather than running on
// whatever goroutine the timer machinery happens to use.
package timer

import (
	"sync"
	"time"

	"github.com/joeycumines/delegate"
	"github.com/joeycumines/delegate/dispatch"
)

// Timer invokes its bound Callable on every interval tick, delivered via an Async
// wrapper onto Dispatcher d. Safe for concurrent Start/Stop/Enabled calls.
// Each instance owns its own time.Timer rather than being serviced by a
// shared poll loop.
type Timer struct {
	mu         sync.Mutex
	interval   time.Duration
	disp       dispatch.Dispatcher
	expired    delegate.Callable[struct{}, struct{}]
	clock      *time.Timer
	enabled    bool
	generation uint64
}

// New constructs a Timer that, once Start is called, delivers expired ticks
// by invoking expired (wrapped in a fire-and-forget Async) on d.
func New(expired delegate.Callable[struct{}, struct{}], d dispatch.Dispatcher) *Timer {
	return &Timer{expired: expired, disp: d}
}

// Start arms the timer for periodic callbacks every timeout. Calling Start
// on an already-enabled Timer restarts it with the new timeout.
func (t *Timer) Start(timeout time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.interval = timeout
	t.enabled = true
	t.generation++
	gen := t.generation
	t.armLocked(gen)
}

// Stop disables the timer. Idempotent; safe to call on a never-started or
// already-stopped Timer.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Enabled reports whether the timer is currently armed.
func (t *Timer) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

func (t *Timer) stopLocked() {
	if t.clock != nil {
		t.clock.Stop()
		t.clock = nil
	}
	t.enabled = false
	t.generation++
}

func (t *Timer) armLocked(gen uint64) {
	t.clock = time.AfterFunc(t.interval, func() { t.fire(gen) })
}

// fire delivers one tick and re-arms, unless the timer was stopped or
// restarted (generation mismatch) in the meantime.
func (t *Timer) fire(gen uint64) {
	t.mu.Lock()
	if !t.enabled || gen != t.generation {
		t.mu.Unlock()
		return
	}
	t.armLocked(gen)
	t.mu.Unlock()

	async := delegate.NewAsync(t.expired, t.disp)
	_ = async.Invoke(struct{}{})
}
