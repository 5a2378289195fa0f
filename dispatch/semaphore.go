package dispatch

import "time"

// WaitOutcome reports how a BinarySemaphore.Wait call ended.
type WaitOutcome uint8

const (
	// Signaled means Wait observed a pending/incoming Signal.
	Signaled WaitOutcome = iota
	// TimedOut means the timeout elapsed before a Signal arrived.
	TimedOut
)

// BinarySemaphore is a reset/signal/timed-wait primitive. It is "binary" in
// that Signal is idempotent while unconsumed — multiple Signal calls before
// a Wait only need to release one waiter, matching a buffered channel of
// capacity 1.
type BinarySemaphore struct {
	ch chan struct{}
}

// NewBinarySemaphore returns an unsignaled BinarySemaphore.
func NewBinarySemaphore() *BinarySemaphore {
	return &BinarySemaphore{ch: make(chan struct{}, 1)}
}

// Reset clears any pending, unconsumed signal.
func (s *BinarySemaphore) Reset() {
	select {
	case <-s.ch:
	default:
	}
}

// Signal wakes one waiter, or leaves a pending signal for the next Wait if
// none is currently blocked. Safe to call more than once; extra signals
// before a Wait are coalesced (binary, not counting).
func (s *BinarySemaphore) Signal() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until Signal is called or timeout elapses. A zero timeout
// (delegate.NoWait) returns immediately with Signaled only if already
// signaled. A negative timeout (delegate.Forever) blocks indefinitely.
func (s *BinarySemaphore) Wait(timeout time.Duration) WaitOutcome {
	if timeout < 0 {
		<-s.ch
		return Signaled
	}
	if timeout == 0 {
		select {
		case <-s.ch:
			return Signaled
		default:
			return TimedOut
		}
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-s.ch:
		return Signaled
	case <-t.C:
		return TimedOut
	}
}
