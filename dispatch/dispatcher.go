package dispatch

import "errors"

// Envelope is anything a Dispatcher can run exactly once on its own loop
// goroutine. The delegate package's Async/AsyncWait wrappers implement this
// internally; Dispatcher implementations never need to know what an
// Envelope actually does.
type Envelope interface {
	// Run executes the envelope. Called exactly once, on the dispatcher's
	// loop goroutine, after a successful Dispatch.
	Run()
}

// Dispatcher enqueues an envelope onto some thread's own message loop.
// Implementations must be safely callable from any goroutine and must not
// block beyond a bounded time.
type Dispatcher interface {
	// Dispatch enqueues e for execution on the dispatcher's loop goroutine.
	// Returns a non-nil error (wrapping ErrDispatchRejected-equivalent
	// sentinels defined by the implementation) if the dispatcher cannot
	// accept e — shut down, queue full, or rate-limited.
	Dispatch(e Envelope) error
}

// Standard errors shared by Dispatcher implementations in this package.
var (
	// ErrClosed is returned by Dispatch once Shutdown has completed.
	ErrClosed = errors.New("dispatch: dispatcher is closed")

	// ErrQueueFull is returned when a bounded dispatcher's queue has no
	// room; WorkerDispatcher always rejects in that case rather than
	// blocking.
	ErrQueueFull = errors.New("dispatch: queue is full")

	// ErrRateLimited is returned when a rate-limited dispatcher rejects an
	// enqueue because the configured rate has been exceeded.
	ErrRateLimited = errors.New("dispatch: rate limit exceeded")

	// ErrReentrantDispatch is returned when Dispatch is called from
	// within the loop goroutine's own current envelope execution.
	ErrReentrantDispatch = errors.New("dispatch: reentrant dispatch onto own loop goroutine")
)
