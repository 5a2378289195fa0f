package delegate

import (
	"fmt"
	"time"

	"github.com/joeycumines/delegate/dispatch"
)

// NoWait and Forever are the timeout sentinels for AsyncWait: a positive
// time.Duration is a bounded wait, Forever blocks until the callee runs (or
// never returns if it never does), NoWait polls once without blocking.
const (
	NoWait  time.Duration = 0
	Forever time.Duration = -1
)

// controlBlock is the shared rendezvous state between a waiting caller and
// the envelope the dispatcher eventually runs. Go's garbage collector
// retires the block once both sides release it; refs exists only to decide
// who runs versus skips the inner call and who is last out, not to manage
// memory.
type controlBlock[Ret any] struct {
	mu       dispatch.Mutex
	sem      *dispatch.BinarySemaphore
	refs     int
	result   Ret
	callErr  error
	panicVal any
}

func newControlBlock[Ret any]() *controlBlock[Ret] {
	return &controlBlock[Ret]{
		sem:  dispatch.NewBinarySemaphore(),
		refs: 2,
	}
}

// release decrements refs under the mutex and reports whether this call
// brought it to zero: the block is retired by whichever side is last out,
// and never by both.
func (b *controlBlock[Ret]) release() (last bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refs--
	return b.refs == 0
}

// AsyncWait wraps a Callable and a Dispatcher into a blocking call with a
// return value and a timeout.
type AsyncWait[Args, Ret any] struct {
	disp    dispatch.Dispatcher
	call    Callable[Args, Ret]
	policy  CopyPolicy[Args]
	timeout time.Duration
}

// AsyncWaitOption configures an AsyncWait wrapper.
type AsyncWaitOption[Args, Ret any] func(*AsyncWait[Args, Ret])

// WithAsyncWaitCopyPolicy overrides the default DeepCopy argument-copy policy.
func WithAsyncWaitCopyPolicy[Args, Ret any](p CopyPolicy[Args]) AsyncWaitOption[Args, Ret] {
	return func(a *AsyncWait[Args, Ret]) { a.policy = p }
}

// NewAsyncWait constructs a blocking wrapper around call, dispatched via d,
// waiting up to timeout (NoWait, a bounded duration, or Forever) for the
// result.
func NewAsyncWait[Args, Ret any](call Callable[Args, Ret], d dispatch.Dispatcher, timeout time.Duration, opts ...AsyncWaitOption[Args, Ret]) AsyncWait[Args, Ret] {
	a := AsyncWait[Args, Ret]{disp: d, call: call, policy: DeepCopy[Args], timeout: timeout}
	for _, o := range opts {
		o(&a)
	}
	return a
}

// IsEmpty reports whether the wrapped Callable has no bound target.
func (a AsyncWait[Args, Ret]) IsEmpty() bool {
	return a.call.IsEmpty()
}

// Clone returns an independent copy of a, sharing the same target,
// Dispatcher, and timeout.
func (a AsyncWait[Args, Ret]) Clone() AsyncWait[Args, Ret] {
	return a
}

// AsCallable exposes a as an ordinary Callable[Args, Ret], so it can be
// stored alongside direct Callables in a Multicast, SafeMulticast, or
// Singlecast (though a Multicast only accepts Callable[Args, struct{}]
// elements, so this is mainly useful with Singlecast or direct calls). A
// timed-out call surfaces as ErrTimeout rather than a bool, since Callable's
// Invoke has no room for a separate success flag.
func (a AsyncWait[Args, Ret]) AsCallable() Callable[Args, Ret] {
	return wrapAs[Args, Ret, Ret](a.call, func(args Args) (Ret, error) {
		ret, ok, err := a.Invoke(args)
		if err != nil {
			return ret, err
		}
		if !ok {
			return ret, ErrTimeout
		}
		return ret, nil
	})
}

// waitEnvelope implements dispatch.Envelope for the AsyncWait path: it runs
// the target only if the waiter has not yet abandoned the call, then
// signals the control block's semaphore exactly once from the branch that
// ran it, and releases its half of the refcount regardless.
type waitEnvelope[Args, Ret any] struct {
	target Callable[Args, Ret]
	args   Args
	block  *controlBlock[Ret]
}

var _ dispatch.Envelope = (*waitEnvelope[int, int])(nil)

func (e *waitEnvelope[Args, Ret]) Run() {
	block := e.block

	block.mu.Lock()
	run := block.refs == 2
	block.mu.Unlock()

	if run {
		e.runAndSignal()
	} else {
		getLogger().Debug().
			Str(`component`, `asyncwait`).
			Log(`waiter already abandoned call, skipping invocation`)
	}

	block.release()
}

// runAndSignal invokes the target and signals the semaphore exactly once,
// whether the invocation returns normally, returns an error, or panics.
func (e *waitEnvelope[Args, Ret]) runAndSignal() {
	block := e.block
	defer block.sem.Signal()
	defer func() {
		if r := recover(); r != nil {
			block.mu.Lock()
			block.panicVal = r
			abandoned := block.refs < 2
			block.mu.Unlock()
			if abandoned {
				getLogger().Warning().
					Str(`component`, `asyncwait`).
					Str(`panic`, fmt.Sprint(r)).
					Log(`callee panicked after waiter abandoned call, panic swallowed`)
			}
		}
	}()

	ret, err := e.target.Invoke(e.args)

	block.mu.Lock()
	block.result = ret
	block.callErr = err
	block.mu.Unlock()
}

// Invoke performs the blocking call. It returns ErrEmpty if the target is
// unbound, a wrapped ErrDispatchRejected if the Dispatcher refuses the
// envelope, the callee's own invocation error (e.g. ErrOwnerReleased)
// verbatim, and otherwise the callee's return value plus a bool reporting
// whether the callee actually ran before the timeout. A panic raised inside
// the target while this call is still waiting is recovered on the envelope
// goroutine and re-raised here, on the waiter's own goroutine; a panic
// after abandonment is logged and swallowed, never re-raised, since
// nothing is left waiting for it.
func (a AsyncWait[Args, Ret]) Invoke(args Args) (Ret, bool, error) {
	var zero Ret

	if a.call.IsEmpty() {
		return zero, false, ErrEmpty
	}
	if a.disp == nil {
		ret, err := a.call.Invoke(args)
		return ret, err == nil, err
	}

	block := newControlBlock[Ret]()
	env := &waitEnvelope[Args, Ret]{
		target: a.call.Clone(),
		args:   a.policy(args),
		block:  block,
	}
	if err := a.disp.Dispatch(env); err != nil {
		// the envelope was never queued, so it will never call release;
		// drop our own half directly.
		block.release()
		getLogger().Warning().
			Str(`component`, `asyncwait`).
			Err(err).
			Log(`dispatch rejected`)
		return zero, false, wrapDispatchError(err)
	}

	ran := block.sem.Wait(a.timeout) == dispatch.Signaled

	block.mu.Lock()
	result := block.result
	callErr := block.callErr
	panicVal := block.panicVal
	block.mu.Unlock()

	block.release()

	if panicVal != nil {
		panic(panicVal)
	}
	if !ran {
		return zero, false, nil
	}
	if callErr != nil {
		return zero, false, callErr
	}
	return result, true, nil
}
