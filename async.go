package delegate

import (
	"github.com/joeycumines/delegate/dispatch"
)

// Async wraps a Callable and a Dispatcher into a fire-and-forget
// invocation: Invoke packages the arguments, clones the target, posts an
// envelope to the Dispatcher, and returns immediately without a return
// value.
type Async[Args, Ret any] struct {
	disp   dispatch.Dispatcher
	call   Callable[Args, Ret]
	policy CopyPolicy[Args]
}

// AsyncOption configures an Async wrapper.
type AsyncOption[Args, Ret any] func(*Async[Args, Ret])

// WithAsyncCopyPolicy overrides the default DeepCopy argument-copy policy.
func WithAsyncCopyPolicy[Args, Ret any](p CopyPolicy[Args]) AsyncOption[Args, Ret] {
	return func(a *Async[Args, Ret]) { a.policy = p }
}

// NewAsync constructs a fire-and-forget wrapper around target, dispatched
// via d. A nil d causes Invoke to fall through to a direct synchronous
// call on the current goroutine.
func NewAsync[Args, Ret any](call Callable[Args, Ret], d dispatch.Dispatcher, opts ...AsyncOption[Args, Ret]) Async[Args, Ret] {
	a := Async[Args, Ret]{disp: d, call: call, policy: DeepCopy[Args]}
	for _, o := range opts {
		o(&a)
	}
	return a
}

// IsEmpty reports whether the wrapped Callable has no bound target.
func (a Async[Args, Ret]) IsEmpty() bool {
	return a.call.IsEmpty()
}

// Clone returns an independent copy of a, sharing the same target and
// Dispatcher.
func (a Async[Args, Ret]) Clone() Async[Args, Ret] {
	return a
}

// AsCallable exposes a as an ordinary Callable[Args, struct{}], so it can be
// stored alongside direct Callables in a Multicast, SafeMulticast, or
// Singlecast. Its identity for Equal purposes is inherited from the wrapped
// target, not from the Dispatcher.
func (a Async[Args, Ret]) AsCallable() Callable[Args, struct{}] {
	return wrapAs[Args, Ret, struct{}](a.call, func(args Args) (struct{}, error) {
		return struct{}{}, a.Invoke(args)
	})
}

// Invoke dispatches args to the target Callable. Returns ErrEmpty if the
// target is unbound, or a wrapped ErrDispatchRejected if the Dispatcher
// refuses the envelope (shut down, full, or rate-limited).
func (a Async[Args, Ret]) Invoke(args Args) error {
	if a.call.IsEmpty() {
		return ErrEmpty
	}
	if a.disp == nil {
		_, err := a.call.Invoke(args)
		return err
	}

	env := &fireEnvelope[Args, Ret]{
		target: a.call.Clone(),
		args:   a.policy(args),
	}
	if err := a.disp.Dispatch(env); err != nil {
		getLogger().Warning().
			Str(`component`, `async`).
			Err(err).
			Log(`dispatch rejected`)
		return wrapDispatchError(err)
	}
	return nil
}
