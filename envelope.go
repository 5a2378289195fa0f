package delegate

import "github.com/joeycumines/delegate/dispatch"

// fireEnvelope implements dispatch.Envelope for the fire-and-forget (Async)
// path: owns a cloned Callable and a copied Args value, executes the call
// exactly once, and is then eligible for garbage collection.
type fireEnvelope[Args, Ret any] struct {
	target Callable[Args, Ret]
	args   Args
}

var _ dispatch.Envelope = (*fireEnvelope[int, int])(nil)

func (e *fireEnvelope[Args, Ret]) Run() {
	if _, err := e.target.Invoke(e.args); err != nil {
		// Fire-and-forget: nothing is waiting on the return value, so an
		// inner error (including ErrOwnerReleased for a raw-owner target
		// whose owner died before the hop completed) has nowhere to
		// propagate to. Logged rather than silently dropped.
		getLogger().Warning().
			Str(`component`, `async`).
			Err(err).
			Log(`fire-and-forget invocation failed`)
	}
}
