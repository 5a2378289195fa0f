package delegate

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Callable, Async and AsyncWait operations,
// usable with errors.Is.
var (
	// ErrEmpty is returned when invoking a Callable with no bound target.
	ErrEmpty = errors.New("delegate: callable is empty")

	// ErrOwnerReleased is returned when a raw-owner Callable is invoked
	// after its owner has been garbage collected.
	ErrOwnerReleased = errors.New("delegate: raw owner has been released")

	// ErrDispatchRejected is returned when a Dispatcher refuses an envelope
	// (shut down, or a bounded queue/rate limit rejecting it), visible to
	// Async and AsyncWait callers.
	ErrDispatchRejected = errors.New("delegate: dispatch rejected")

	// ErrTimeout is returned by AsyncWait.AsCallable's Callable adapter when
	// the callee did not run before the wait's timeout elapsed. AsyncWait's
	// own Invoke reports the same condition via its bool return instead.
	ErrTimeout = errors.New("delegate: wait timed out before the callee ran")
)

// wrapDispatchError wraps a Dispatcher-reported error (one of
// dispatch.ErrClosed, dispatch.ErrQueueFull, dispatch.ErrRateLimited,
// dispatch.ErrReentrantDispatch) so callers can match it with
// errors.Is(err, ErrDispatchRejected) while still seeing the underlying
// cause in the message.
func wrapDispatchError(err error) error {
	return fmt.Errorf("%w: %v", ErrDispatchRejected, err)
}
