package delegate

// Multicast is an ordered, unguarded collection of Callables sharing one
// signature, always returning nothing. Add/Remove/Invoke mutate the same
// underlying slice without any locking: concurrent use from more than one
// goroutine is the caller's responsibility. Use SafeMulticast for the
// mutex-guarded variant.
type Multicast[Args any] struct {
	targets []Callable[Args, struct{}]
}

// Add appends a clone of c to the fan-out list.
func (m *Multicast[Args]) Add(c Callable[Args, struct{}]) {
	m.targets = append(m.targets, c.Clone())
}

// Remove deletes the first element equal to c (Callable.Equal). A no-op if
// no element compares equal.
func (m *Multicast[Args]) Remove(c Callable[Args, struct{}]) {
	for i, t := range m.targets {
		if t.Equal(c) {
			m.targets = append(m.targets[:i], m.targets[i+1:]...)
			return
		}
	}
}

// Clear removes every registered target.
func (m *Multicast[Args]) Clear() {
	m.targets = nil
}

// IsEmpty reports whether no targets are registered.
func (m *Multicast[Args]) IsEmpty() bool {
	return len(m.targets) == 0
}

// Len reports the number of registered targets.
func (m *Multicast[Args]) Len() int {
	return len(m.targets)
}

// Invoke calls every registered target synchronously, in insertion order, on
// the calling goroutine. A target that is itself an Async/AsyncWait wrapper
// (via AsCallable) may forward to another goroutine; Multicast does not
// observe or wait on that. Errors from individual targets are collected and
// returned together rather than aborting the fan-out early — one failing
// listener must not prevent the rest from running.
func (m *Multicast[Args]) Invoke(args Args) []error {
	var errs []error
	for _, t := range m.targets {
		if _, err := t.Invoke(args); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
