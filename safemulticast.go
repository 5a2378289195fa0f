package delegate

import "sync"

// SafeMulticast is Multicast with every operation serialized behind a single
// non-reentrant mutex. Re-entrant invocation from inside one of its own
// callbacks — e.g. a listener that calls Add/Remove/Invoke on the same
// SafeMulticast it's running under — deadlocks; this is an explicit
// Non-goal, not a bug to fix.
type SafeMulticast[Args any] struct {
	mu   sync.Mutex
	base Multicast[Args]
}

// Add appends a clone of c to the fan-out list.
func (m *SafeMulticast[Args]) Add(c Callable[Args, struct{}]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.base.Add(c)
}

// Remove deletes the first element equal to c.
func (m *SafeMulticast[Args]) Remove(c Callable[Args, struct{}]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.base.Remove(c)
}

// Clear removes every registered target.
func (m *SafeMulticast[Args]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.base.Clear()
}

// IsEmpty reports whether no targets are registered.
func (m *SafeMulticast[Args]) IsEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base.IsEmpty()
}

// Len reports the number of registered targets.
func (m *SafeMulticast[Args]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base.Len()
}

// Invoke calls every registered target synchronously and in insertion
// order, holding the mutex for the entire fan-out: no Add, Remove, Invoke,
// or Clear may interleave with a running invocation. Do not call any of
// those methods on this SafeMulticast from inside a target it is currently
// invoking.
func (m *SafeMulticast[Args]) Invoke(args Args) []error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base.Invoke(args)
}
