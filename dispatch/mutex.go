package dispatch

import "sync"

// Mutex is a non-reentrant, blocking-acquire, scoped-release lock. It is a
// thin wrapper over sync.Mutex, with the same contract: never reenter from
// the same goroutine while held. The type exists to give the capability an
// explicit name in the public API surface rather than exposing a raw
// sync.Mutex.
type Mutex struct {
	mu sync.Mutex
}

// Lock acquires the mutex, blocking until it is available.
func (m *Mutex) Lock() { m.mu.Lock() }

// Unlock releases the mutex. Unlock of an unlocked Mutex is a programmer
// error, matching sync.Mutex.
func (m *Mutex) Unlock() { m.mu.Unlock() }
