// Package dispatch defines the external capabilities the delegate package's
// cross-thread invocation core requires: a Dispatcher (a per-thread FIFO of
// envelopes), a non-reentrant Mutex, and a BinarySemaphore with timed wait.
// It also ships WorkerDispatcher, a reference, in-process Dispatcher
// implementation (one goroutine, one FIFO, graceful shutdown) — usable out
// of the box, but never depended on by the delegate package itself, which
// only ever talks to the Dispatcher interface.
package dispatch
