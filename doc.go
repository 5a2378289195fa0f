// Package delegate provides typed, thread-aware callback values for
// in-process communication between components.
//
// A Callable is a polymorphic, cloneable, equality-comparable function value:
// it may bind a free function, a method on a borrowed ("raw") owner, or a
// method on a shared owner handle. Callables compose with two dispatch
// wrappers — Async (fire-and-forget) and AsyncWait (blocking, with a
// timeout and a return value) — that re-materialize an invocation made on
// one goroutine as an equivalent invocation on a target Dispatcher's own
// goroutine (see the delegate/dispatch subpackage for the Dispatcher port
// and a reference implementation). Multicast, SafeMulticast and Singlecast
// are ordered containers of Callables sharing one signature. The
// delegate/remote subpackage extends the same trick across process
// boundaries over a user-supplied byte transport.
package delegate
