package delegate

import (
	"reflect"
	"weak"
)

// variant tags which kind of target a Callable binds.
type variant uint8

const (
	variantEmpty variant = iota
	variantFree
	variantMethodRaw
	variantMethodShared
)

// Callable is a typed, cloneable, equality-comparable function value:
// (Args) -> Ret. Arity is expressed by the shape of Args (a caller-defined
// struct, e.g. struct{ A int; B string }) rather than by a family of
// per-arity generic types.
//
// A zero-value Callable is empty; invoking it returns ErrEmpty. Clone
// produces an independent, equality-preserving copy — in Go this is simply
// a value copy, since Callable carries no state a caller could mutate out
// from under another holder.
type Callable[Args, Ret any] struct {
	kind    variant
	fnID    uintptr
	ownerID uintptr
	invoke  func(Args) (Ret, error)
}

// ptrID extracts a stable identity for a pointer-ish value (pointer, func,
// chan, map) via reflection. Used for both owner and bound-function
// identity in Equal.
func ptrID(v any) uintptr {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return rv.Pointer()
	default:
		return 0
	}
}

// NewFree constructs a Callable bound to a free function. The function
// pointer is the equality/identity key.
func NewFree[Args, Ret any](fn func(Args) Ret) Callable[Args, Ret] {
	if fn == nil {
		return Callable[Args, Ret]{}
	}
	return Callable[Args, Ret]{
		kind: variantFree,
		fnID: ptrID(fn),
		invoke: func(a Args) (Ret, error) {
			return fn(a), nil
		},
	}
}

// NewMethod constructs a Callable bound to a method on a borrowed
// ("raw") owner: the owner's lifetime is the caller's responsibility, not
// the Callable's. The owner is bound via a weak pointer (weak.Pointer), so
// a call made after the owner has been garbage collected fails safely with
// ErrOwnerReleased instead of corrupting memory.
func NewMethod[Owner, Args, Ret any](owner *Owner, method func(*Owner, Args) Ret) Callable[Args, Ret] {
	if owner == nil || method == nil {
		return Callable[Args, Ret]{}
	}
	wp := weak.Make(owner)
	return Callable[Args, Ret]{
		kind:    variantMethodRaw,
		fnID:    ptrID(method),
		ownerID: ptrID(owner),
		invoke: func(a Args) (Ret, error) {
			o := wp.Value()
			if o == nil {
				var zero Ret
				return zero, ErrOwnerReleased
			}
			return method(o, a), nil
		},
	}
}

// NewMethodShared constructs a Callable bound to a method on a shared
// owner: the SharedOwner handle is captured strongly, so the owner it
// wraps is kept alive for at least as long as any clone of the resulting
// Callable is reachable (see owner.go).
func NewMethodShared[Owner, Args, Ret any](owner *SharedOwner[Owner], method func(*Owner, Args) Ret) Callable[Args, Ret] {
	if owner == nil || method == nil {
		return Callable[Args, Ret]{}
	}
	return Callable[Args, Ret]{
		kind:    variantMethodShared,
		fnID:    ptrID(method),
		ownerID: ptrID(owner),
		invoke: func(a Args) (Ret, error) {
			return method(owner.Get(), a), nil
		},
	}
}

// Clone produces a deep, independent, equality-preserving copy. In Go this
// is a plain value copy: Callable holds no mutable shared state, so the
// copy and the original are already fully independent.
func (c Callable[Args, Ret]) Clone() Callable[Args, Ret] {
	return c
}

// Equal reports whether c and other are the same variant, bound to the
// same target: same owner identity and method pointer (method variants),
// or the same free-function pointer.
func (c Callable[Args, Ret]) Equal(other Callable[Args, Ret]) bool {
	if c.kind != other.kind {
		return false
	}
	if c.kind == variantEmpty {
		return true
	}
	return c.fnID == other.fnID && c.ownerID == other.ownerID
}

// IsEmpty reports whether c has no bound target. Go has no implicit bool
// conversion for struct values, so callers should guard Invoke with this.
func (c Callable[Args, Ret]) IsEmpty() bool {
	return c.kind == variantEmpty
}

// wrapAs builds a Callable that shares c's identity (kind, function pointer,
// and owner pointer) but invokes through fn instead of c's own bound target.
// Used by Async and AsyncWait to expose themselves as ordinary Callables.
func wrapAs[Args, Ret, WrapRet any](c Callable[Args, Ret], fn func(Args) (WrapRet, error)) Callable[Args, WrapRet] {
	return Callable[Args, WrapRet]{
		kind:    c.kind,
		fnID:    c.fnID,
		ownerID: c.ownerID,
		invoke:  fn,
	}
}

// Invoke calls the bound target synchronously on the current goroutine.
// Fails with ErrEmpty if c has no bound target, or ErrOwnerReleased if c is
// a raw-owner method Callable whose owner has been garbage collected.
func (c Callable[Args, Ret]) Invoke(args Args) (Ret, error) {
	if c.kind == variantEmpty {
		var zero Ret
		return zero, ErrEmpty
	}
	return c.invoke(args)
}
