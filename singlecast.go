package delegate

// Singlecast holds at most one Callable of a given signature. Behaviorally
// identical to an optional Callable, exposed as a distinct named type rather
// than asking callers to spell out the zero-value-as-empty convention
// directly.
type Singlecast[Args, Ret any] struct {
	target Callable[Args, Ret]
}

// Set clones c as the sole target, replacing any previous one.
func (s *Singlecast[Args, Ret]) Set(c Callable[Args, Ret]) {
	s.target = c.Clone()
}

// Clear removes the current target, if any.
func (s *Singlecast[Args, Ret]) Clear() {
	s.target = Callable[Args, Ret]{}
}

// IsEmpty reports whether no target is set.
func (s *Singlecast[Args, Ret]) IsEmpty() bool {
	return s.target.IsEmpty()
}

// Invoke forwards to the current target. Returns ErrEmpty if none is set.
func (s *Singlecast[Args, Ret]) Invoke(args Args) (Ret, error) {
	if s.target.IsEmpty() {
		var zero Ret
		return zero, ErrEmpty
	}
	return s.target.Invoke(args)
}
