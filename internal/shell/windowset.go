package shell

// WindowSet is the ordered collection of live window handles. Insertion
// order doubles as recency: the last element is the active window.
//
// The set is owned by the compositor loop; it is never mutated while a
// composition pass for the same tick is reading it.
type WindowSet struct {
	windows []Window
}

// NewWindowSet returns an empty set.
func NewWindowSet() *WindowSet {
	return &WindowSet{}
}

// Len returns the number of tracked windows.
func (s *WindowSet) Len() int {
	return len(s.windows)
}

// IsEmpty reports whether no windows are tracked.
func (s *WindowSet) IsEmpty() bool {
	return len(s.windows) == 0
}

// Insert appends the window and makes it the active one. Inserting a window
// that is already tracked is a no-op: duplicating the handle would make it
// active twice and break the one-active-window invariant.
func (s *WindowSet) Insert(w Window) {
	if w == nil {
		return
	}
	for _, existing := range s.windows {
		if existing.ID() == w.ID() {
			return
		}
	}
	s.windows = append(s.windows, w)
}

// Raise moves an already-tracked window to the active position, preserving
// the relative order of the rest. Unknown windows are ignored.
func (s *WindowSet) Raise(w Window) {
	if w == nil {
		return
	}
	for i, existing := range s.windows {
		if existing.ID() == w.ID() {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			s.windows = append(s.windows, existing)
			return
		}
	}
}

// Prune removes all windows whose liveness check fails, preserving the
// relative order of survivors.
func (s *WindowSet) Prune() {
	kept := s.windows[:0]
	for _, w := range s.windows {
		if w.Alive() {
			kept = append(kept, w)
		}
	}
	// Drop references so pruned windows can be collected.
	for i := len(kept); i < len(s.windows); i++ {
		s.windows[i] = nil
	}
	s.windows = kept
}

// Active returns the most recently inserted window, or nil when empty.
func (s *WindowSet) Active() Window {
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[len(s.windows)-1]
}

// Windows returns the tracked windows in insertion order. The returned
// slice is a copy; mutating it does not affect the set.
func (s *WindowSet) Windows() []Window {
	out := make([]Window, len(s.windows))
	copy(out, s.windows)
	return out
}

// RecencyOrdered returns the tracked windows most-recently-inserted first.
// Index 0 is the active window.
func (s *WindowSet) RecencyOrdered() []Window {
	out := make([]Window, len(s.windows))
	for i, w := range s.windows {
		out[len(s.windows)-1-i] = w
	}
	return out
}
