package shell

import (
	"github.com/IshantPundir/aurora/internal/geometry"
)

type spaceEntry struct {
	window Window
	loc    geometry.Point
}

// Space is the paintable plane windows are mapped into. Entries are kept in
// stacking order, bottom-most first; mapping an element with activate moves
// it to the top of the stack. A window that is not mapped has no presence in
// the paintable space and receives no repaint.
type Space struct {
	entries []spaceEntry
}

// NewSpace returns an empty space.
func NewSpace() *Space {
	return &Space{}
}

// MapElement places the window at loc. If the window is already mapped its
// location is updated in place; activate additionally raises it to the top
// of the stack.
func (s *Space) MapElement(w Window, loc geometry.Point, activate bool) {
	if w == nil {
		return
	}
	for i := range s.entries {
		if s.entries[i].window.ID() == w.ID() {
			s.entries[i].loc = loc
			if activate && i != len(s.entries)-1 {
				entry := s.entries[i]
				s.entries = append(s.entries[:i], s.entries[i+1:]...)
				s.entries = append(s.entries, entry)
			}
			return
		}
	}
	s.entries = append(s.entries, spaceEntry{window: w, loc: loc})
}

// Unmap removes the window from the paintable space.
func (s *Space) Unmap(w Window) {
	if w == nil {
		return
	}
	for i := range s.entries {
		if s.entries[i].window.ID() == w.ID() {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Refresh drops entries whose window is no longer alive.
func (s *Space) Refresh() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.window.Alive() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = spaceEntry{}
	}
	s.entries = kept
}

// IsMapped reports whether the window currently has a presence in the space.
func (s *Space) IsMapped(w Window) bool {
	if w == nil {
		return false
	}
	for _, e := range s.entries {
		if e.window.ID() == w.ID() {
			return true
		}
	}
	return false
}

// Location returns the mapped location of the window. ok is false when the
// window is not mapped.
func (s *Space) Location(w Window) (geometry.Point, bool) {
	if w == nil {
		return geometry.Point{}, false
	}
	for _, e := range s.entries {
		if e.window.ID() == w.ID() {
			return e.loc, true
		}
	}
	return geometry.Point{}, false
}

// Elements returns the mapped windows bottom-most first.
func (s *Space) Elements() []Window {
	out := make([]Window, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.window
	}
	return out
}

// Len returns the number of mapped windows.
func (s *Space) Len() int {
	return len(s.entries)
}

// Geometry returns the window's bounding box positioned at its mapped
// location. ok is false when the window is not mapped.
func (s *Space) Geometry(w Window) (geometry.Rect, bool) {
	loc, ok := s.Location(w)
	if !ok {
		return geometry.Rect{}, false
	}
	bbox := w.BoundingBox()
	return geometry.Rect{X: loc.X, Y: loc.Y, Width: bbox.Width, Height: bbox.Height}, true
}
