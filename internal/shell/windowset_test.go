package shell

import (
	"testing"

	"github.com/IshantPundir/aurora/internal/geometry"
)

// stubWindow is the minimal Window used by shell package tests.
type stubWindow struct {
	id     uint64
	alive  bool
	width  int
	height int
}

func newStubWindow(id uint64) *stubWindow {
	return &stubWindow{id: id, alive: true, width: 800, height: 600}
}

func (w *stubWindow) ID() uint64                   { return w.id }
func (w *stubWindow) Alive() bool                  { return w.alive }
func (w *stubWindow) RequestResize(width, h int)   {}
func (w *stubWindow) CommitPendingResize()         {}
func (w *stubWindow) BoundingBox() geometry.Rect   { return geometry.Rect{Width: w.width, Height: w.height} }
func (w *stubWindow) RenderElementsAt(loc geometry.Point, scale float64, alpha float32) []Element {
	return []Element{{
		Kind:     ElementSurface,
		Source:   w.id,
		Geometry: geometry.FromLocAndSize(loc, w.BoundingBox().Size()),
		Scale:    scale,
		Alpha:    alpha,
	}}
}

func TestWindowSet_InsertMakesActive(t *testing.T) {
	set := NewWindowSet()
	a := newStubWindow(1)
	b := newStubWindow(2)

	set.Insert(a)
	if set.Active() != a {
		t.Fatalf("expected a active after first insert")
	}

	set.Insert(b)
	if set.Active() != b {
		t.Fatalf("expected b active after second insert")
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 windows, got %d", set.Len())
	}
}

func TestWindowSet_InsertDuplicateIsNoOp(t *testing.T) {
	set := NewWindowSet()
	a := newStubWindow(1)
	b := newStubWindow(2)
	set.Insert(a)
	set.Insert(b)

	// Re-inserting a must not duplicate it or steal activity.
	set.Insert(a)

	if set.Len() != 2 {
		t.Fatalf("expected 2 windows after duplicate insert, got %d", set.Len())
	}
	if set.Active() != b {
		t.Fatalf("duplicate insert changed the active window")
	}
}

func TestWindowSet_ActiveEmpty(t *testing.T) {
	set := NewWindowSet()
	if set.Active() != nil {
		t.Fatalf("expected nil active on empty set")
	}
	if !set.IsEmpty() {
		t.Fatalf("expected empty set")
	}
}

func TestWindowSet_PrunePreservesOrder(t *testing.T) {
	set := NewWindowSet()
	a := newStubWindow(1)
	b := newStubWindow(2)
	c := newStubWindow(3)
	set.Insert(a)
	set.Insert(b)
	set.Insert(c)

	b.alive = false
	set.Prune()

	windows := set.Windows()
	if len(windows) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(windows))
	}
	if windows[0] != a || windows[1] != c {
		t.Fatalf("prune disturbed relative order")
	}
	if set.Active() != c {
		t.Fatalf("expected c active after prune")
	}
}

func TestWindowSet_PruneActiveFallsBack(t *testing.T) {
	set := NewWindowSet()
	a := newStubWindow(1)
	b := newStubWindow(2)
	set.Insert(a)
	set.Insert(b)

	b.alive = false
	set.Prune()

	// Most recent survivor becomes active.
	if set.Active() != a {
		t.Fatalf("expected a active after active window died")
	}
}

func TestWindowSet_Raise(t *testing.T) {
	set := NewWindowSet()
	a := newStubWindow(1)
	b := newStubWindow(2)
	c := newStubWindow(3)
	set.Insert(a)
	set.Insert(b)
	set.Insert(c)

	set.Raise(a)

	if set.Active() != a {
		t.Fatalf("expected a active after raise")
	}
	windows := set.Windows()
	if windows[0] != b || windows[1] != c || windows[2] != a {
		t.Fatalf("raise disturbed the order of the rest")
	}

	// Raising an untracked window is ignored.
	set.Raise(newStubWindow(99))
	if set.Len() != 3 {
		t.Fatalf("raising unknown window changed the set")
	}
}

func TestWindowSet_RecencyOrdered(t *testing.T) {
	set := NewWindowSet()
	a := newStubWindow(1)
	b := newStubWindow(2)
	c := newStubWindow(3)
	set.Insert(a)
	set.Insert(b)
	set.Insert(c)

	ordered := set.RecencyOrdered()
	if ordered[0] != c || ordered[1] != b || ordered[2] != a {
		t.Fatalf("expected most-recently-inserted first")
	}
}
