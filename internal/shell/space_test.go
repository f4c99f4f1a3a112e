package shell

import (
	"testing"

	"github.com/IshantPundir/aurora/internal/geometry"
)

func TestSpace_MapElementPlacesAndRaises(t *testing.T) {
	space := NewSpace()
	a := newStubWindow(1)
	b := newStubWindow(2)

	space.MapElement(a, geometry.Point{X: 10, Y: 10}, true)
	space.MapElement(b, geometry.Point{X: 20, Y: 20}, true)

	elements := space.Elements()
	if len(elements) != 2 {
		t.Fatalf("expected 2 mapped windows, got %d", len(elements))
	}
	// Bottom-most first: b was activated last, so it is on top.
	if elements[0] != a || elements[1] != b {
		t.Fatalf("expected stacking [a b], got [%d %d]", elements[0].ID(), elements[1].ID())
	}

	// Re-mapping a with activate raises it above b and moves it.
	space.MapElement(a, geometry.Point{X: 30, Y: 30}, true)
	elements = space.Elements()
	if elements[0] != b || elements[1] != a {
		t.Fatalf("expected stacking [b a] after raise")
	}
	loc, ok := space.Location(a)
	if !ok || loc != (geometry.Point{X: 30, Y: 30}) {
		t.Fatalf("expected a at (30,30), got %+v ok=%v", loc, ok)
	}
}

func TestSpace_MapElementWithoutActivateKeepsStacking(t *testing.T) {
	space := NewSpace()
	a := newStubWindow(1)
	b := newStubWindow(2)
	space.MapElement(a, geometry.Point{}, true)
	space.MapElement(b, geometry.Point{}, true)

	space.MapElement(a, geometry.Point{X: 5, Y: 5}, false)

	elements := space.Elements()
	if elements[0] != a || elements[1] != b {
		t.Fatalf("non-activating map must not restack")
	}
	loc, _ := space.Location(a)
	if loc != (geometry.Point{X: 5, Y: 5}) {
		t.Fatalf("non-activating map must still move, got %+v", loc)
	}
}

func TestSpace_Unmap(t *testing.T) {
	space := NewSpace()
	a := newStubWindow(1)
	space.MapElement(a, geometry.Point{}, true)

	space.Unmap(a)

	if space.IsMapped(a) {
		t.Fatalf("window still mapped after unmap")
	}
	if _, ok := space.Location(a); ok {
		t.Fatalf("unmapped window still has a location")
	}
	// Unmapping again is harmless.
	space.Unmap(a)
	if space.Len() != 0 {
		t.Fatalf("expected empty space")
	}
}

func TestSpace_RefreshDropsDead(t *testing.T) {
	space := NewSpace()
	a := newStubWindow(1)
	b := newStubWindow(2)
	space.MapElement(a, geometry.Point{}, true)
	space.MapElement(b, geometry.Point{}, true)

	a.alive = false
	space.Refresh()

	if space.IsMapped(a) {
		t.Fatalf("dead window survived refresh")
	}
	if !space.IsMapped(b) {
		t.Fatalf("live window dropped by refresh")
	}
}

func TestSpace_Geometry(t *testing.T) {
	space := NewSpace()
	a := newStubWindow(1)
	a.width, a.height = 640, 480
	space.MapElement(a, geometry.Point{X: 100, Y: 50}, true)

	geo, ok := space.Geometry(a)
	if !ok {
		t.Fatalf("expected geometry for mapped window")
	}
	want := geometry.Rect{X: 100, Y: 50, Width: 640, Height: 480}
	if geo != want {
		t.Fatalf("Geometry = %+v, want %+v", geo, want)
	}

	if _, ok := space.Geometry(newStubWindow(9)); ok {
		t.Fatalf("expected no geometry for unmapped window")
	}
}
