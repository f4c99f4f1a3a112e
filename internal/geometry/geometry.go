// Package geometry provides the integer logical-coordinate primitives shared
// by the layout engine, the frame composer, and the damage tracker.
package geometry

// Point is a location in logical coordinates.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair in logical units.
type Size struct {
	Width  int
	Height int
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a window position and size.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// FromLocAndSize builds a Rect from an origin point and a size.
func FromLocAndSize(loc Point, size Size) Rect {
	return Rect{X: loc.X, Y: loc.Y, Width: size.Width, Height: size.Height}
}

// Loc returns the rectangle's origin.
func (r Rect) Loc() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ContainsRect reports whether q lies fully inside r.
func (r Rect) ContainsRect(q Rect) bool {
	if q.IsEmpty() {
		return false
	}
	return q.X >= r.X && q.Y >= r.Y &&
		q.X+q.Width <= r.X+r.Width && q.Y+q.Height <= r.Y+r.Height
}

// Intersection returns the overlapping region of two rectangles, or a zero
// Rect when they do not overlap.
func (r Rect) Intersection(q Rect) Rect {
	x1 := max(r.X, q.X)
	y1 := max(r.Y, q.Y)
	x2 := min(r.X+r.Width, q.X+q.Width)
	y2 := min(r.Y+r.Height, q.Y+q.Height)

	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Overlaps reports whether two rectangles share any area.
func (r Rect) Overlaps(q Rect) bool {
	return !r.Intersection(q).IsEmpty()
}

// Union returns the smallest rectangle covering both r and q. An empty
// operand does not grow the result.
func (r Rect) Union(q Rect) Rect {
	if r.IsEmpty() {
		return q
	}
	if q.IsEmpty() {
		return r
	}

	x1 := min(r.X, q.X)
	y1 := min(r.Y, q.Y)
	x2 := max(r.X+r.Width, q.X+q.Width)
	y2 := max(r.Y+r.Height, q.Y+q.Height)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Coalesce merges overlapping or touching rectangles into a smaller set
// covering the same area. Used to keep damage lists minimal.
func Coalesce(rects []Rect) []Rect {
	out := make([]Rect, 0, len(rects))
	for _, r := range rects {
		if r.IsEmpty() {
			continue
		}
		merged := false
		for i := range out {
			if out[i].Overlaps(r) || touches(out[i], r) {
				out[i] = out[i].Union(r)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, r)
		}
	}

	// A merge can make two previously disjoint entries overlap; repeat
	// until stable.
	for {
		before := len(out)
		out = mergePass(out)
		if len(out) == before {
			return out
		}
	}
}

func mergePass(rects []Rect) []Rect {
	out := rects[:0:0]
	for _, r := range rects {
		merged := false
		for i := range out {
			if out[i].Overlaps(r) || touches(out[i], r) {
				out[i] = out[i].Union(r)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, r)
		}
	}
	return out
}

func touches(a, b Rect) bool {
	grown := Rect{X: a.X - 1, Y: a.Y - 1, Width: a.Width + 2, Height: a.Height + 2}
	return grown.Overlaps(b)
}
