package sketch

import "math"

// Rect is an axis-aligned rectangle described by its top-left (Min) and
// bottom-right (Max) corners. A normalized Rect has Min.X <= Max.X and
// Min.Y <= Max.Y.
type Rect struct {
	Min, Max Point
}

// RectFromCorners builds a normalized rectangle from two opposite corners
// given in any order: whichever diagonal the user drags along, the result
// always has its top-left in Min.
func RectFromCorners(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset returns r grown by d on every side (shrunk for negative d).
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Translate returns r shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Handles returns the eight selection handle positions of r, clockwise
// from the top-left corner: corners and edge midpoints.
func (r Rect) Handles() [8]Point {
	c := r.Center()
	return [8]Point{
		r.Min,
		{X: c.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: c.Y},
		r.Max,
		{X: c.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Min.X, Y: c.Y},
	}
}

// boundsOf returns the smallest rectangle containing all pts.
func boundsOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// ResizeCursorAt classifies p against the ring of width delta surrounding r.
//
//	 NWSE |    NS    | NESW
//	------+----------+------
//	  EW  |    r     |  EW
//	------+----------+------
//	 NESW |    NS    | NWSE
//
// Points inside r or outside the ring yield CursorDefault. The eight zones
// are mutually exclusive: an edge zone spans exactly the rectangle's extent
// along that edge, and the corner zones take what remains.
func ResizeCursorAt(r Rect, p Point, delta float64) Cursor {
	if r.Contains(p) || !r.Inset(delta).Contains(p) {
		return CursorDefault
	}

	inX := p.X >= r.Min.X && p.X <= r.Max.X
	inY := p.Y >= r.Min.Y && p.Y <= r.Max.Y
	switch {
	case inX:
		return CursorResizeNS
	case inY:
		return CursorResizeEW
	case (p.X < r.Min.X) == (p.Y < r.Min.Y):
		// top-left or bottom-right corner
		return CursorResizeNWSE
	default:
		return CursorResizeNESW
	}
}

// DragResizeRect moves the edge(s) of r selected by cursor toward p.
// Vertical affordances adjust the top or bottom edge, horizontal ones the
// left or right edge, diagonal ones both independently. An edge follows the
// pointer at a distance of delta/2 and is never moved closer than delta/2 to
// the opposite edge, so the rectangle cannot invert.
func DragResizeRect(r Rect, cursor Cursor, p Point, delta float64) Rect {
	switch cursor {
	case CursorResizeNS:
		r.Min.Y, r.Max.Y = dragSpan(r.Min.Y, r.Max.Y, p.Y, delta)
	case CursorResizeEW:
		r.Min.X, r.Max.X = dragSpan(r.Min.X, r.Max.X, p.X, delta)
	case CursorResizeNWSE, CursorResizeNESW:
		r.Min.Y, r.Max.Y = dragSpan(r.Min.Y, r.Max.Y, p.Y, delta)
		r.Min.X, r.Max.X = dragSpan(r.Min.X, r.Max.X, p.X, delta)
	}
	return r
}

// dragSpan adjusts the interval [lo, hi] along one axis for pointer
// coordinate v.
func dragSpan(lo, hi, v, delta float64) (float64, float64) {
	half := delta / 2
	switch {
	case v < lo:
		lo = math.Min(v+half, hi-half)
	case v > hi:
		hi = math.Max(v-half, lo+half)
	case v-lo <= delta:
		lo = math.Min(v-half, hi-half)
	case hi-v <= delta:
		hi = math.Max(v+half, lo+half)
	}
	return lo, hi
}
