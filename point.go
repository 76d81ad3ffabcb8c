package sketch

import "math"

// Point represents a position on the canvas or a displacement between two
// positions. Canvas coordinates have the origin at the top-left with Y
// increasing downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Heading returns the direction of the ray from p to q in degrees,
// measured counter-clockwise as seen on screen, in the range [0, 360).
// Because screen Y grows downward, a ray pointing up has heading 90.
// A zero-length ray has heading 0.
func (p Point) Heading(q Point) float64 {
	d := q.Sub(p)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	deg := math.Atan2(-d.Y, d.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// segmentDistance returns the perpendicular distance from c to segment ab
// and whether the foot of the perpendicular falls within the segment.
// Points beyond either endpoint report false.
func segmentDistance(a, b, c Point) (float64, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a.Distance(c), true
	}
	t := ac.Dot(ab) / l2
	if t < 0 || t > 1 {
		return 0, false
	}
	return math.Abs(ab.Cross(ac)) / math.Sqrt(l2), true
}
