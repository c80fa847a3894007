package geom

import "math"

// There is exactly one tolerance policy in the module. Epsilon decides
// degeneracy (zero length, zero area, parallel directions) and is only ever
// compared against normalized quantities. Tolerance is the width of every
// forgiving band: point-on-segment distance and forgiving intersection
// parameters.
const (
	Epsilon   = 1e-9
	Tolerance = 0.01
)

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Unit vector in the same direction. The zero vector stays zero, so callers
// summing unit vectors don't have to special case repeated points.
func (p Point) Normalize() Point {
	l := p.Len()
	if l < Epsilon {
		return Point{}
	}
	return p.Scale(1 / l)
}

// Rotate a quarter turn counterclockwise.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Cross product of two vectors in the plane. Positive means v turns left
// (counterclockwise) from u.
func Cross(u, v Vector) float64 {
	return u.X*v.Y - u.Y*v.X
}

// Sine of the angle between u and v. Zero length vectors give zero.
func NormalizedCross(u, v Vector) float64 {
	lu, lv := u.Len(), v.Len()
	if lu < Epsilon || lv < Epsilon {
		return 0
	}
	return Cross(u, v) / (lu * lv)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}
