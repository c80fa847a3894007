package geom

import "math"

func NewSegment(a, b Point) Segment {
	return Segment{Start: a, Dir: b.Sub(a), end: b}
}

func (s Segment) End() Point {
	return s.end
}

func (s Segment) At(t float64) Point {
	return s.Start.Add(s.Dir.Scale(t))
}

func (s Segment) Midpoint() Point {
	return s.At(0.5)
}

func (s Segment) Len() float64 {
	return s.Dir.Len()
}

// Projection parameter of p onto the line through s, clamped to the segment.
func (s Segment) ClosestParam(p Point) float64 {
	len2 := s.Dir.Dot(s.Dir)
	if len2 < Epsilon*Epsilon {
		return 0
	}
	t := p.Sub(s.Start).Dot(s.Dir) / len2
	return math.Max(0, math.Min(1, t))
}

func (s Segment) ClosestPoint(p Point) Point {
	return s.At(s.ClosestParam(p))
}

func (s Segment) Distance(p Point) float64 {
	return s.ClosestPoint(p).Dist(p)
}

// Does the point lie on the segment from start along dir? The projection must
// fall inside the segment and the perpendicular distance must be within
// Tolerance.
func OnSegment(p, start Point, dir Vector) bool {
	length := dir.Len()
	if length < Epsilon {
		return p.Dist(start) <= Tolerance
	}
	offset := p.Sub(start)
	t := offset.Dot(dir) / (length * length)
	if t < 0 || t > 1 {
		return false
	}
	return math.Abs(Cross(dir, offset))/length <= Tolerance
}

// Intersect the line a (a ray when strict is false, a bounded segment
// otherwise) with the bounded segment b. The result is always a point on b.
//
// When the two are collinear and overlap, the overlapping point nearest to
// aStart is returned.
func Intersect(aStart Point, aDir Vector, bStart Point, bDir Vector, strict bool) (Point, bool) {
	return intersect(aStart, aDir, bStart, bDir, strict, 0)
}

// Like a strict Intersect, but both parameters may land up to Tolerance outside
// their segments. This absorbs floating point error when testing whether two
// edges of the same polygon touch.
func IntersectForgiving(aStart Point, aDir Vector, bStart Point, bDir Vector) (Point, bool) {
	return intersect(aStart, aDir, bStart, bDir, true, Tolerance)
}

func intersect(aStart Point, aDir Vector, bStart Point, bDir Vector, strict bool, band float64) (Point, bool) {
	inRange := func(t float64) bool {
		return t >= -band && t <= 1+band
	}

	aLen, bLen := aDir.Len(), bDir.Len()
	if aLen < Epsilon {
		// A point query
		if OnSegment(aStart, bStart, bDir) {
			return aStart, true
		}
		return Point{}, false
	}
	if bLen < Epsilon {
		t := bStart.Sub(aStart).Dot(aDir) / (aLen * aLen)
		if math.Abs(Cross(aDir, bStart.Sub(aStart)))/aLen > Tolerance {
			return Point{}, false
		}
		if strict && !inRange(t) {
			return Point{}, false
		}
		return bStart, true
	}

	denominator := Cross(aDir, bDir)
	if math.Abs(denominator)/(aLen*bLen) < Epsilon {
		// Parallel. Only collinear edges can meet.
		if math.Abs(Cross(aDir, bStart.Sub(aStart)))/aLen > Tolerance {
			return Point{}, false
		}
		t0 := bStart.Sub(aStart).Dot(aDir) / (aLen * aLen)
		t1 := bStart.Add(bDir).Sub(aStart).Dot(aDir) / (aLen * aLen)
		lo, hi := math.Min(t0, t1), math.Max(t0, t1)
		var t float64
		if strict {
			lo, hi = math.Max(lo, -band), math.Min(hi, 1+band)
			if lo > hi {
				return Point{}, false
			}
			t = math.Max(lo, 0)
			if t > hi {
				t = hi
			}
		} else {
			switch {
			case lo <= 0 && hi >= 0:
				t = 0
			case lo > 0:
				t = lo
			default:
				t = hi
			}
		}
		return aStart.Add(aDir.Scale(t)), true
	}

	offset := bStart.Sub(aStart)
	t := Cross(offset, bDir) / denominator
	u := Cross(offset, aDir) / denominator
	if !inRange(u) {
		return Point{}, false
	}
	if strict && !inRange(t) {
		return Point{}, false
	}
	u = math.Max(0, math.Min(1, u))
	return bStart.Add(bDir.Scale(u)), true
}

// Orientation of c relative to the directed line a->b: 1 for left, -1 for
// right, 0 for (nearly) collinear.
func Orientation(a, b, c Point) int {
	s := NormalizedCross(b.Sub(a), c.Sub(a))
	switch {
	case s > Epsilon:
		return 1
	case s < -Epsilon:
		return -1
	}
	return 0
}

// Does p lie on the closed segment ab, given that it's already known to be
// collinear with it?
func withinBounds(p, a, b Point) bool {
	return p.X >= math.Min(a.X, b.X)-Epsilon && p.X <= math.Max(a.X, b.X)+Epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-Epsilon && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// Do segments p1p2 and q1q2 share any point other than an endpoint they have in
// common? Proper crossings, T junctions, and collinear overlaps all count.
func SegmentsCross(p1, p2, q1, q2 Point) bool {
	o1 := Orientation(p1, p2, q1)
	o2 := Orientation(p1, p2, q2)
	o3 := Orientation(q1, q2, p1)
	o4 := Orientation(q1, q2, p2)

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	shared := func(p Point) bool {
		return (p == p1 || p == p2) && (p == q1 || p == q2)
	}
	touches := func(o int, p, a, b Point) bool {
		return o == 0 && withinBounds(p, a, b) && !shared(p)
	}
	return touches(o1, q1, p1, p2) ||
		touches(o2, q2, p1, p2) ||
		touches(o3, p1, q1, q2) ||
		touches(o4, p2, q1, q2)
}
