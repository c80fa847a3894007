package geom

import "math"

type Polygon struct {
	Points []Point
}

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// The edge leaving vertex i.
func (poly Polygon) Edge(i int) Segment {
	n := len(poly.Points)
	return NewSegment(poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)])
}

// Shoelace area. Positive for counterclockwise rings.
func (poly Polygon) SignedArea() float64 {
	area := 0.0
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Crossing count of a ray cast from p towards +x. Edges are half open in y, so
// a ray passing exactly through a vertex is counted once.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x > p.X {
				crossingCount++
			}
		}
	}
	return crossingCount
}

func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

func (poly Polygon) Bounds() (lo, hi Point) {
	lo = Point{math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Drop consecutive repeated points, including a closing point that repeats the
// first.
func (poly Polygon) Dedupe() Polygon {
	out := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for _, p := range poly.Points {
		if len(out.Points) > 0 && out.Points[len(out.Points)-1] == p {
			continue
		}
		out.Points = append(out.Points, p)
	}
	for len(out.Points) > 1 && out.Points[0] == out.Points[len(out.Points)-1] {
		out.Points = out.Points[:len(out.Points)-1]
	}
	return out
}

// Pairs of edge indices that touch or cross, other than neighbors meeting at
// their shared vertex. An empty result means the ring is simple.
func (poly Polygon) SelfIntersections() [][2]int {
	var hits [][2]int
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		a := poly.Edge(i)
		for j := i + 1; j < n; j++ {
			b := poly.Edge(j)
			if j == i+1 || (i == 0 && j == n-1) {
				// Adjacent edges only meet at their shared vertex unless they fold back
				// over each other.
				if SegmentsCross(a.Start, a.End(), b.Start, b.End()) {
					hits = append(hits, [2]int{i, j})
				}
				continue
			}
			// The parameter band scales with edge length, so near misses on long
			// edges are confirmed by distance.
			if p, ok := IntersectForgiving(a.Start, a.Dir, b.Start, b.Dir); ok &&
				a.Distance(p) <= Tolerance && b.Distance(p) <= Tolerance {
				hits = append(hits, [2]int{i, j})
			}
		}
	}
	return hits
}

func (t Triangle) SignedArea() float64 {
	return Cross(t.B.Sub(t.A), t.C.Sub(t.A)) / 2
}

// The same triangle, wound counterclockwise.
func (t Triangle) CCW() Triangle {
	if t.SignedArea() < 0 {
		return Triangle{t.A, t.C, t.B}
	}
	return t
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

func (t Triangle) Edges() [3]Segment {
	return [3]Segment{NewSegment(t.A, t.B), NewSegment(t.B, t.C), NewSegment(t.C, t.A)}
}

// Is p inside the triangle or on one of its edges? Inside means the three edge
// cross products agree in sign.
func (t Triangle) Contains(p Point) bool {
	ab := Cross(t.B.Sub(t.A), p.Sub(t.A))
	bc := Cross(t.C.Sub(t.B), p.Sub(t.B))
	ca := Cross(t.A.Sub(t.C), p.Sub(t.C))
	if (ab > 0 && bc > 0 && ca > 0) || (ab < 0 && bc < 0 && ca < 0) {
		return true
	}
	for _, edge := range t.Edges() {
		if OnSegment(p, edge.Start, edge.Dir) {
			return true
		}
	}
	return false
}
