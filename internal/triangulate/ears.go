package triangulate

import (
	"math"

	"github.com/osuushi/navmesh/geom"
	"github.com/pkg/errors"
)

// Triangulates pieces of one island by repeatedly cutting off ears. Pieces
// produced by the monotone split always have an ear, but the same checks let
// us make progress on whole rings when the trapezoid map could not be built.
type earClipper struct {
	frame
	// Ring edges and every diagonal introduced so far, by vertex index. A new
	// diagonal may not cross any of them.
	edges     [][2]int
	diagonals []Diagonal
	emitted   map[[3]int]bool
	probe     float64

	Triangles []geom.Triangle
	Warnings  []error
}

func newEarClipper(f frame, diagonals []Diagonal, probe float64) *earClipper {
	n := len(f.points)
	e := &earClipper{
		frame:     f,
		edges:     make([][2]int, n),
		diagonals: append([]Diagonal(nil), diagonals...),
		emitted:   map[[3]int]bool{},
		probe:     probe,
	}
	for i := range e.edges {
		e.edges[i] = [2]int{i, geom.CircularIndex(i+1, n)}
	}
	return e
}

func (e *earClipper) warnf(format string, args ...interface{}) {
	e.Warnings = append(e.Warnings, errors.Errorf(format, args...))
}

func (e *earClipper) Triangulate(piece []int) {
	ring := append([]int(nil), piece...)
	if len(ring) < 3 {
		e.warnf("piece %v has fewer than three vertices", piece)
		return
	}

	ccw := e.ringOf(ring).IsCCW()
	for len(ring) > 3 {
		progress := false
		for i := range ring {
			prev := ring[geom.CircularIndex(i-1, len(ring))]
			next := ring[geom.CircularIndex(i+1, len(ring))]
			if !e.isEar(ring, ccw, prev, ring[i], next) {
				continue
			}
			e.emit(prev, ring[i], next)
			e.diagonals = append(e.diagonals, newDiagonal(prev, next))
			ring = append(ring[:i:i], ring[i+1:]...)
			progress = true
			break
		}
		if !progress {
			e.warnf("no ear found among %d remaining vertices %v", len(ring), ring)
			return
		}
	}

	a, b, c := ring[0], ring[1], ring[2]
	if math.Abs(geom.NormalizedCross(e.points[b].Sub(e.points[a]), e.points[c].Sub(e.points[a]))) <= geom.Epsilon {
		e.warnf("degenerate final triangle %d %d %d", a, b, c)
		return
	}
	if e.emitted[triangleKey(a, b, c)] {
		e.warnf("duplicate final triangle %d %d %d", a, b, c)
		return
	}
	e.emit(a, b, c)
}

func (e *earClipper) isEar(ring []int, ccw bool, prev, v, next int) bool {
	p, q, r := e.points[prev], e.points[v], e.points[next]

	// Convex and not degenerate
	turn := geom.NormalizedCross(q.Sub(p), r.Sub(q))
	if math.Abs(turn) <= geom.Epsilon || (turn > 0) != ccw {
		return false
	}

	if e.emitted[triangleKey(prev, v, next)] {
		return false
	}

	for _, edge := range e.edges {
		if geom.SegmentsCross(p, r, e.points[edge[0]], e.points[edge[1]]) {
			return false
		}
	}
	for _, d := range e.diagonals {
		if geom.SegmentsCross(p, r, e.points[d[0]], e.points[d[1]]) {
			return false
		}
	}

	// Both ends of the new diagonal must head into the piece
	working := e.ringOf(ring)
	dir := r.Sub(p)
	nudge := math.Min(e.probe, 0.25*dir.Len())
	unit := dir.Normalize()
	if !working.ContainsPointByEvenOdd(p.Add(unit.Scale(nudge))) ||
		!working.ContainsPointByEvenOdd(r.Sub(unit.Scale(nudge))) {
		return false
	}

	triangle := geom.Triangle{A: p, B: q, C: r}
	for _, w := range ring {
		if w == prev || w == v || w == next {
			continue
		}
		point := e.points[w]
		if point == p || point == q || point == r {
			continue
		}
		if triangle.Contains(point) {
			return false
		}
	}
	return true
}

func (e *earClipper) emit(a, b, c int) {
	e.emitted[triangleKey(a, b, c)] = true
	triangle := geom.Triangle{A: e.original[a], B: e.original[b], C: e.original[c]}
	e.Triangles = append(e.Triangles, triangle.CCW())
}

func triangleKey(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}
