package triangulate

import (
	"math"
	"sort"

	"github.com/osuushi/navmesh/geom"
)

// The trapezoid map assumes that no two vertices lie on the same horizontal.
// Rather than comparing lexicographically everywhere, we shear the island by a
// tiny amount so that the assumption is literally true: y' = y + k*(x - minX).
//
// k is chosen so that vertices with distinct y keep their order, and vertices
// with equal y are ordered by x. The shear is affine with determinant one, so
// containment and winding are unchanged, and results are mapped back through
// vertex indices rather than coordinates.
type frame struct {
	original []geom.Point
	points   []geom.Point
	slope    float64
}

func newFrame(points []geom.Point) frame {
	ys := make([]float64, len(points))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		ys[i] = p.Y
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}
	sort.Float64s(ys)

	minGap := math.Inf(1)
	for i := 1; i < len(ys); i++ {
		if gap := ys[i] - ys[i-1]; gap > 0 {
			minGap = math.Min(minGap, gap)
		}
	}
	if math.IsInf(minGap, 1) {
		minGap = 1
	}

	f := frame{
		original: points,
		points:   make([]geom.Point, len(points)),
		slope:    minGap / (2 * (maxX - minX + 1)),
	}
	for i, p := range points {
		f.points[i] = geom.Point{X: p.X, Y: p.Y + f.slope*(p.X-minX)}
	}
	return f
}

func (f frame) ring() geom.Polygon {
	return geom.Polygon{Points: f.points}
}

func (f frame) ringOf(indices []int) geom.Polygon {
	poly := geom.Polygon{Points: make([]geom.Point, len(indices))}
	for i, v := range indices {
		poly.Points[i] = f.points[v]
	}
	return poly
}
