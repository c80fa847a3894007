package triangulate

import (
	"fmt"
	"math"
	"testing"

	"github.com/osuushi/navmesh/geom"
	"github.com/stretchr/testify/assert"
)

// Check that triangles are a valid triangulation of the ring: one triangle per
// vertex beyond the second, all counterclockwise and non-degenerate, areas
// adding up, and agreeing with the ring about what is inside.
func assertValidTriangulation(t *testing.T, ring []geom.Point, triangles []geom.Triangle) {
	t.Helper()
	poly := geom.Polygon{Points: ring}

	assert.Len(t, triangles, len(ring)-2, "triangle count")

	area := 0.0
	for _, triangle := range triangles {
		a := triangle.SignedArea()
		assert.Greater(t, a, 0.0, "triangle %v is not counterclockwise", triangle)
		area += a
	}
	assert.InDelta(t, math.Abs(poly.SignedArea()), area, 1e-6, "total area")

	edges := map[[2]geom.Point]bool{}
	for _, triangle := range triangles {
		vertices := [3]geom.Point{triangle.A, triangle.B, triangle.C}
		for i, a := range vertices {
			b := vertices[(i+1)%3]
			edges[[2]geom.Point{a, b}] = true
			edges[[2]geom.Point{b, a}] = true
		}
	}
	for i, a := range ring {
		b := ring[geom.CircularIndex(i+1, len(ring))]
		assert.True(t, edges[[2]geom.Point{a, b}], "ring edge %d is missing", i)
	}

	validateBySampling(t, poly, triangles)
}

func validateBySampling(t *testing.T, poly geom.Polygon, triangles []geom.Triangle) {
	t.Helper()
	const samples = 60
	lo, hi := poly.Bounds()
	for i := 0; i <= samples; i++ {
		for j := 0; j <= samples; j++ {
			p := geom.Point{
				X: lo.X + (hi.X-lo.X)*(float64(i)+0.37)/samples,
				Y: lo.Y + (hi.Y-lo.Y)*(float64(j)+0.61)/samples,
			}
			if nearBoundary(poly, p) {
				continue
			}
			inTriangle := false
			for _, triangle := range triangles {
				if triangle.Contains(p) {
					inTriangle = true
					break
				}
			}
			if !assert.Equal(t, poly.ContainsPointByEvenOdd(p), inTriangle, fmt.Sprintf("sample %v", p)) {
				return
			}
		}
	}
}

func nearBoundary(poly geom.Polygon, p geom.Point) bool {
	for i := range poly.Points {
		if poly.Edge(i).Distance(p) < 0.05 {
			return true
		}
	}
	return false
}
