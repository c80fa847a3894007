package navmesh

import (
	"embed"
	"math"
	"testing"

	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/islandio"
	"github.com/stretchr/testify/require"
)

//go:embed testdata
var testdata embed.FS

func loadArchipelago(t *testing.T) [][]geom.Point {
	file, err := testdata.Open("testdata/archipelago.svg")
	require.NoError(t, err)
	defer file.Close()

	islands, err := islandio.ReadSVG(file)
	require.NoError(t, err)
	require.Len(t, islands, 3)
	return islands
}

func pt(x, y float64) geom.Point {
	return geom.Point{X: x, Y: y}
}

// The two triangle island used throughout: a diamond from (50,0) to (150,0),
// split down the middle. Both triangles are wound clockwise.
func hexagonTriangles() []geom.Point {
	return []geom.Point{
		pt(50, 0), pt(100, 25), pt(100, -25),
		pt(100, -25), pt(100, 25), pt(150, 0),
	}
}

func smallTriangle() []geom.Point {
	return []geom.Point{pt(50, 100), pt(100, 125), pt(100, 75)}
}

func triangleIsland() []geom.Point {
	return []geom.Point{pt(50, 0), pt(100, 25), pt(100, -25)}
}

// An L with its notch at the top right, so (5,5) is a reflex corner.
func lIsland() []geom.Point {
	return []geom.Point{pt(0, 0), pt(10, 0), pt(10, 5), pt(5, 5), pt(5, 10), pt(0, 10)}
}

// Ten points alternating between two radii. None of the coordinates are
// integers.
func floatStar(outer, inner float64) []geom.Point {
	var points []geom.Point
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i) * math.Pi / 5
		points = append(points, pt(r*math.Cos(angle), r*math.Sin(angle)))
	}
	return points
}

func mustFromTriangles(t *testing.T, islands ...[]geom.Point) *Map {
	m, err := FromTriangles(islands)
	require.NoError(t, err)
	return m
}

func mustBuildMap(t *testing.T, islands [][]geom.Point, opts ...Option) *Map {
	m, err := BuildMap(islands, opts...)
	require.NoError(t, err)
	return m
}

// Distance from p to the nearest boundary edge.
func edgeDistance(m *Map, p geom.Point) float64 {
	best := -1.0
	for _, edge := range m.BoundaryEdges() {
		if d := edge.Distance(p); best < 0 || d < best {
			best = d
		}
	}
	return best
}

// Does the segment from p to q touch any boundary edge?
func crossesBoundary(m *Map, p, q geom.Point) bool {
	for _, edge := range m.BoundaryEdges() {
		if geom.SegmentsCross(p, q, edge.Start, edge.End()) {
			return true
		}
	}
	return false
}
