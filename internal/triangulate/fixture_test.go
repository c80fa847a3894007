package triangulate

import (
	"embed"
	"math"
	"testing"

	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/islandio"
	"github.com/stretchr/testify/require"
)

// Fixtures are SVG files in fixtures/, each holding one island polygon, and are
// loaded by name sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	islands, err := islandio.ReadSVG(fixture)
	require.NoError(t, err, "could not parse fixture %q", name)
	require.Len(t, islands, 1, "fixture %q should hold one polygon", name)
	return islands[0]
}

// Some ad hoc code specified fixtures
func simpleStar() []geom.Point {
	var points []geom.Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, geom.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A many pointed star with integer coordinates, so plenty of vertices share a
// height.
func roundedStar(points int, outer, inner float64) []geom.Point {
	var ring []geom.Point
	for i := 0; i < points*2; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := math.Pi * float64(i) / float64(points)
		ring = append(ring, geom.Point{
			X: math.Round(radius * math.Cos(angle)),
			Y: math.Round(radius * math.Sin(angle)),
		})
	}
	return ring
}

func square() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
}
