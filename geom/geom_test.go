package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCross(t *testing.T) {
	assert.Equal(t, 1.0, Cross(Point{1, 0}, Point{0, 1}))
	assert.Equal(t, -1.0, Cross(Point{0, 1}, Point{1, 0}))
	assert.Equal(t, 0.0, Cross(Point{2, 2}, Point{1, 1}))
}

func TestNormalize(t *testing.T) {
	n := Point{3, 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.Equal(t, Point{}, Point{}.Normalize())
}

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(3, 3))
	assert.Equal(t, 2, CircularIndex(-1, 3))
	assert.Equal(t, 1, CircularIndex(7, 3))
}

func TestOnSegment(t *testing.T) {
	start := Point{50, 100}
	dir := Point{50, 25}

	t.Run("on the edge", func(t *testing.T) {
		assert.True(t, OnSegment(Point{52, 101}, start, dir))
	})
	t.Run("endpoints", func(t *testing.T) {
		assert.True(t, OnSegment(start, start, dir))
		assert.True(t, OnSegment(Point{100, 125}, start, dir))
	})
	t.Run("within tolerance", func(t *testing.T) {
		assert.True(t, OnSegment(Point{52, 101.005}, start, dir))
	})
	t.Run("off the edge", func(t *testing.T) {
		assert.False(t, OnSegment(Point{52, 102}, start, dir))
	})
	t.Run("beyond the end", func(t *testing.T) {
		assert.False(t, OnSegment(Point{102, 126}, start, dir))
	})
	t.Run("degenerate segment", func(t *testing.T) {
		assert.True(t, OnSegment(start, start, Point{}))
		assert.False(t, OnSegment(Point{1, 1}, start, Point{}))
	})
}

func TestIntersect(t *testing.T) {
	edgeStart := Point{50, 0}
	edgeDir := Point{50, 25}

	t.Run("strict segment falls short", func(t *testing.T) {
		_, ok := Intersect(Point{0, 0}, Point{40, 1}, edgeStart, edgeDir, true)
		assert.False(t, ok)
	})

	t.Run("non-strict extends the line", func(t *testing.T) {
		p, ok := Intersect(Point{0, 0}, Point{40, 1}, edgeStart, edgeDir, false)
		require.True(t, ok)
		assert.InDelta(t, 52.63158, p.X, 1e-4)
		assert.InDelta(t, 1.3157893, p.Y, 1e-4)
	})

	t.Run("non-strict never leaves the edge", func(t *testing.T) {
		_, ok := Intersect(Point{0, 30}, Point{1, 0}, edgeStart, edgeDir, false)
		assert.False(t, ok)
	})

	t.Run("parallel lines never meet", func(t *testing.T) {
		_, ok := Intersect(Point{0, 10}, Point{50, 25}, edgeStart, edgeDir, false)
		assert.False(t, ok)
	})

	t.Run("collinear returns the nearest overlap", func(t *testing.T) {
		p, ok := Intersect(Point{0, -25}, Point{10, 5}, edgeStart, edgeDir, false)
		require.True(t, ok)
		assert.InDelta(t, 50, p.X, 1e-9)
		assert.InDelta(t, 0, p.Y, 1e-9)

		_, ok = Intersect(Point{0, -25}, Point{10, 5}, edgeStart, edgeDir, true)
		assert.False(t, ok, "strict segment ends before the edge begins")

		p, ok = Intersect(Point{0, -25}, Point{100, 50}, edgeStart, edgeDir, true)
		require.True(t, ok)
		assert.InDelta(t, 50, p.X, 1e-9)
	})

	t.Run("touching at an endpoint counts", func(t *testing.T) {
		p, ok := Intersect(Point{0, 0}, Point{50, 0}, edgeStart, edgeDir, true)
		require.True(t, ok)
		assert.Equal(t, edgeStart, p)
	})
}

func TestIntersectForgiving(t *testing.T) {
	// Misses by a hair
	_, ok := Intersect(Point{0, 0}, Point{0.999, 0}, Point{1, -1}, Point{0, 2}, true)
	assert.False(t, ok)
	_, ok = IntersectForgiving(Point{0, 0}, Point{0.999, 0}, Point{1, -1}, Point{0, 2})
	assert.True(t, ok)

	_, ok = IntersectForgiving(Point{0, 0}, Point{0.5, 0}, Point{1, -1}, Point{0, 2})
	assert.False(t, ok)
}

func TestSegmentsCross(t *testing.T) {
	o := Point{0, 0}
	testCases := []struct {
		name           string
		p1, p2, q1, q2 Point
		expected       bool
	}{
		{"proper crossing", o, Point{2, 2}, Point{0, 2}, Point{2, 0}, true},
		{"disjoint", o, Point{1, 0}, Point{0, 1}, Point{1, 1}, false},
		{"shared endpoint", o, Point{1, 0}, o, Point{0, 1}, false},
		{"t junction", o, Point{2, 0}, Point{1, 0}, Point{1, 1}, true},
		{"collinear overlap from shared endpoint", o, Point{2, 0}, o, Point{1, 0}, true},
		{"collinear opposite directions", o, Point{1, 0}, o, Point{-1, 0}, false},
		{"identical", o, Point{1, 0}, o, Point{1, 0}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SegmentsCross(tc.p1, tc.p2, tc.q1, tc.q2))
			assert.Equal(t, tc.expected, SegmentsCross(tc.q1, tc.q2, tc.p1, tc.p2))
		})
	}
}

func TestSegmentClosestPoint(t *testing.T) {
	s := NewSegment(Point{50, 0}, Point{100, 25})
	assert.Equal(t, Point{50, 0}, s.ClosestPoint(Point{0, 0}))
	assert.Equal(t, Point{100, 25}, s.ClosestPoint(Point{200, 0}))
	p := s.ClosestPoint(Point{65, 5})
	assert.InDelta(t, 64, p.X, 1e-9)
	assert.InDelta(t, 7, p.Y, 1e-9)
}

func TestPolygon(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}

	t.Run("area and winding", func(t *testing.T) {
		assert.Equal(t, 4.0, square.SignedArea())
		assert.True(t, square.IsCCW())
		assert.False(t, square.Reverse().IsCCW())
	})

	t.Run("even odd", func(t *testing.T) {
		assert.True(t, square.ContainsPointByEvenOdd(Point{1, 1}))
		assert.False(t, square.ContainsPointByEvenOdd(Point{3, 1}))
		// Ray through a vertex height
		assert.True(t, square.ContainsPointByEvenOdd(Point{1, 1.9999}))
		assert.False(t, square.ContainsPointByEvenOdd(Point{-1, 2}))
	})

	t.Run("dedupe", func(t *testing.T) {
		noisy := Polygon{Points: []Point{{0, 0}, {0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}}
		assert.Equal(t, square, noisy.Dedupe())
	})

	t.Run("simple ring has no self intersections", func(t *testing.T) {
		assert.Empty(t, square.SelfIntersections())
	})

	t.Run("bow tie", func(t *testing.T) {
		bowTie := Polygon{Points: []Point{{0, 0}, {2, 2}, {2, 0}, {0, 2}}}
		assert.Equal(t, [][2]int{{0, 2}}, bowTie.SelfIntersections())
	})

	t.Run("star with float vertices", func(t *testing.T) {
		var star Polygon
		for i := 0; i < 10; i++ {
			r := 5.0
			if i%2 == 1 {
				r = 2
			}
			angle := float64(i) * math.Pi / 5
			star.Points = append(star.Points, Point{r * math.Cos(angle), r * math.Sin(angle)})
		}
		for i := range star.Points {
			assert.Equal(t, star.Points[(i+1)%10], star.Edge(i).End(), "edge %d", i)
		}
		assert.Empty(t, star.SelfIntersections())
	})
}

func TestTriangle(t *testing.T) {
	tri := Triangle{Point{50, 0}, Point{100, 25}, Point{100, -25}}
	assert.Less(t, tri.SignedArea(), 0.0)
	assert.Greater(t, tri.CCW().SignedArea(), 0.0)

	assert.True(t, tri.Contains(Point{65, 5}))
	assert.True(t, tri.Contains(Point{50, 0}), "corner")
	assert.True(t, tri.Contains(Point{100, 0}), "edge")
	assert.False(t, tri.Contains(Point{0, 0}))
}
