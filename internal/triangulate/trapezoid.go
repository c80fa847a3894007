package triangulate

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/internal/dbg"
)

// Sentinel segments have no vertices.
const noVertex = -1

// A segment of the island ring, oriented bottom to top. Vertex indices refer
// to the island's ring, or are noVertex for the sentinel sides of the map.
type Segment struct {
	Top, Bottom             geom.Point
	TopVertex, BottomVertex int
}

func newSegment(points []geom.Point, i, j int) *Segment {
	if points[i].Y < points[j].Y {
		i, j = j, i
	}
	return &Segment{
		Top:          points[i],
		Bottom:       points[j],
		TopVertex:    i,
		BottomVertex: j,
	}
}

// Vertical segment at x spanning every height.
func newSentinel(x float64) *Segment {
	return &Segment{
		Top:          geom.Point{X: x, Y: math.MaxFloat64},
		Bottom:       geom.Point{X: x, Y: -math.MaxFloat64},
		TopVertex:    noVertex,
		BottomVertex: noVertex,
	}
}

func (s *Segment) IsSentinel() bool {
	return s.TopVertex == noVertex
}

// X value of the line through the segment at height y.
func (s *Segment) XAt(y float64) float64 {
	if s.IsSentinel() {
		return s.Bottom.X
	}
	return s.Bottom.X + (y-s.Bottom.Y)*(s.Top.X-s.Bottom.X)/(s.Top.Y-s.Bottom.Y)
}

// Is the segment left of the point? Only the line through the segment is
// considered.
func (s *Segment) IsLeftOf(p geom.Point) bool {
	return geom.Cross(s.Top.Sub(s.Bottom), p.Sub(s.Bottom)) < 0
}

func (s *Segment) HasEndpoints(u, w int) bool {
	return (s.TopVertex == u && s.BottomVertex == w) || (s.TopVertex == w && s.BottomVertex == u)
}

func (s *Segment) String() string {
	if s.IsSentinel() {
		return fmt.Sprintf("|%g|", s.Bottom.X)
	}
	return fmt.Sprintf("%d-%d", s.BottomVertex, s.TopVertex)
}

type Trapezoid struct {
	ID          int
	Left, Right *Segment
	// Heights of the horizontal sides. Unbounded trapezoids use infinities.
	TopY, BottomY float64
	// The island vertices whose heights define TopY and BottomY, or noVertex.
	// Because no two vertices share a height, these are always unique. After
	// inside trapezoids are merged, they also always lie on the trapezoid's
	// boundary.
	Top, Bottom int
}

// A height strictly inside the trapezoid.
func (t *Trapezoid) MidY() float64 {
	top, bottom := math.IsInf(t.TopY, 1), math.IsInf(t.BottomY, -1)
	switch {
	case top && bottom:
		return 0
	case top:
		return t.BottomY + 1
	case bottom:
		return t.TopY - 1
	}
	return (t.TopY + t.BottomY) / 2
}

// A point strictly inside the trapezoid, used to classify it.
func (t *Trapezoid) Probe() geom.Point {
	y := t.MidY()
	return geom.Point{X: (t.Left.XAt(y) + t.Right.XAt(y)) / 2, Y: y}
}

// Is p inside the trapezoid or on its boundary?
func (t *Trapezoid) Contains(p geom.Point) bool {
	if p.Y > t.TopY || p.Y < t.BottomY {
		return false
	}
	return p.X >= t.Left.XAt(p.Y)-geom.Tolerance && p.X <= t.Right.XAt(p.Y)+geom.Tolerance
}

// Does the vertex at p lie on the trapezoid's top or bottom side? Heights are
// copied from vertex coordinates, so exact comparison is intended.
func (t *Trapezoid) OnBoundary(p geom.Point) bool {
	if p.Y != t.TopY && p.Y != t.BottomY {
		return false
	}
	return t.Contains(p)
}

func (t *Trapezoid) DbgName() string {
	name := dbg.Name(t)
	if t.Left.IsSentinel() || t.Right.IsSentinel() || math.IsInf(t.TopY, 0) || math.IsInf(t.BottomY, 0) {
		name = aurora.Cyan(name).String()
	} else if geom.Equal(t.TopY, t.BottomY) { // Zero height, which the shear should rule out
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

func (t *Trapezoid) String() string {
	return fmt.Sprintf("%s#%d{L:%s R:%s top:%d bottom:%d}", t.DbgName(), t.ID, t.Left, t.Right, t.Top, t.Bottom)
}
