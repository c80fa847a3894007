package triangulate

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/internal/dbg"
)

// Padding around the island, in pixels, so that unbounded trapezoids are
// visibly unbounded.
const dbgDrawPadding = 100

// Scale the island up to roughly this many pixels on its longest side.
const dbgDrawSize = 800

// Draw every trapezoid of the map to a PNG, shading the inside ones, and
// overlay the ring. Useful to look at when a diagonal goes missing.
func (m *TrapezoidMap) SavePNG(path string, inside []*Trapezoid) error {
	bmin, bmax := geom.Polygon{Points: m.points}.Bounds()
	span := math.Max(bmax.X-bmin.X, bmax.Y-bmin.Y)
	if span <= 0 {
		span = 1
	}
	scale := dbgDrawSize / span
	width := int(scale*(bmax.X-bmin.X)) + dbgDrawPadding*2
	height := int(scale*(bmax.Y-bmin.Y)) + dbgDrawPadding*2

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	// World to pixels, with y up
	pad := dbgDrawPadding / scale
	lo := geom.Point{X: bmin.X - pad, Y: bmin.Y - pad}
	hi := geom.Point{X: bmax.X + pad, Y: bmax.Y + pad}
	toPixel := func(p geom.Point) (float64, float64) {
		return (p.X - lo.X) * scale, float64(height) - (p.Y-lo.Y)*scale
	}

	insideIDs := map[int]bool{}
	for _, t := range inside {
		insideIDs[t.ID] = true
	}

	for _, t := range m.Trapezoids() {
		corners := t.clippedCorners(lo, hi)
		for i, corner := range corners {
			x, y := toPixel(corner)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		if insideIDs[t.ID] {
			c.SetRGBA(0.3, 0.2, 1, 0.5)
		} else {
			c.SetRGBA(1, 1, 0, 0.2)
		}
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(1)
		c.Stroke()

		// Label at the center of the clipped shape
		var center geom.Point
		for _, corner := range corners {
			center = center.Add(corner.Scale(0.25))
		}
		x, y := toPixel(center)
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(t), x, y, 0.5, 0.5)
	}

	c.SetRGB(1, 0, 0)
	c.SetLineWidth(2)
	for i, p := range m.points {
		x, y := toPixel(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	c.Stroke()

	return c.SavePNG(path)
}

// Top left, top right, bottom right, bottom left, with infinite extents pulled
// in to the drawing bounds.
func (t *Trapezoid) clippedCorners(lo, hi geom.Point) [4]geom.Point {
	top := math.Min(t.TopY, hi.Y)
	bottom := math.Max(t.BottomY, lo.Y)
	x := func(s *Segment, y float64) float64 {
		return math.Max(lo.X, math.Min(hi.X, s.XAt(y)))
	}
	return [4]geom.Point{
		{X: x(t.Left, top), Y: top},
		{X: x(t.Right, top), Y: top},
		{X: x(t.Right, bottom), Y: bottom},
		{X: x(t.Left, bottom), Y: bottom},
	}
}
