// Package render draws a navigation map, and optionally a path graph and a
// route through it, to an image.
package render

import (
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/navmesh"
	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/graph"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	SeaColor      = color.RGBA{R: 0x1d, G: 0x4e, B: 0x89, A: 0xff}
	LandColor     = color.RGBA{R: 0xf4, G: 0xa4, B: 0x60, A: 0xff}
	MeshColor     = color.RGBA{R: 0xc0, G: 0x7a, B: 0x3a, A: 0xff}
	CoastColor    = color.RGBA{R: 0x5c, G: 0x33, B: 0x10, A: 0xff}
	GraphColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	WaypointColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	PathColor     = color.RGBA{R: 0xe8, G: 0x1d, B: 0x2c, A: 0xff}
)

type Options struct {
	// Pixels along the longest side of the drawn area, not counting padding.
	Size    int
	Padding int
	// A graph to draw under the route, such as one from
	// Map.NodesAndEdgesConnected.
	Graph *graph.Graph
	Path  []geom.Point
	// Label each inflated corner with its node index.
	Labels bool
}

func DefaultOptions() Options {
	return Options{Size: 800, Padding: 40}
}

// World to pixel mapping, with y up.
type frame struct {
	lo     geom.Point
	scale  float64
	width  int
	height int
	pad    float64
}

func newFrame(m *navmesh.Map, opts Options) frame {
	var points []geom.Point
	for _, island := range m.Triangles() {
		for _, t := range island {
			points = append(points, t.A, t.B, t.C)
		}
	}
	points = append(points, m.InflatedCorners()...)
	if opts.Graph != nil {
		points = append(points, opts.Graph.Nodes...)
	}
	points = append(points, opts.Path...)

	lo, hi := geom.Point{}, geom.Point{X: 1, Y: 1}
	if len(points) > 0 {
		lo, hi = geom.Polygon{Points: points}.Bounds()
	}
	span := math.Max(hi.X-lo.X, hi.Y-lo.Y)
	if span <= 0 {
		span = 1
	}
	scale := float64(opts.Size) / span
	return frame{
		lo:     lo,
		scale:  scale,
		width:  int(math.Ceil(scale*(hi.X-lo.X))) + opts.Padding*2,
		height: int(math.Ceil(scale*(hi.Y-lo.Y))) + opts.Padding*2,
		pad:    float64(opts.Padding),
	}
}

func (f frame) toPixel(p geom.Point) (float64, float64) {
	return f.pad + (p.X-f.lo.X)*f.scale, float64(f.height) - f.pad - (p.Y-f.lo.Y)*f.scale
}

// Draw the map. A Size of zero takes the default.
func Draw(m *navmesh.Map, opts Options) image.Image {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	f := newFrame(m, opts)

	c := gg.NewContext(f.width, f.height)
	c.SetColor(SeaColor)
	c.Clear()

	// Land, with the mesh drawn faintly over it
	for _, island := range m.Triangles() {
		for _, t := range island {
			polyline(c, f, t.A, t.B, t.C)
			c.ClosePath()
			c.SetColor(LandColor)
			c.FillPreserve()
			c.SetColor(MeshColor)
			c.SetLineWidth(1)
			c.Stroke()
		}
	}

	c.SetColor(CoastColor)
	c.SetLineWidth(2)
	for _, edge := range m.BoundaryEdges() {
		polyline(c, f, edge.Start, edge.End())
		c.Stroke()
	}

	if opts.Graph != nil {
		c.SetColor(GraphColor)
		c.SetLineWidth(1)
		for _, e := range opts.Graph.Edges {
			polyline(c, f, opts.Graph.Nodes[e.A], opts.Graph.Nodes[e.B])
			c.Stroke()
		}
	}

	c.SetColor(WaypointColor)
	if opts.Labels {
		c.SetFontFace(labelFace())
	}
	for i, p := range m.InflatedCorners() {
		x, y := f.toPixel(p)
		c.DrawCircle(x, y, 2.5)
		c.Fill()
		if opts.Labels {
			c.DrawStringAnchored(strconv.Itoa(i), x+4, y-4, 0, 0)
		}
	}

	if len(opts.Path) > 0 {
		c.SetColor(PathColor)
		c.SetLineWidth(3)
		polyline(c, f, opts.Path...)
		c.Stroke()
		for _, p := range opts.Path {
			x, y := f.toPixel(p)
			c.DrawCircle(x, y, 4)
			c.Fill()
		}
	}

	return c.Image()
}

func polyline(c *gg.Context, f frame, points ...geom.Point) {
	for i, p := range points {
		x, y := f.toPixel(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
}

var (
	faceOnce sync.Once
	face     font.Face
)

func labelFace() font.Face {
	faceOnce.Do(func() {
		ttf, err := truetype.Parse(goregular.TTF)
		if err != nil {
			// The font is compiled in
			panic(err)
		}
		face = truetype.NewFace(ttf, &truetype.Options{Size: 11})
	})
	return face
}

func SavePNG(path string, m *navmesh.Map, opts Options) error {
	return errors.Wrapf(gg.SavePNG(path, Draw(m, opts)), "saving %s", path)
}

// Draw the map straight to an iTerm compatible terminal.
func Imgcat(w io.Writer, m *navmesh.Map, opts Options) error {
	file, err := os.CreateTemp("", "navmesh-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary image")
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	if err := SavePNG(path, m, opts); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing image")
}
