// Command navmesh builds a navigation mesh from island outlines and answers
// questions about it: routes between points, whether points are on land, and
// where the nearest open water is.
//
// Islands are read from an SVG file (every <polygon> is an island), a GeoJSON
// feature collection, or a text file of "x y" lines with a blank line between
// islands.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/navmesh"
	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/islandio"
	"github.com/osuushi/navmesh/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("navmesh", "Navigation meshes around polygonal islands.")

	islandsPath     = app.Flag("islands", "Island file: .svg, .geojson or text.").Short('i').Required().ExistingFile()
	format          = app.Flag("format", "Island file format. Guessed from the extension by default.").Enum("svg", "geojson", "text")
	worldBound      = app.Flag("world-bound", "Half width of the area the decomposition starts from.").Default("10000").Float64()
	cornerClearance = app.Flag("corner-clearance", "How far corner waypoints sit from the land.").Default("1").Float64()
	edgeClearance   = app.Flag("edge-clearance", "How far closest points sit from the land.").Default("1").Float64()
	interiorProbe   = app.Flag("interior-probe", "Probe distance for checking that an ear lies inside its island.").Default("0.01").Float64()
	strict          = app.Flag("strict", "Fail on self-intersecting islands instead of warning.").Bool()
	debugDir        = app.Flag("debug-dir", "Save a picture of each island's trapezoid map here.").ExistingDir()
	logLevel        = app.Flag("log-level", "Log level.").Default("warn").Enum("debug", "info", "warn", "error")
	noColor         = app.Flag("no-color", "Plain output.").Bool()

	triangulateCmd = app.Command("triangulate", "Print the triangles of every island.")

	pathCmd    = app.Command("path", "Find a route by sea.")
	pathFrom   = pointArg(pathCmd.Arg("from", "Start point, as x,y.").Required())
	pathTo     = pointArg(pathCmd.Arg("to", "End point, as x,y.").Required())
	pathRender = pathCmd.Flag("render", "Also draw the route to this PNG file.").String()
	pathImgcat = pathCmd.Flag("imgcat", "Also draw the route to the terminal.").Bool()

	onLandCmd    = app.Command("onland", "Check whether points are on land.")
	onLandPoints = pointListArg(onLandCmd.Arg("points", "Points, as x,y.").Required())

	closestCmd   = app.Command("closest", "Find the nearest point in open water by the coast.")
	closestPoint = pointArg(closestCmd.Arg("point", "Point, as x,y.").Required())

	renderCmd    = app.Command("render", "Draw the map.")
	renderOut    = renderCmd.Arg("out", "PNG file to write. Omit with --imgcat.").String()
	renderImgcat = renderCmd.Flag("imgcat", "Draw to the terminal.").Bool()
	renderSize   = renderCmd.Flag("size", "Pixels along the longest side.").Default("800").Int()
	renderLabels = renderCmd.Flag("labels", "Number the corner waypoints.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)
	if err := run(command, os.Stdout, au); err != nil {
		fmt.Fprintln(os.Stderr, au.Red(fmt.Sprintf("error: %v", err)))
		os.Exit(1)
	}
}

func run(command string, out io.Writer, au aurora.Aurora) error {
	logger, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	navmesh.SetLogger(logger)

	islands, err := readIslands(*islandsPath, *format)
	if err != nil {
		return err
	}
	m, err := navmesh.BuildMap(islands,
		navmesh.WithWorldBound(*worldBound),
		navmesh.WithCornerClearance(*cornerClearance),
		navmesh.WithEdgeClearance(*edgeClearance),
		navmesh.WithInteriorProbe(*interiorProbe),
		navmesh.WithStrictRings(*strict),
		navmesh.WithDebugDir(*debugDir),
	)
	if err != nil {
		return err
	}
	for _, warning := range m.Warnings() {
		fmt.Fprintln(os.Stderr, au.Yellow(fmt.Sprintf("warning: %v", warning)))
	}

	switch command {
	case triangulateCmd.FullCommand():
		printTriangles(out, m)
	case pathCmd.FullCommand():
		return findPath(out, au, m, *pathFrom, *pathTo)
	case onLandCmd.FullCommand():
		for _, p := range *onLandPoints {
			land := au.Blue("sea")
			if m.OnLand(p) {
				land = au.Yellow("land")
			}
			fmt.Fprintf(out, "%s %s\n", formatPoint(p), land)
		}
	case closestCmd.FullCommand():
		fmt.Fprintln(out, formatPoint(m.ClosestPointOnEdge(*closestPoint)))
	case renderCmd.FullCommand():
		opts := render.DefaultOptions()
		opts.Size = *renderSize
		opts.Labels = *renderLabels
		return draw(m, opts, *renderOut, *renderImgcat)
	}
	return nil
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func readIslands(path, format string) ([][]geom.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening islands")
	}
	defer file.Close()

	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".svg":
			format = "svg"
		case ".geojson", ".json":
			format = "geojson"
		default:
			format = "text"
		}
	}
	var islands [][]geom.Point
	switch format {
	case "svg":
		islands, err = islandio.ReadSVG(file)
	case "geojson":
		islands, err = islandio.ReadGeoJSON(file)
	default:
		islands, err = islandio.ReadText(file)
	}
	return islands, errors.Wrapf(err, "reading %s", path)
}

func printTriangles(out io.Writer, m *navmesh.Map) {
	for i, island := range m.Triangles() {
		fmt.Fprintf(out, "# island %d\n", i)
		for _, t := range island {
			fmt.Fprintf(out, "%s %s %s\n", formatPoint(t.A), formatPoint(t.B), formatPoint(t.C))
		}
	}
}

func findPath(out io.Writer, au aurora.Aurora, m *navmesh.Map, from, to geom.Point) error {
	for _, p := range []geom.Point{from, to} {
		if m.OnLand(p) {
			return errors.Errorf("%s is on land", formatPoint(p))
		}
	}
	path, err := m.FindPath(from, to)
	if err != nil {
		return err
	}
	length := 0.0
	for i, p := range path {
		if i > 0 {
			length += p.Dist(path[i-1])
		}
		fmt.Fprintln(out, formatPoint(p))
	}
	fmt.Fprintln(out, au.Green(fmt.Sprintf("# %d waypoints, length %.2f", len(path), length)))

	if *pathRender == "" && !*pathImgcat {
		return nil
	}
	opts := render.DefaultOptions()
	opts.Path = path
	return draw(m, opts, *pathRender, *pathImgcat)
}

func draw(m *navmesh.Map, opts render.Options, path string, toTerminal bool) error {
	if path == "" && !toTerminal {
		return errors.New("nowhere to draw: give a file name or --imgcat")
	}
	if path != "" {
		if err := render.SavePNG(path, m, opts); err != nil {
			return err
		}
	}
	if toTerminal {
		return render.Imgcat(os.Stdout, m, opts)
	}
	return nil
}

func formatPoint(p geom.Point) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}
