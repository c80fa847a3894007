package triangulate

import (
	"log/slog"

	"github.com/osuushi/navmesh/geom"
	"github.com/pkg/errors"
)

type Options struct {
	// Sentinel sides of the trapezoid map sit at x = -Bound and x = +Bound. The
	// bound is widened automatically if the island reaches past it.
	Bound float64
	// Distance to nudge along a candidate diagonal when checking that it heads
	// into the polygon.
	Probe float64
	// If set, the trapezoid map is drawn to this PNG file.
	DebugPath string
	Logger    *slog.Logger
}

type Result struct {
	Triangles []geom.Triangle
	Diagonals []Diagonal
	// Problems that degraded the triangulation without stopping it.
	Warnings []error
}

// Triangulate one island ring. The ring must have at least three points and no
// consecutive duplicates. It may wind either way.
//
// Building is best effort: if the trapezoid map cannot be built, the whole ring
// is triangulated by ear search alone, and diagonals or ears that cannot be
// found are reported as warnings. An error is only returned if triangulation
// itself could not run.
func Island(points []geom.Point, opts Options) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = HandleTriangulatePanicRecover(r)
		}
	}()

	if len(points) < 3 {
		return result, errors.Errorf("island has %d points, need at least 3", len(points))
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	bound := opts.Bound
	for _, p := range points {
		for _, c := range []float64{p.X, -p.X} {
			if c+1 > bound {
				bound = c + 1
			}
		}
	}
	if bound != opts.Bound {
		logger.Debug("widened world bound to fit island",
			slog.Float64("from", opts.Bound), slog.Float64("to", bound))
	}

	f := newFrame(points)
	diagonals, err := f.findDiagonals(bound, opts.DebugPath, logger)
	if err != nil {
		result.Warnings = append(result.Warnings, errors.Wrap(err, "trapezoid map failed, using ear search only"))
		diagonals = nil
	}
	result.Diagonals = diagonals

	pieces, unused := f.splitMonotones(diagonals)
	for _, d := range unused {
		result.Warnings = append(result.Warnings, errors.Errorf("diagonal %d-%d fits no piece", d[0], d[1]))
	}
	logger.Debug("split into monotone pieces",
		slog.Int("diagonals", len(diagonals)), slog.Int("pieces", len(pieces)))

	clipper := newEarClipper(f, diagonals, opts.Probe)
	for _, piece := range pieces {
		clipper.Triangulate(piece)
	}
	result.Triangles = clipper.Triangles
	result.Warnings = append(result.Warnings, clipper.Warnings...)
	return result, nil
}

// The trapezoid stage runs under its own recover so that a failure there still
// leaves the ear search to fall back on.
func (f frame) findDiagonals(bound float64, debugPath string, logger *slog.Logger) (diagonals []Diagonal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = HandleTriangulatePanicRecover(r)
		}
	}()

	m := NewTrapezoidMap(f.points, bound, logger)
	m.AddRing()
	inside := m.InsideTrapezoids(f.ring())
	if debugPath != "" {
		if err := m.SavePNG(debugPath, inside); err != nil {
			logger.Warn("could not draw trapezoid map", slog.String("path", debugPath), slog.Any("error", err))
		}
	}
	logger.Debug("classified trapezoids",
		slog.Int("total", len(m.trapezoids)), slog.Int("inside", len(inside)))
	return m.Diagonals(inside), nil
}
