// Package navmesh builds a navigation mesh around polygonal islands and
// answers pathfinding and point queries against it.
//
// Islands are triangulated once by BuildMap (or given pre-triangulated to
// FromTriangles). The outline of each island becomes a graph of corners, each
// pushed a little away from the land, and path requests inject their
// endpoints into a fresh copy of that graph before searching it with A*.
//
// A Map is never modified after it is built, so it can be shared between
// goroutines freely.
package navmesh

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/graph"
	"github.com/osuushi/navmesh/internal/triangulate"
	"github.com/peterstace/simplefeatures/rtree"
	"github.com/pkg/errors"
)

type Map struct {
	opts   Options
	logger *slog.Logger

	// Triangles of each island, counterclockwise
	islands [][]geom.Triangle
	// The same triangles, flattened in island order, for the index
	triangles     []geom.Triangle
	triangleIndex *rtree.RTree

	// Island outlines. Edge i joins corners cornerEdges[i].A and B.
	edges       []geom.Segment
	edgeBoxes   []rtree.Box
	edgeIndex   *rtree.RTree
	corners     []geom.Point
	inflated    []geom.Point
	cornerEdges []graph.Edge
	// The subset of cornerEdges that every route graph starts from
	sailable []graph.Edge

	warnings []error
}

// Triangulate the islands and build a map around them. Each island is a ring
// of points, wound either way. Repeated points are dropped, and rings that
// are left with fewer than three points are skipped with a warning.
//
// An error is only returned for an island with no points at all, or for a
// self-intersecting island when WithStrictRings is set. Anything else that
// goes wrong is recorded in Warnings, and the map is built as well as it can
// be.
func BuildMap(islands [][]geom.Point, opts ...Option) (*Map, error) {
	m := newMap(opts)
	for i, ring := range islands {
		if len(ring) == 0 {
			return nil, errors.Wrapf(ErrEmptyIsland, "island %d", i)
		}

		poly := geom.Polygon{Points: ring}.Dedupe()
		if poly.Len() < 3 {
			m.warnf("island %d has %d distinct points, skipping", i, poly.Len())
			continue
		}
		if hits := poly.SelfIntersections(); len(hits) > 0 {
			err := errors.Wrapf(ErrSelfIntersecting, "island %d, edges %d and %d", i, hits[0][0], hits[0][1])
			if m.opts.StrictRings {
				return nil, err
			}
			m.warn(err)
		}
		lo, hi := poly.Bounds()
		span := math.Max(hi.X-lo.X, hi.Y-lo.Y)
		if math.Abs(poly.SignedArea()) <= geom.Epsilon*span*span {
			m.warnf("island %d has no area, skipping", i)
			continue
		}

		islandOpts := triangulate.Options{
			Bound:  m.opts.WorldBound,
			Probe:  m.opts.InteriorProbe,
			Logger: m.logger.With(slog.Int("island", i)),
		}
		if m.opts.DebugDir != "" {
			islandOpts.DebugPath = filepath.Join(m.opts.DebugDir, fmt.Sprintf("island-%03d.png", i))
		}
		result, err := triangulate.Island(poly.Points, islandOpts)
		if err != nil {
			m.warn(errors.Wrapf(err, "island %d skipped", i))
			continue
		}
		for _, warning := range result.Warnings {
			m.warn(errors.Wrapf(warning, "island %d", i))
		}
		m.islands = append(m.islands, result.Triangles)
	}
	m.finish()
	return m, nil
}

// Build a map from islands that are already triangulated. Each island is a
// flat list of triangles, three points per triangle, wound either way.
func FromTriangles(islands [][]geom.Point, opts ...Option) (*Map, error) {
	m := newMap(opts)
	for i, points := range islands {
		if len(points) == 0 {
			return nil, errors.Wrapf(ErrEmptyIsland, "island %d", i)
		}
		if len(points)%3 != 0 {
			return nil, errors.Wrapf(ErrNotTriangles, "island %d has %d points", i, len(points))
		}

		var triangles []geom.Triangle
		for j := 0; j < len(points); j += 3 {
			triangle := geom.Triangle{A: points[j], B: points[j+1], C: points[j+2]}
			if math.Abs(triangle.SignedArea()) <= geom.Epsilon {
				m.warnf("island %d triangle %d is degenerate, skipping", i, j/3)
				continue
			}
			triangles = append(triangles, triangle.CCW())
		}
		m.islands = append(m.islands, triangles)
	}
	m.finish()
	return m, nil
}

func newMap(opts []Option) *Map {
	o := newOptions(opts)
	return &Map{opts: o, logger: o.Logger}
}

func (m *Map) warn(err error) {
	m.logger.Warn("degraded map", slog.Any("error", err))
	m.warnings = append(m.warnings, err)
}

func (m *Map) warnf(format string, args ...interface{}) {
	m.warn(errors.Errorf(format, args...))
}

// Derive the outline graph and the spatial indexes from the triangles.
func (m *Map) finish() {
	for _, island := range m.islands {
		m.edges = append(m.edges, outerEdges(island)...)
		m.triangles = append(m.triangles, island...)
	}
	m.corners, m.cornerEdges = cornersAndEdges(m.edges)
	m.inflated = inflateCorners(m.corners, m.cornerEdges, m.opts.CornerClearance)
	m.buildIndexes()
	m.sailable = m.sailableCornerEdges()

	m.logger.Info("built map",
		slog.Int("islands", len(m.islands)),
		slog.Int("triangles", len(m.triangles)),
		slog.Int("edges", len(m.edges)),
		slog.Int("corners", len(m.corners)),
		slog.Int("dropped_corner_edges", len(m.cornerEdges)-len(m.sailable)),
		slog.Int("warnings", len(m.warnings)))
}

// Triangles of each island, counterclockwise.
func (m *Map) Triangles() [][]geom.Triangle {
	result := make([][]geom.Triangle, len(m.islands))
	for i, island := range m.islands {
		result[i] = append([]geom.Triangle(nil), island...)
	}
	return result
}

// Edges on the outline of the islands.
func (m *Map) BoundaryEdges() []geom.Segment {
	return append([]geom.Segment(nil), m.edges...)
}

// Island corners, deduplicated, in the order their edges were found.
func (m *Map) Corners() []geom.Point {
	return append([]geom.Point(nil), m.corners...)
}

// Corners after being pushed clear of the islands. These are the first nodes
// of every graph the map hands out.
func (m *Map) InflatedCorners() []geom.Point {
	return append([]geom.Point(nil), m.inflated...)
}

// Problems found while building the map.
func (m *Map) Warnings() []error {
	return append([]error(nil), m.warnings...)
}
