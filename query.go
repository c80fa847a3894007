package navmesh

import (
	"math"

	"github.com/osuushi/navmesh/geom"
	"github.com/peterstace/simplefeatures/rtree"
)

// A corner to steer for. Waypoint is where a ship should aim: the corner
// pushed clear of the island.
type Corner struct {
	Waypoint geom.Point
	Corner   geom.Point
}

// Is p on any island? Points on an island's edge count as land.
func (m *Map) OnLand(p geom.Point) bool {
	found := false
	_ = m.triangleIndex.RangeSearch(pad(boxOf(p), geom.Tolerance), func(id int) error {
		if m.triangles[id].Contains(p) {
			found = true
			return rtree.Stop
		}
		return nil
	})
	return found
}

// The point on the nearest island edge, stepped off it into open water by
// EdgeClearance. With no islands at all, p itself is returned.
func (m *Map) ClosestPointOnEdge(p geom.Point) geom.Point {
	best, bestDistance := -1, math.Inf(1)
	var bestPoint geom.Point
	_ = m.edgeIndex.PrioritySearch(boxOf(p), func(id int) error {
		// Boxes come in order of distance, and no edge is nearer than its box
		if boxDistance(p, m.edgeBoxes[id]) > bestDistance {
			return rtree.Stop
		}
		closest := m.edges[id].ClosestPoint(p)
		distance := closest.Dist(p)
		if distance < bestDistance || (distance == bestDistance && id < best) {
			best, bestDistance, bestPoint = id, distance, closest
		}
		return nil
	})
	if best < 0 {
		return p
	}

	// Islands lie to the left of their edges, so the right hand normal points
	// out to sea. Thin spits of land can put it back on land anyway.
	dir := m.edges[best].Dir
	normal := geom.Vector{X: dir.Y, Y: -dir.X}.Normalize().Scale(m.opts.EdgeClearance)
	candidate := bestPoint.Add(normal)
	if m.OnLand(candidate) {
		candidate = bestPoint.Sub(normal)
	}
	return candidate
}

// Where the line from start along dir first meets an island edge, measured by
// distance from start. A strict query only considers the segment from start
// to start+dir. Otherwise the whole line through both is used, in both
// directions.
func (m *Map) ClosestPointOfLineOnEdge(start geom.Point, dir geom.Vector, strict bool) (geom.Point, bool) {
	best, bestDistance := -1, math.Inf(1)
	var bestPoint geom.Point
	try := func(id int) error {
		edge := m.edges[id]
		hit, ok := geom.Intersect(start, dir, edge.Start, edge.Dir, strict)
		if !ok {
			return nil
		}
		distance := hit.Dist(start)
		if distance < bestDistance || (distance == bestDistance && id < best) {
			best, bestDistance, bestPoint = id, distance, hit
		}
		return nil
	}

	if strict {
		_ = m.edgeIndex.RangeSearch(pad(boxOf(start, start.Add(dir)), geom.Tolerance), try)
	} else {
		for id := range m.edges {
			_ = try(id)
		}
	}
	return bestPoint, best >= 0
}

// Find a corner to steer for when the line from start along dir is blocked.
// The line is followed to the first coast it meets, and the corner nearest
// that point wins, skipping any corner in visited. Repeated calls with a
// growing visited set walk a ship around the island.
func (m *Map) ClosestCornerToLine(start geom.Point, dir geom.Vector, visited geom.PointSet) (Corner, bool) {
	hit, ok := m.ClosestPointOfLineOnEdge(start, dir, false)
	if !ok {
		return Corner{}, false
	}

	best, bestDistance := -1, math.Inf(1)
	consider := func(corner int) {
		p := m.corners[corner]
		if visited.Has(p) {
			return
		}
		if distance := p.Dist(hit); distance < bestDistance || (distance == bestDistance && corner < best) {
			best, bestDistance = corner, distance
		}
	}
	// Every corner is the end of some edge, and no corner is nearer than the box
	// of its edges.
	_ = m.edgeIndex.PrioritySearch(boxOf(hit), func(id int) error {
		if boxDistance(hit, m.edgeBoxes[id]) > bestDistance {
			return rtree.Stop
		}
		consider(m.cornerEdges[id].A)
		consider(m.cornerEdges[id].B)
		return nil
	})
	if best < 0 {
		return Corner{}, false
	}
	return Corner{Waypoint: m.inflated[best], Corner: m.corners[best]}, true
}
