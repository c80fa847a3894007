package navmesh

import (
	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/graph"
)

// Same edge regardless of direction.
type edgeKey [2]geom.Point

func newEdgeKey(a, b geom.Point) edgeKey {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Edges that belong to exactly one triangle of the island. Interior edges are
// shared by two. Edges keep the direction of their triangle, so islands are on
// their left, and come out in the order they were first seen.
func outerEdges(triangles []geom.Triangle) []geom.Segment {
	counts := map[edgeKey]int{}
	var order []geom.Segment
	for _, triangle := range triangles {
		for _, edge := range triangle.Edges() {
			key := newEdgeKey(edge.Start, edge.End())
			if counts[key] == 0 {
				order = append(order, edge)
			}
			counts[key]++
		}
	}

	var outer []geom.Segment
	for _, edge := range order {
		if counts[newEdgeKey(edge.Start, edge.End())] == 1 {
			outer = append(outer, edge)
		}
	}
	return outer
}

// Unique edge endpoints, and each edge as a pair of indices into them.
func cornersAndEdges(edges []geom.Segment) ([]geom.Point, []graph.Edge) {
	index := map[geom.Point]int{}
	var corners []geom.Point
	cornerIndex := func(p geom.Point) int {
		if i, ok := index[p]; ok {
			return i
		}
		index[p] = len(corners)
		corners = append(corners, p)
		return index[p]
	}

	graphEdges := make([]graph.Edge, len(edges))
	for i, edge := range edges {
		graphEdges[i] = graph.Edge{A: cornerIndex(edge.Start), B: cornerIndex(edge.End())}
	}
	return corners, graphEdges
}

// Push every corner away from its neighbors along the outline. Each neighbor
// contributes a step of the clearance distance, so a convex corner moves out
// into open water along the bisector of its edges. At a reflex corner the same
// sum points into the island, so it is turned around.
func inflateCorners(corners []geom.Point, edges []graph.Edge, clearance float64) []geom.Point {
	push := make([]geom.Vector, len(corners))
	// The neighbor before and after each corner, walking with land on the left.
	// Corners shared by two outlines have more than one of each.
	prev, next := make([][]int, len(corners)), make([][]int, len(corners))
	for _, e := range edges {
		a, b := corners[e.A], corners[e.B]
		push[e.A] = push[e.A].Add(a.Sub(b).Normalize())
		push[e.B] = push[e.B].Add(b.Sub(a).Normalize())
		next[e.A] = append(next[e.A], e.B)
		prev[e.B] = append(prev[e.B], e.A)
	}

	inflated := make([]geom.Point, len(corners))
	for i, corner := range corners {
		if len(prev[i]) == 1 && len(next[i]) == 1 &&
			geom.Orientation(corners[prev[i][0]], corner, corners[next[i][0]]) < 0 {
			push[i] = push[i].Scale(-1)
		}
		inflated[i] = corner.Add(push[i].Scale(clearance))
	}
	return inflated
}

// Outline edges between inflated corners that a ship can sail along. Very
// thin or crowded coastlines can leave an inflated corner on land, or put land
// between two neighbors, and those edges are left out.
func (m *Map) sailableCornerEdges() []graph.Edge {
	var sailable []graph.Edge
	for _, e := range m.cornerEdges {
		a, b := m.inflated[e.A], m.inflated[e.B]
		if m.OnLand(a) || m.OnLand(b) || !m.canSee(a, b) {
			continue
		}
		sailable = append(sailable, e)
	}
	return sailable
}
