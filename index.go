package navmesh

import (
	"math"

	"github.com/osuushi/navmesh/geom"
	"github.com/peterstace/simplefeatures/rtree"
)

func boxOf(points ...geom.Point) rtree.Box {
	box := rtree.Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range points {
		box.MinX, box.MinY = math.Min(box.MinX, p.X), math.Min(box.MinY, p.Y)
		box.MaxX, box.MaxY = math.Max(box.MaxX, p.X), math.Max(box.MaxY, p.Y)
	}
	return box
}

// Grow the box by d on every side.
func pad(box rtree.Box, d float64) rtree.Box {
	return rtree.Box{MinX: box.MinX - d, MinY: box.MinY - d, MaxX: box.MaxX + d, MaxY: box.MaxY + d}
}

// Distance from p to the nearest point of the box. Zero inside it.
func boxDistance(p geom.Point, box rtree.Box) float64 {
	dx := math.Max(0, math.Max(box.MinX-p.X, p.X-box.MaxX))
	dy := math.Max(0, math.Max(box.MinY-p.Y, p.Y-box.MaxY))
	return math.Hypot(dx, dy)
}

// Maps never change once built, so both trees are bulk loaded in one go.
func (m *Map) buildIndexes() {
	m.edgeBoxes = make([]rtree.Box, len(m.edges))
	edgeItems := make([]rtree.BulkItem, len(m.edges))
	for i, edge := range m.edges {
		m.edgeBoxes[i] = boxOf(edge.Start, edge.End())
		edgeItems[i] = rtree.BulkItem{Box: m.edgeBoxes[i], RecordID: i}
	}
	m.edgeIndex = rtree.BulkLoad(edgeItems)

	triangleItems := make([]rtree.BulkItem, len(m.triangles))
	for i, triangle := range m.triangles {
		triangleItems[i] = rtree.BulkItem{Box: boxOf(triangle.A, triangle.B, triangle.C), RecordID: i}
	}
	m.triangleIndex = rtree.BulkLoad(triangleItems)
}
