package navmesh

import (
	"log/slog"

	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/graph"
	"github.com/pkg/errors"
)

// A fresh graph of the inflated corners and the outline edges between them
// that stay at sea, with points
// appended after them. Each point is joined to every corner and every earlier
// point it can see, meaning the straight segment between them touches no
// island edge.
func (m *Map) NodesAndEdgesConnected(points []geom.Point) *graph.Graph {
	g := &graph.Graph{
		Nodes:   make([]geom.Point, 0, len(m.inflated)+len(points)),
		Edges:   append([]graph.Edge(nil), m.sailable...),
		Corners: len(m.inflated),
	}
	g.Nodes = append(g.Nodes, m.inflated...)
	g.Nodes = append(g.Nodes, points...)

	for i := g.Corners; i < len(g.Nodes); i++ {
		p := g.Nodes[i]
		for j := 0; j < i; j++ {
			if m.canSee(p, g.Nodes[j]) {
				g.Edges = append(g.Edges, graph.Edge{A: i, B: j})
			}
		}
	}
	return g
}

func (m *Map) canSee(p, q geom.Point) bool {
	_, blocked := m.ClosestPointOfLineOnEdge(p, q.Sub(p), true)
	return !blocked
}

// Shortest route by sea from one point to another. The route starts with from,
// ends with to, and in between visits inflated corners.
func (m *Map) FindPath(from, to geom.Point) ([]geom.Point, error) {
	g := m.NodesAndEdgesConnected([]geom.Point{from, to})
	path, err := g.AStar(g.Corners, g.Corners+1)
	if err != nil {
		return nil, errors.Wrapf(err, "from %v to %v", from, to)
	}
	m.logger.Debug("found path",
		slog.Any("from", from),
		slog.Any("to", to),
		slog.Int("waypoints", len(path)))
	return path, nil
}
