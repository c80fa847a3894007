// Package graph holds the navigation graph handed out per path request, and
// the shortest path search over it.
package graph

import (
	"github.com/osuushi/navmesh/geom"
	"github.com/pkg/errors"
)

var (
	ErrNoPath         = errors.New("no path between nodes")
	ErrNodeOutOfRange = errors.New("node index out of range")
)

// An undirected edge between two node indices.
type Edge struct {
	A, B int
}

// A navigation graph. The first Corners nodes are the inflated island
// corners; any nodes after them were injected for a single request.
type Graph struct {
	Nodes   []geom.Point
	Edges   []Edge
	Corners int
}

func (g *Graph) HasEdge(a, b int) bool {
	for _, e := range g.Edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return true
		}
	}
	return false
}

// Number of edges touching node i.
func (g *Graph) Degree(i int) int {
	degree := 0
	for _, e := range g.Edges {
		if e.A == i || e.B == i {
			degree++
		}
	}
	return degree
}

func (g *Graph) adjacency() [][]int {
	neighbors := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		if e.A == e.B {
			continue
		}
		neighbors[e.A] = append(neighbors[e.A], e.B)
		neighbors[e.B] = append(neighbors[e.B], e.A)
	}
	return neighbors
}

func (g *Graph) checkIndex(i int) error {
	if i < 0 || i >= len(g.Nodes) {
		return errors.Wrapf(ErrNodeOutOfRange, "node %d of %d", i, len(g.Nodes))
	}
	return nil
}
