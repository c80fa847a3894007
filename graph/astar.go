package graph

import (
	"container/heap"

	"github.com/osuushi/navmesh/geom"
	"github.com/pkg/errors"
)

type frontierItem struct {
	node     int
	priority float64
	// Insertion order, so that equal priorities pop first in, first out.
	seq int
}

type frontier []frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}

// Shortest path from node start to node end, with Euclidean edge costs and a
// straight line heuristic. The path includes both the start and end points, so
// a path from a node to itself is just that node.
//
// If end can't be reached, ErrNoPath is returned.
func (g *Graph) AStar(start, end int) ([]geom.Point, error) {
	if err := g.checkIndex(start); err != nil {
		return nil, err
	}
	if err := g.checkIndex(end); err != nil {
		return nil, err
	}

	neighbors := g.adjacency()
	goal := g.Nodes[end]
	costSoFar := map[int]float64{start: 0}
	cameFrom := map[int]int{}
	seq := 0
	open := &frontier{{node: start, priority: 0}}

	found := false
	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem).node
		if current == end {
			found = true
			break
		}
		for _, next := range neighbors[current] {
			newCost := costSoFar[current] + g.Nodes[current].Dist(g.Nodes[next])
			if cost, ok := costSoFar[next]; ok && newCost >= cost {
				continue
			}
			costSoFar[next] = newCost
			cameFrom[next] = current
			seq++
			heap.Push(open, frontierItem{
				node:     next,
				priority: newCost + g.Nodes[next].Dist(goal),
				seq:      seq,
			})
		}
	}
	if !found {
		return nil, errors.Wrapf(ErrNoPath, "from node %d to node %d", start, end)
	}

	var reversed []geom.Point
	for current := end; current != start; current = cameFrom[current] {
		reversed = append(reversed, g.Nodes[current])
	}
	reversed = append(reversed, g.Nodes[start])

	path := make([]geom.Point, len(reversed))
	for i, p := range reversed {
		path[len(path)-1-i] = p
	}
	return path, nil
}
