package triangulate

import (
	"sort"

	"github.com/osuushi/navmesh/geom"
)

// Trapezoids that lie inside the ring, by the even-odd rule. A ray is cast from
// a probe point strictly inside each trapezoid.
//
// Vertically adjacent inside trapezoids with the same left and right sides are
// merged. Horizontal splits made before a later segment cut them short leave
// behind boundaries with no vertex on them, and a trapezoid bounded by one of
// those cannot name the vertices it needs for a diagonal.
func (m *TrapezoidMap) InsideTrapezoids(ring geom.Polygon) []*Trapezoid {
	var inside []*Trapezoid
	for _, t := range m.Trapezoids() {
		if t.Left.IsSentinel() || t.Right.IsSentinel() {
			continue
		}
		if ring.ContainsPointByEvenOdd(t.Probe()) {
			inside = append(inside, t)
		}
	}
	return mergeColumns(inside)
}

type sides struct {
	left, right *Segment
}

func mergeColumns(trapezoids []*Trapezoid) []*Trapezoid {
	var order []sides
	columns := map[sides][]*Trapezoid{}
	for _, t := range trapezoids {
		key := sides{t.Left, t.Right}
		if _, ok := columns[key]; !ok {
			order = append(order, key)
		}
		columns[key] = append(columns[key], t)
	}

	var result []*Trapezoid
	for _, key := range order {
		column := columns[key]
		// Top to bottom
		sort.Slice(column, func(i, j int) bool { return column[i].TopY > column[j].TopY })

		current := *column[0]
		for _, t := range column[1:] {
			// Stacked pieces share the same copied height exactly
			if t.TopY == current.BottomY {
				current.BottomY = t.BottomY
				current.Bottom = t.Bottom
				continue
			}
			merged := current
			result = append(result, &merged)
			current = *t
		}
		result = append(result, &current)
	}
	return result
}
