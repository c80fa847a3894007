package triangulate

import "github.com/osuushi/navmesh/geom"

// Split the ring into sub-polygons along the diagonals. Pieces are lists of
// ring indices in ring order. A diagonal is applied to the piece that holds
// both of its endpoints (not as neighbors) and contains its midpoint. Any
// diagonal that fits no piece is returned as unused.
func (f frame) splitMonotones(diagonals []Diagonal) (pieces [][]int, unused []Diagonal) {
	whole := make([]int, len(f.points))
	for i := range whole {
		whole[i] = i
	}
	pieces = [][]int{whole}

	for _, d := range diagonals {
		mid := geom.NewSegment(f.points[d[0]], f.points[d[1]]).Midpoint()
		applied := false
		for pi, piece := range pieces {
			i, j := indexOf(piece, d[0]), indexOf(piece, d[1])
			if i < 0 || j < 0 {
				continue
			}
			if geom.CircularIndex(i-j, len(piece)) == 1 || geom.CircularIndex(j-i, len(piece)) == 1 {
				continue
			}
			if !f.ringOf(piece).ContainsPointByEvenOdd(mid) {
				continue
			}
			pieces[pi] = walkRing(piece, i, j)
			pieces = append(pieces, walkRing(piece, j, i))
			applied = true
			break
		}
		if !applied {
			unused = append(unused, d)
		}
	}
	return pieces, unused
}

func indexOf(piece []int, v int) int {
	for i, w := range piece {
		if w == v {
			return i
		}
	}
	return -1
}

// The ring from position from to position to, inclusive, walking forward.
func walkRing(piece []int, from, to int) []int {
	var result []int
	for i := from; ; i = geom.CircularIndex(i+1, len(piece)) {
		result = append(result, piece[i])
		if i == to {
			return result
		}
	}
}
