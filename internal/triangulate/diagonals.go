package triangulate

import "log/slog"

// A diagonal between two ring vertices, smaller index first.
type Diagonal [2]int

func newDiagonal(u, w int) Diagonal {
	if u > w {
		u, w = w, u
	}
	return Diagonal{u, w}
}

// Each inside trapezoid touches exactly two ring vertices: the ones defining
// its top and bottom. Unless both are ends of the same side, connecting them
// cuts off a cusp, and cutting every cusp leaves monotone pieces.
func (m *TrapezoidMap) Diagonals(inside []*Trapezoid) []Diagonal {
	seen := map[Diagonal]bool{}
	var diagonals []Diagonal
	for _, t := range inside {
		u, w := t.Top, t.Bottom
		if u == noVertex || w == noVertex {
			continue
		}
		if !t.OnBoundary(m.points[u]) || !t.OnBoundary(m.points[w]) {
			m.logger.Debug("trapezoid vertex off boundary", slog.Any("trapezoid", t))
			continue
		}
		if t.Left.HasEndpoints(u, w) || t.Right.HasEndpoints(u, w) {
			continue
		}

		d := newDiagonal(u, w)
		if seen[d] {
			continue
		}
		seen[d] = true
		diagonals = append(diagonals, d)
	}
	return diagonals
}
