package geom

type Point struct {
	X float64
	Y float64
}

// Vectors and points share a representation. The distinction is only in how
// they are used: a Vector is the difference between two points.
type Vector = Point

// Segments are stored as a start and a direction, since that is the form every
// intersection routine wants. Use NewSegment to build one from two endpoints.
// The far endpoint is kept as given, because Start+Dir need not round back to
// it exactly.
type Segment struct {
	Start Point
	Dir   Vector
	end   Point
}

type Triangle struct {
	A, B, C Point
}

type PointSet map[Point]struct{}
