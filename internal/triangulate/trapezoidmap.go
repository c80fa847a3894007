package triangulate

import (
	"log/slog"
	"math"
	"sort"

	"github.com/osuushi/navmesh/geom"
)

var inf = math.Inf(1)

// A trapezoid map over one island, in the style of Seidel 1991. Trapezoids live
// in an arena keyed by id. Ids are handed out in increasing order and never
// reused, and each live trapezoid has exactly one sink in the query tree.
type TrapezoidMap struct {
	Root *QueryNode

	points     []geom.Point
	trapezoids map[int]*Trapezoid
	sinks      map[int]*QueryNode
	introduced map[int]bool
	nextID     int
	logger     *slog.Logger
}

// Create a map holding a single trapezoid that covers every height between
// sentinel sides at -bound and +bound.
func NewTrapezoidMap(points []geom.Point, bound float64, logger *slog.Logger) *TrapezoidMap {
	m := &TrapezoidMap{
		points:     points,
		trapezoids: map[int]*Trapezoid{},
		sinks:      map[int]*QueryNode{},
		introduced: map[int]bool{},
		logger:     logger,
	}
	m.Root = m.add(&Trapezoid{
		Left:    newSentinel(-bound),
		Right:   newSentinel(bound),
		TopY:    inf,
		BottomY: -inf,
		Top:     noVertex,
		Bottom:  noVertex,
	})
	return m
}

// Build the map for a whole ring, inserting segments in ring order.
func (m *TrapezoidMap) AddRing() {
	n := len(m.points)
	for i := 0; i < n; i++ {
		m.AddSegment(i, geom.CircularIndex(i+1, n))
	}
}

func (m *TrapezoidMap) add(t *Trapezoid) *QueryNode {
	t.ID = m.nextID
	m.nextID++
	sink := &QueryNode{SinkNode{TrapezoidID: t.ID}}
	m.trapezoids[t.ID] = t
	m.sinks[t.ID] = sink
	return sink
}

// Swap a trapezoid's sink for an inner node, retiring the trapezoid.
func (m *TrapezoidMap) replace(t *Trapezoid, inner queryNodeInner) {
	sink, ok := m.sinks[t.ID]
	if !ok {
		fatalf("trapezoid %d has no sink", t.ID)
	}
	sink.Inner = inner
	delete(m.sinks, t.ID)
	delete(m.trapezoids, t.ID)
}

// Live trapezoids in id order.
func (m *TrapezoidMap) Trapezoids() []*Trapezoid {
	result := make([]*Trapezoid, 0, len(m.trapezoids))
	for _, t := range m.trapezoids {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *TrapezoidMap) Locate(p geom.Point) *Trapezoid {
	sink := m.Root.Locate(p)
	id := sink.Inner.(SinkNode).TrapezoidID
	t, ok := m.trapezoids[id]
	if !ok {
		fatalf("sink points at retired trapezoid %d", id)
	}
	return t
}

// Insert the segment between ring vertices i and j.
func (m *TrapezoidMap) AddSegment(i, j int) {
	segment := newSegment(m.points, i, j)
	m.introduce(segment.TopVertex)
	m.introduce(segment.BottomVertex)

	var crossed []*Trapezoid
	for _, t := range m.Trapezoids() {
		if t.TopY > segment.Top.Y || t.BottomY < segment.Bottom.Y {
			continue
		}
		y := t.MidY()
		x := segment.XAt(y)
		if x > t.Left.XAt(y) && x < t.Right.XAt(y) {
			crossed = append(crossed, t)
		}
	}
	if len(crossed) == 0 {
		fatalf("segment %s crosses no trapezoid", segment)
	}

	for _, t := range crossed {
		m.splitBySegment(t, segment)
	}
	m.logger.Debug("added segment",
		slog.String("segment", segment.String()),
		slog.Int("crossed", len(crossed)),
		slog.Int("trapezoids", len(m.trapezoids)))
}

// Split the trapezoid containing vertex v at v's height, unless an earlier
// segment already did.
func (m *TrapezoidMap) introduce(v int) {
	if m.introduced[v] {
		return
	}
	m.introduced[v] = true

	p := m.points[v]
	t := m.Locate(p)
	if p.Y >= t.TopY || p.Y <= t.BottomY {
		fatalf("vertex %d at height %g is on the edge of %s", v, p.Y, t)
	}

	above := &Trapezoid{
		Left: t.Left, Right: t.Right,
		TopY: t.TopY, Top: t.Top,
		BottomY: p.Y, Bottom: v,
	}
	below := &Trapezoid{
		Left: t.Left, Right: t.Right,
		TopY: p.Y, Top: v,
		BottomY: t.BottomY, Bottom: t.Bottom,
	}
	m.replace(t, YNode{Key: p.Y, Above: m.add(above), Below: m.add(below)})
}

func (m *TrapezoidMap) splitBySegment(t *Trapezoid, segment *Segment) {
	left := *t
	right := *t
	left.Right = segment
	right.Left = segment
	m.replace(t, XNode{Key: segment, Left: m.add(&left), Right: m.add(&right)})
}
