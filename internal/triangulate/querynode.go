package triangulate

import "github.com/osuushi/navmesh/geom"

// Node for the point location structure. Every inner node narrows the plane
// down by height or by side of a segment, and every leaf names exactly one
// trapezoid. The leaves always partition the whole plane.
//
// Query nodes are polymorphic, and we need to be able to replace a leaf with
// a different node type in O(1) time when its trapezoid is split. Therefore,
// the node itself is a box around this interface.
type queryNodeInner interface {
	locate(geom.Point) *QueryNode
	ChildNodes() []*QueryNode

	// This is a dummy method that ensures that *QueryNode is not a
	// queryNodeInner, which prevents accidental double wrapping.
	queryNodeInnerTypeHint()
}

func (SinkNode) queryNodeInnerTypeHint() {}
func (YNode) queryNodeInnerTypeHint()    {}
func (XNode) queryNodeInnerTypeHint()    {}

type QueryNode struct {
	Inner queryNodeInner
}

// Find the sink whose trapezoid contains the point.
func (n *QueryNode) Locate(p geom.Point) *QueryNode {
	if _, ok := n.Inner.(SinkNode); ok {
		return n
	}
	return n.Inner.locate(p)
}

func (n *QueryNode) ChildNodes() []*QueryNode {
	return n.Inner.ChildNodes()
}

type SinkNode struct {
	TrapezoidID int
}

func (SinkNode) locate(geom.Point) *QueryNode {
	panic("Should not try to locate a point from a sink")
}

func (SinkNode) ChildNodes() []*QueryNode {
	return nil
}

// Splits the plane at a vertex height.
type YNode struct {
	Key          float64
	Above, Below *QueryNode
}

func (node YNode) locate(p geom.Point) *QueryNode {
	if p.Y >= node.Key {
		return node.Above.Locate(p)
	}
	return node.Below.Locate(p)
}

func (node YNode) ChildNodes() []*QueryNode {
	return []*QueryNode{node.Above, node.Below}
}

// Splits the plane by a segment. This is only meaningful within the
// segment's height range, which is guaranteed by the YNodes above it.
type XNode struct {
	Key         *Segment
	Left, Right *QueryNode
}

func (node XNode) locate(p geom.Point) *QueryNode {
	if node.Key.IsLeftOf(p) {
		return node.Right.Locate(p)
	}
	return node.Left.Locate(p)
}

func (node XNode) ChildNodes() []*QueryNode {
	return []*QueryNode{node.Left, node.Right}
}

// Every sink below the node, left to right and top to bottom.
func (n *QueryNode) Sinks() []*QueryNode {
	var sinks []*QueryNode
	stack := []*QueryNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := node.Inner.(SinkNode); ok {
			sinks = append(sinks, node)
			continue
		}
		children := node.ChildNodes()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return sinks
}
