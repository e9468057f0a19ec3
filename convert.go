package rowan

// Coordinate conversion built on the concatenated-matrix cache. These force
// a lazy recomputation when stale but have no other cache side effects.

// ToGlobal converts a point in this node's local space to root space.
func (n *Node) ToGlobal(p Point) Point {
	x, y := n.ConcatenatedMatrix().Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

// ToLocal converts a point in root space to this node's local space.
// On a degenerate (zero-scale) node the inverse falls back to identity.
func (n *Node) ToLocal(p Point) Point {
	x, y := n.ConcatenatedMatrix().Invert().Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

// BoundsIn returns this node's content bounds expressed in target's
// coordinate space, axis-aligned in that space (re-derived from the
// transformed corners, not a rotated box). A nil target or the node itself
// means the node's own space. includeStroke selects the stroke-inclusive
// bounds variant.
func (n *Node) BoundsIn(target *Node, includeStroke bool) Rect {
	var b Rect
	if includeStroke {
		b = n.StrokeBounds()
	} else {
		b = n.Bounds()
	}
	if target == nil || target == n {
		return b
	}
	m := target.ConcatenatedMatrix().Invert().Mul(n.ConcatenatedMatrix())
	return m.MapRect(b)
}
