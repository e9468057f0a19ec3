package rowan

// The three derived property caches. Each pairs a cached value with a dirty
// flag and a propagation direction: matrix and tint flow downward (a parent
// change invalidates descendants), bounds flow upward (a child change
// invalidates ancestors). Reads are O(1) when clean and O(depth of the
// previously-invalid suffix) when stale — never O(tree size).

// ConcatenatedMatrix returns the combined transform from root space to this
// node's local space: the product of all ancestor local matrices and its
// own, evaluated root-to-node.
//
// When stale, the closest ancestor with a valid cache anchors the
// recomputation; the path from that ancestor down to this node is
// recomputed top-down, caching and clearing flags along the way. No node
// off that path is touched.
func (n *Node) ConcatenatedMatrix() Matrix {
	if !n.flags.HasAny(FlagInvalidMatrix) {
		return n.concatMatrix
	}
	anchor := closestAncestorWithFlags(n, FlagInvalidMatrix, false)
	world := identityMatrix
	if anchor != nil {
		world = anchor.concatMatrix
	}
	path := ancestorPath(n, anchor)
	for i := len(path) - 1; i >= 0; i-- {
		p := path[i]
		world = world.Mul(p.local)
		p.concatMatrix = world
		p.flags.Clear(FlagInvalidMatrix)
		p.recomputes++
	}
	return n.concatMatrix
}

// ConcatenatedTint returns the combined color transform from root space to
// this node, concatenated down the tree like the geometric transform.
// Same recomputation strategy as ConcatenatedMatrix.
func (n *Node) ConcatenatedTint() ColorTransform {
	if !n.flags.HasAny(FlagInvalidTint) {
		return n.concatTint
	}
	anchor := closestAncestorWithFlags(n, FlagInvalidTint, false)
	tint := identityTint
	if anchor != nil {
		tint = anchor.concatTint
	}
	path := ancestorPath(n, anchor)
	for i := len(path) - 1; i >= 0; i-- {
		p := path[i]
		tint = tint.Mul(p.tint)
		p.concatTint = tint
		p.flags.Clear(FlagInvalidTint)
		p.recomputes++
	}
	return n.concatTint
}

// Bounds returns the node's content bounding rectangle in its own local
// space, excluding stroke contribution: the union of its own drawable
// content and each child's bounds mapped through that child's local matrix.
// A node with no content and no children has empty bounds.
func (n *Node) Bounds() Rect {
	if n.flags.HasAny(FlagInvalidBounds) {
		n.recomputeBounds()
	}
	return n.fillBounds
}

// StrokeBounds is Bounds including each drawable's stroke contribution.
func (n *Node) StrokeBounds() Rect {
	if n.flags.HasAny(FlagInvalidBounds) {
		n.recomputeBounds()
	}
	return n.strokeBounds
}

// recomputeBounds rebuilds both bounds variants. Bounds depend downward on
// children (they propagate invalidity upward), so the recomputation recurses
// into each child's own cache — valid children return in O(1), stale ones
// recompute exactly their stale region.
func (n *Node) recomputeBounds() {
	var fill, stroke Rect
	if n.content != nil {
		fill = n.content.ContentBounds(false)
		stroke = n.content.ContentBounds(true)
	}
	for _, child := range n.children {
		if child.flags.HasAny(FlagInvalidBounds) {
			child.recomputeBounds()
		}
		fill = fill.Union(child.local.MapRect(child.fillBounds))
		stroke = stroke.Union(child.local.MapRect(child.strokeBounds))
	}
	n.fillBounds = fill
	n.strokeBounds = stroke
	n.flags.Clear(FlagInvalidBounds)
	n.recomputes++
}
