package rowan

// nodeIDCounter is a plain counter (no atomic — rowan is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene tree element. A single flat struct is used
// for all roles to avoid interface dispatch on the hot path; the Role tag
// decides capabilities at construction time.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Role Role

	// Hierarchy. Parent is a non-owning back-reference; the children
	// slice is the only ownership edge in the tree.
	Parent   *Node
	children []*Node

	// Local state. The scalar shadows (rotation, scaleX, scaleY) keep
	// setters lossless; local is recomposed from them.
	local     Matrix
	rotation  float64
	scaleX    float64
	scaleY    float64
	tint      ColorTransform
	clipDepth int
	blend     BlendMode
	content   Content

	// Mask links. mask is the node masking this one; maskTarget is the
	// node this one masks. A mask node masks at most one target.
	mask       *Node
	maskTarget *Node

	// Cached derived state, each guarded by its flag in flags.
	concatMatrix Matrix
	concatTint   ColorTransform
	fillBounds   Rect
	strokeBounds Rect

	flags Flags

	scene *Scene

	// recomputes counts cache rebuilds on this node. Only the lazy read
	// paths increment it; tests use it to verify minimal recomputation.
	recomputes int
}

// --- Status accessors ---

// Visible reports the node's visibility bit. Invisible nodes still
// participate in bounds and transform computation.
func (n *Node) Visible() bool { return n.flags.HasAll(FlagVisible) }

// Destroyed reports whether the node has been permanently removed.
func (n *Node) Destroyed() bool { return n.flags.HasAll(FlagDestroyed) }

// TimelineOwned reports whether an external animation driver controls this
// node's lifecycle.
func (n *Node) TimelineOwned() bool { return n.flags.HasAll(FlagTimelineOwned) }

// TimelineAnimated reports whether timeline mutation is still permitted.
// Any user mutation clears this permanently.
func (n *Node) TimelineAnimated() bool { return n.flags.HasAll(FlagTimelineAnimated) }

// ClipDepth returns the node's clip depth.
func (n *Node) ClipDepth() int { return n.clipDepth }

// BlendMode returns the node's blend mode.
func (n *Node) BlendMode() BlendMode { return n.blend }

// Content returns the node's drawable content, or nil for containers.
func (n *Node) Content() Content { return n.content }

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, this node's role cannot contain children, or
// child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.addChildChecks(child)
	if child.Parent != nil {
		child.Parent.detachChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childAttached(child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	n.addChildChecks(child)
	if index < 0 || index > len(n.children) {
		panic("rowan: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.detachChild(child)
		// Reparenting from n itself shrank the slice; the append
		// position moved with it.
		if index > len(n.children) {
			index = len(n.children)
		}
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childAttached(child)
}

func (n *Node) addChildChecks(child *Node) {
	if child == nil {
		panic("rowan: cannot add nil child")
	}
	if !n.Role.CanContain() {
		panic("rowan: node role cannot contain children")
	}
	if globalDebug {
		debugCheckDestroyed(n, "AddChild (parent)")
		debugCheckDestroyed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("rowan: adding child would create a cycle")
	}
}

// childAttached runs the invalidation side effects of gaining a child: the
// moved subtree's concatenated matrix and tint now flow from a new ancestor
// chain, and this node's bounds gained a contributor.
func (n *Node) childAttached(child *Node) {
	propagate(child, FlagInvalidMatrix, dirDown)
	propagate(child, FlagInvalidTint, dirDown)
	propagate(n, FlagInvalidBounds, dirUp)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDestroyed(n, "RemoveChild (parent)")
		debugCheckDestroyed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("rowan: child's parent is not this node")
	}
	n.detachChild(child)
	child.Parent = nil
	n.childDetached(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDestroyed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("rowan: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	n.childDetached(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT destroyed.
func (n *Node) RemoveChildren() {
	if globalDebug {
		debugCheckDestroyed(n, "RemoveChildren")
	}
	for _, child := range n.children {
		child.Parent = nil
		propagate(child, FlagInvalidMatrix, dirDown)
		propagate(child, FlagInvalidTint, dirDown)
	}
	n.children = n.children[:0]
	propagate(n, FlagInvalidBounds, dirUp)
}

// childDetached runs the invalidation side effects of losing a child: the
// detached subtree is now root-relative, and this node's bounds lost a
// contributor.
func (n *Node) childDetached(child *Node) {
	propagate(child, FlagInvalidMatrix, dirDown)
	propagate(child, FlagInvalidTint, dirDown)
	propagate(n, FlagInvalidBounds, dirUp)
}

// Children returns the child list in paint order. The returned slice MUST
// NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings. Child order
// is paint order, so this is a visual restack; it does not affect any cache.
func (n *Node) SetChildIndex(child *Node, index int) {
	if globalDebug {
		debugCheckDestroyed(n, "SetChildIndex (parent)")
		debugCheckDestroyed(child, "SetChildIndex (child)")
	}
	if child.Parent != n {
		panic("rowan: child's parent is not this node")
	}
	if index < 0 || index >= len(n.children) {
		panic("rowan: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
}

// detachChild removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) detachChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// --- Mask assignment ---

// SetMask sets mask as this node's mask. At most one node may be masked by
// a given mask node: if mask already masks another target, that target is
// detached first. Assigning a node as its own mask is ignored, as is
// re-assigning the current mask; only an actual change counts as a user
// mutation and revokes timeline animation.
func (n *Node) SetMask(mask *Node) {
	if mask == n || mask == n.mask {
		return
	}
	n.revokeTimeline()
	if n.mask != nil {
		n.mask.maskTarget = nil
	}
	if mask != nil {
		if mask.maskTarget != nil {
			mask.maskTarget.mask = nil
		}
		mask.maskTarget = n
	}
	n.mask = mask
}

// ClearMask removes the mask from this node.
func (n *Node) ClearMask() {
	n.SetMask(nil)
}

// Mask returns the node masking this one, or nil.
func (n *Node) Mask() *Node {
	return n.mask
}

// MaskTarget returns the node this one masks, or nil.
func (n *Node) MaskTarget() *Node {
	return n.maskTarget
}

// --- Destruction ---

// Destroy removes this node from its parent, marks it destroyed, removes it
// from the scene registry, and recursively destroys all descendants.
// Idempotent.
func (n *Node) Destroy() {
	if n.flags.HasAll(FlagDestroyed) {
		return
	}
	n.RemoveFromParent()
	n.destroy()
}

func (n *Node) destroy() {
	n.flags.Set(FlagDestroyed)
	if n.scene != nil {
		delete(n.scene.nodes, n.ID)
	}
	if n.mask != nil {
		n.mask.maskTarget = nil
		n.mask = nil
	}
	if n.maskTarget != nil {
		n.maskTarget.mask = nil
		n.maskTarget = nil
	}
	for _, child := range n.children {
		child.Parent = nil
		child.destroy()
	}
	n.children = nil
	n.Parent = nil
	n.content = nil
}
