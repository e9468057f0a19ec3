package rowan

// direction selects which way propagate walks the tree. The two bits can be
// combined for flags that must reach both ancestors and descendants.
type direction uint8

const (
	dirUp   direction = 1 << iota // toward the root, via parent links
	dirDown                       // across all descendants
)

// propagate sets flag on n and on the relevant part of the tree.
//
// If n already carries the flag the call returns immediately. This is the
// key performance invariant: once a node is flagged, all of its descendants
// (for downward flags) or ancestors (for upward flags) are flagged too, so
// re-walking from an already-flagged node can never change anything. Total
// propagation work across independent mutations is bounded by the size of
// the previously-valid region, not the tree size.
func propagate(n *Node, flag Flags, dir direction) {
	if n.flags.HasAll(flag) {
		return
	}
	n.flags.Set(flag)

	if dir&dirUp != 0 {
		// Every ancestor must be walked; the initial check above already
		// pruned the only case where the whole chain is flagged.
		for p := n.Parent; p != nil; p = p.Parent {
			p.flags.Set(flag)
		}
	}
	if dir&dirDown != 0 {
		propagateDown(n, flag)
	}
}

// propagateDown recurses into children lacking the flag. It never re-walks
// upward: a parent mutation already flagged the chain above.
func propagateDown(n *Node, flag Flags) {
	for _, child := range n.children {
		if child.flags.HasAll(flag) {
			continue
		}
		child.flags.Set(flag)
		propagateDown(child, flag)
	}
}
