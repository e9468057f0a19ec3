package rowan

// Read-only walks over the parent-link tree. These back the lazy cache
// recomputation in cache.go.

// closestAncestorWithFlags walks parent links starting at n itself and
// returns the first node whose HasAll(flags) == desired, or nil if the walk
// passes the root without a match.
func closestAncestorWithFlags(n *Node, flags Flags, desired bool) *Node {
	for p := n; p != nil; p = p.Parent {
		if p.flags.HasAll(flags) == desired {
			return p
		}
	}
	return nil
}

// furthestAncestorWithFlags is the same walk but returns the outermost
// (closest-to-root) match rather than the innermost.
func furthestAncestorWithFlags(n *Node, flags Flags, desired bool) *Node {
	var found *Node
	for p := n; p != nil; p = p.Parent {
		if p.flags.HasAll(flags) == desired {
			found = p
		}
	}
	return found
}

// isAncestor reports whether candidate is an ancestor of n (inclusive of n).
func isAncestor(candidate, n *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// pathBuf is the reusable buffer ancestorPath returns a view of. Safe as
// package state because recomputation is synchronous and non-reentrant;
// like nodeIDCounter, it assumes rowan's single-threaded model.
var pathBuf []*Node

// ancestorPath returns the nodes from n up to but excluding stop, in
// child-to-ancestor order. A nil stop extends the path through the root.
// The returned slice aliases a shared buffer valid until the next call.
//
// Panics if stop is non-nil and not an ancestor of n: that means an
// ancestor invariant is broken elsewhere, not a recoverable condition.
func ancestorPath(n *Node, stop *Node) []*Node {
	pathBuf = pathBuf[:0]
	for p := n; p != stop; p = p.Parent {
		if p == nil {
			panic("rowan: path stop node is not an ancestor")
		}
		pathBuf = append(pathBuf, p)
	}
	return pathBuf
}
