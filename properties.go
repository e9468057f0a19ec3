package rowan

import "fmt"

// Property setters are the only legal mutation entry points. Each one funnels
// into exactly one canonical invalidation function per derived property, so
// no mutation path can double-invalidate or skip a cache.

// invalidateMatrix marks the concatenated matrix stale on n and every
// descendant. The node's own local-space content is unaffected, but its
// placement inside the parent changed, so bounds invalidate upward starting
// at the parent.
func (n *Node) invalidateMatrix() {
	propagate(n, FlagInvalidMatrix, dirDown)
	if n.Parent != nil {
		propagate(n.Parent, FlagInvalidBounds, dirUp)
	}
}

// invalidateTint marks the concatenated tint stale on n and every
// descendant. Tint never affects geometry, so bounds stay valid.
func (n *Node) invalidateTint() {
	propagate(n, FlagInvalidTint, dirDown)
}

// invalidateBounds marks the cached bounds stale on n and every ancestor.
func (n *Node) invalidateBounds() {
	propagate(n, FlagInvalidBounds, dirUp)
}

// revokeTimeline permanently hands control of this node to user code. Once
// cleared, the timeline-animated flag is never set again for this node.
func (n *Node) revokeTimeline() {
	n.flags.Clear(FlagTimelineAnimated)
}

// --- Transform ---

// SetPosition sets the node's local translation.
// Invalidates the concatenated matrix downward and bounds upward from the
// parent.
func (n *Node) SetPosition(x, y float64) {
	n.revokeTimeline()
	n.setPosition(x, y)
}

func (n *Node) setPosition(x, y float64) {
	if n.local[4] == x && n.local[5] == y {
		return
	}
	n.local[4] = x
	n.local[5] = y
	n.invalidateMatrix()
}

// SetRotation sets the node's local rotation in radians.
// Same invalidation as SetPosition.
func (n *Node) SetRotation(r float64) {
	n.revokeTimeline()
	n.setRotation(r)
}

func (n *Node) setRotation(r float64) {
	if n.rotation == r {
		return
	}
	n.rotation = r
	n.local = composeMatrix(n.local[4], n.local[5], n.scaleX, n.scaleY, n.rotation)
	n.invalidateMatrix()
}

// SetScale sets the node's local scale factors.
// Same invalidation as SetPosition.
func (n *Node) SetScale(sx, sy float64) {
	n.revokeTimeline()
	n.setScale(sx, sy)
}

func (n *Node) setScale(sx, sy float64) {
	if n.scaleX == sx && n.scaleY == sy {
		return
	}
	n.scaleX = sx
	n.scaleY = sy
	n.local = composeMatrix(n.local[4], n.local[5], n.scaleX, n.scaleY, n.rotation)
	n.invalidateMatrix()
}

// SetMatrix replaces the node's local matrix wholesale. Position, rotation,
// and scale getters re-derive from the new matrix.
// Same invalidation as SetPosition.
func (n *Node) SetMatrix(m Matrix) {
	n.revokeTimeline()
	n.setMatrix(m)
}

func (n *Node) setMatrix(m Matrix) {
	if n.local == m {
		return
	}
	n.local = m
	_, _, n.scaleX, n.scaleY, n.rotation = m.decompose()
	n.invalidateMatrix()
}

// X returns the node's local X translation.
func (n *Node) X() float64 { return n.local[4] }

// Y returns the node's local Y translation.
func (n *Node) Y() float64 { return n.local[5] }

// Rotation returns the node's local rotation in radians.
func (n *Node) Rotation() float64 { return n.rotation }

// ScaleX returns the node's local horizontal scale.
func (n *Node) ScaleX() float64 { return n.scaleX }

// ScaleY returns the node's local vertical scale.
func (n *Node) ScaleY() float64 { return n.scaleY }

// LocalMatrix returns the node's local transform.
func (n *Node) LocalMatrix() Matrix { return n.local }

// --- Tint & alpha ---

// SetTint replaces the node's local color transform, alpha included.
// Invalidates the concatenated tint downward.
func (n *Node) SetTint(t ColorTransform) {
	n.revokeTimeline()
	n.setTint(t)
}

func (n *Node) setTint(t ColorTransform) {
	if n.tint == t {
		return
	}
	n.tint = t
	n.invalidateTint()
}

// SetAlpha sets the node's alpha, the AMul term of its tint.
// Invalidates the concatenated tint downward.
func (n *Node) SetAlpha(a float64) {
	n.revokeTimeline()
	n.setAlpha(a)
}

func (n *Node) setAlpha(a float64) {
	if n.tint.AMul == a {
		return
	}
	n.tint.AMul = a
	n.invalidateTint()
}

// Tint returns the node's local color transform.
func (n *Node) Tint() ColorTransform { return n.tint }

// Alpha returns the node's alpha (the AMul term of its tint).
func (n *Node) Alpha() float64 { return n.tint.AMul }

// --- Visibility ---

// SetVisible sets the node's visibility bit. Visibility is not a cache
// input: no derived property invalidates.
func (n *Node) SetVisible(v bool) {
	n.revokeTimeline()
	n.flags.Toggle(FlagVisible, v)
}

// --- Content ---

// SetContent replaces the node's drawable content.
// Ignored on containers (their content is their children). Invalidates
// bounds upward from this node.
func (n *Node) SetContent(c Content) {
	if n.Role == RoleContainer {
		return
	}
	n.revokeTimeline()
	n.content = c
	n.invalidateBounds()
}

// ContentChanged tells the node its drawable content's geometry changed in
// place (the content collaborator mutated without being reassigned).
// Invalidates bounds upward from this node.
func (n *Node) ContentChanged() {
	n.invalidateBounds()
}

// --- Appearance scalars ---

// SetClipDepth sets the node's clip depth. Negative values are ignored.
func (n *Node) SetClipDepth(depth int) {
	if depth < 0 {
		return
	}
	n.revokeTimeline()
	n.clipDepth = depth
}

// SetBlendMode sets the node's blend mode. Out-of-range values are ignored
// rather than corrupting state.
func (n *Node) SetBlendMode(b BlendMode) {
	if b >= blendModeCount {
		return
	}
	n.revokeTimeline()
	n.blend = b
}

// --- Deferred features ---

// SetRotationX would rotate the node around the X axis. Rowan's transform
// model is strictly 2D.
func (n *Node) SetRotationX(r float64) error {
	return fmt.Errorf("rowan: 3-D rotation: %w", ErrUnsupported)
}

// SetRotationY would rotate the node around the Y axis. Rowan's transform
// model is strictly 2D.
func (n *Node) SetRotationY(r float64) error {
	return fmt.Errorf("rowan: 3-D rotation: %w", ErrUnsupported)
}
