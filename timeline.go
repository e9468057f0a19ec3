package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timeline is the external per-frame animation driver. It advances tween
// groups against timeline-animated nodes, writing through the non-revoking
// mutation path, and drops a group as soon as its node is destroyed or a
// user mutation revoked timeline animation for it.
type Timeline struct {
	groups []*TweenGroup
}

// NewTimeline creates an empty timeline driver.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add registers a tween group with the timeline.
func (tl *Timeline) Add(g *TweenGroup) {
	tl.groups = append(tl.groups, g)
}

// Len returns the number of active tween groups.
func (tl *Timeline) Len() int {
	return len(tl.groups)
}

// Update advances all active tween groups by dt seconds and compacts
// finished ones out of the list.
func (tl *Timeline) Update(dt float32) {
	live := tl.groups[:0]
	for _, g := range tl.groups {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	// Nil out the tail so dropped groups don't pin their nodes.
	for i := len(live); i < len(tl.groups); i++ {
		tl.groups[i] = nil
	}
	tl.groups = live
}

// TweenGroup animates up to 4 values on a Node simultaneously. Create one
// via the convenience constructors (TweenPosition, TweenScale, TweenTint,
// TweenAlpha, TweenRotation) and add it to a Timeline. Writes go through
// the timeline mutation path, so they do not revoke timeline animation; if
// the target is destroyed, or it is timeline-owned and user code took it
// over, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(n *Node, vals [4]float64)
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target. Stops without writing if the target was destroyed or is no longer
// timeline-animated.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.Destroyed() {
		g.Done = true
		return
	}
	// Revocation only binds timeline-owned instances; user-created nodes
	// may always be tweened.
	if g.target.TimelineOwned() && !g.target.TimelineAnimated() {
		g.Done = true
		return
	}

	allDone := true
	var vals [4]float64
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.apply(g.target, vals)
	g.Done = allDone
}

// TweenPosition animates the node's local translation to (toX, toY) over
// the given duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X()), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y()), float32(toY), duration, fn)
	g.apply = func(n *Node, vals [4]float64) {
		n.setPosition(vals[0], vals[1])
	}
	return g
}

// TweenScale animates the node's scale factors to (toSX, toSY).
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX()), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY()), float32(toSY), duration, fn)
	g.apply = func(n *Node, vals [4]float64) {
		n.setScale(vals[0], vals[1])
	}
	return g
}

// TweenRotation animates the node's rotation to the target radians.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Rotation()), float32(to), duration, fn)
	g.apply = func(n *Node, vals [4]float64) {
		n.setRotation(vals[0])
	}
	return g
}

// TweenAlpha animates the node's alpha (the AMul tint term) to the target.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha()), float32(to), duration, fn)
	g.apply = func(n *Node, vals [4]float64) {
		n.setAlpha(vals[0])
	}
	return g
}

// TweenTint animates the four multiplicative tint terms to the target
// transform's; additive terms jump to the target immediately.
func TweenTint(node *Node, to ColorTransform, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.Tint()
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(from.RMul), float32(to.RMul), duration, fn)
	g.tweens[1] = gween.New(float32(from.GMul), float32(to.GMul), duration, fn)
	g.tweens[2] = gween.New(float32(from.BMul), float32(to.BMul), duration, fn)
	g.tweens[3] = gween.New(float32(from.AMul), float32(to.AMul), duration, fn)
	g.apply = func(n *Node, vals [4]float64) {
		t := to
		t.RMul = vals[0]
		t.GMul = vals[1]
		t.BMul = vals[2]
		t.AMul = vals[3]
		n.setTint(t)
	}
	return g
}
