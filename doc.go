// Package rowan is a retained-mode scene tree with lazy invalidation.
//
// Rowan maintains a tree of visual nodes whose derived properties
// (concatenated transform, concatenated tint, content bounds) are expensive
// to recompute and depend on ancestors. Property setters mark the minimal
// set of nodes dirty the instant a value changes; the actual recomputation
// is deferred until a derived value is read, and only the portion of the
// tree between the nearest valid ancestor and the requesting node is
// recomputed. Repeated reads of a clean node are O(1).
//
// # Scene tree
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and tint.
// Create nodes with the [Scene] factory methods: [Scene.NewContainer],
// [Scene.NewShape], [Scene.NewSprite], or [Scene.Instantiate] for
// template-seeded nodes:
//
//	scene := rowan.NewScene()
//
//	panel := scene.NewContainer("panel")
//	scene.Root().AddChild(panel)
//
//	icon := scene.NewShape("icon", rowan.ShapeContent{
//		Fill: rowan.Rect{Width: 16, Height: 16},
//	})
//	icon.SetPosition(100, 50)
//	panel.AddChild(icon)
//
// # Reading derived values
//
// [Node.ConcatenatedMatrix], [Node.ConcatenatedTint], [Node.Bounds] and
// [Node.StrokeBounds] return cached values, recomputing lazily when a prior
// mutation invalidated them. [Node.ToGlobal], [Node.ToLocal] and
// [Node.BoundsIn] convert between coordinate spaces on top of the same
// caches. A read immediately following a write always observes the write.
//
// # Timeline animation
//
// Nodes instantiated from a [Symbol] with TimelineOwned set are driven by a
// [Timeline] (via [gween] tweens) until the first user mutation, which
// permanently hands control to user code.
//
// Rowan is single-threaded: confine a Scene and its nodes to one goroutine,
// or guard the whole tree with one mutex.
//
// [gween]: https://github.com/tanema/gween
package rowan
