package rowan

// Symbol is a node template, typically produced by an asset pipeline. A
// symbol seeds a node's initial matrix, tint, bounds, clip depth, and
// timeline ownership exactly once, at construction via Scene.Instantiate.
//
// Zero values mean defaults: a zero Matrix or ColorTransform is treated as
// identity, empty Bounds leave the bounds cache unseeded (recomputed on
// first read), and an empty Name is replaced with a generated unique one.
type Symbol struct {
	Name    string
	Role    Role
	Content Content

	Matrix       Matrix
	Tint         ColorTransform
	Bounds       Rect
	StrokeBounds Rect
	ClipDepth    int

	// TimelineOwned hands the instance to an external animation driver
	// until the first user mutation revokes it.
	TimelineOwned bool
}
