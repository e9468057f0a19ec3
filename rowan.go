package rowan

import "errors"

// ErrUnsupported is returned (wrapped) by operations the current scope
// deliberately does not implement, such as 3-D rotation axes. Callers can
// test for it with errors.Is.
var ErrUnsupported = errors.New("not supported")

// Point is a 2D point used for coordinate conversion.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle encloses no area. Degenerate
// rectangles (zero or negative width or height) are empty regardless of
// position, and are ignored by Union.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle enclosing both r and other.
// An empty operand does not contribute.
func (r Rect) Union(other Rect) Rect {
	if other.Empty() {
		return r
	}
	if r.Empty() {
		return other
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.Width, other.X+other.Width)
	y1 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Role distinguishes what a Node is capable of. The role is fixed at
// construction; traversals branch on it instead of inspecting types.
type Role uint8

const (
	RoleContainer Role = iota // group node; owns children, no own content
	RoleShape                 // leaf drawable with explicit geometry
	RoleSprite                // leaf drawable backed by an image
)

// CanContain reports whether nodes of this role may have children.
func (r Role) CanContain() bool {
	return r == RoleContainer
}

// BlendMode selects a compositing operation for the rendering collaborator.
// Rowan stores and validates the value; applying it is the renderer's job.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (only darkens)
	BlendScreen                    // screen (only brightens)
	BlendErase                     // destination-out
	BlendBelow                     // destination-over

	blendModeCount
)
