package rowan

import "github.com/hajimehoshi/ebiten/v2"

// Content is the drawable collaborator a leaf node derives its own bounds
// from. Rowan consumes only the bounding-box contribution; rasterization
// belongs to the rendering backend.
type Content interface {
	// ContentBounds returns the drawable's bounding rectangle in the
	// node's local space, with or without stroke contribution.
	ContentBounds(includeStroke bool) Rect
}

// ShapeContent is explicit vector-style geometry: a fill rectangle plus a
// stroke that extends half its width past the fill on every side.
type ShapeContent struct {
	Fill        Rect
	StrokeWidth float64
}

// ContentBounds returns the fill rectangle, grown by half the stroke width
// on each side when includeStroke is set.
func (s ShapeContent) ContentBounds(includeStroke bool) Rect {
	if !includeStroke || s.StrokeWidth <= 0 || s.Fill.Empty() {
		return s.Fill
	}
	half := s.StrokeWidth / 2
	return Rect{
		X:      s.Fill.X - half,
		Y:      s.Fill.Y - half,
		Width:  s.Fill.Width + s.StrokeWidth,
		Height: s.Fill.Height + s.StrokeWidth,
	}
}

// ImageContent is raster content backed by an ebiten image. The image's
// pixel bounds are the content bounds; images have no stroke, so both
// variants are identical.
type ImageContent struct {
	Image *ebiten.Image
}

// ContentBounds returns the image's bounds, anchored at the image's own
// Min (non-zero for sub-images). A nil image has empty bounds.
func (c ImageContent) ContentBounds(includeStroke bool) Rect {
	if c.Image == nil {
		return Rect{}
	}
	b := c.Image.Bounds()
	return Rect{
		X:      float64(b.Min.X),
		Y:      float64(b.Min.Y),
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}
}
