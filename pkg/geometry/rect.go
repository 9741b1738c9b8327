package geometry

import "fmt"

// Rect is an axis-aligned rectangle described by its four bounds.
// All four sides are closed intervals: a point exactly on an edge is inside,
// and two rectangles that merely touch still intersect.
// Invariant: Left <= Right and Top <= Bottom.
type Rect struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// NewRect creates a Rect from its four bounds.
func NewRect(left, right, top, bottom float64) Rect {
	return Rect{Left: left, Right: right, Top: top, Bottom: bottom}
}

// NewRectFromCenter creates the Rect of the given width and height
// centered at (cx, cy).
func NewRectFromCenter(cx, cy, width, height float64) Rect {
	halfWidth := width / 2
	halfHeight := height / 2
	return Rect{
		Left:   cx - halfWidth,
		Right:  cx + halfWidth,
		Top:    cy - halfHeight,
		Bottom: cy + halfHeight,
	}
}

// String implements the fmt.Stringer interface.
func (r Rect) String() string {
	return fmt.Sprintf("[%.2f, %.2f]x[%.2f, %.2f]", r.Left, r.Right, r.Top, r.Bottom)
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector2D {
	return Vector2D{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// ContainsPoint reports whether (x, y) lies inside the rectangle,
// boundary included on all four sides.
func (r Rect) ContainsPoint(x, y float64) bool {
	xInside := r.Left <= x && x <= r.Right
	yInside := r.Top <= y && y <= r.Bottom
	return xInside && yInside
}

// Intersects reports whether the two closed rectangles overlap on both axes.
// Touching edges count as overlap.
func (r Rect) Intersects(other Rect) bool {
	noXOverlap := r.Right < other.Left || other.Right < r.Left
	noYOverlap := r.Bottom < other.Top || other.Bottom < r.Top
	return !(noXOverlap || noYOverlap)
}
