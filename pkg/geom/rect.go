// Package geom holds the axis-aligned rectangle used for collision checks.
package geom

// Rect is an axis-aligned bounding box. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewCentered builds a rect whose horizontal center is cx and top edge is y.
func NewCentered(cx, y, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Translate returns a copy moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// OverlapsVertically reports whether the vertical spans share any interior.
// Touching edges do not count.
func (r Rect) OverlapsVertically(other Rect) bool {
	return r.Top() < other.Bottom() && other.Top() < r.Bottom()
}

// WithinHorizontally reports whether r's horizontal span lies inside other's.
// Edges are inclusive.
func (r Rect) WithinHorizontally(other Rect) bool {
	return r.Left() >= other.Left() && r.Right() <= other.Right()
}

// Intersects is the usual AABB overlap test.
func (r Rect) Intersects(other Rect) bool {
	if r.Left() >= other.Right() || other.Left() >= r.Right() {
		return false
	}
	return r.OverlapsVertically(other)
}

// Contains reports whether the point lies inside r. Edges on the left and
// top count as inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}
