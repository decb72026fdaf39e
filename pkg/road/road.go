// Package road models the scrolling strips of road the player drives along.
package road

import "github.com/golangdaddy/racer/pkg/geom"

// Segment is one thin strip of road. X is the horizontal center of the
// drivable surface and Y is its top edge.
type Segment struct {
	X, Y   float64
	Width  int
	Height int
	XSpeed float64 // always 0, the road only scrolls vertically
	YSpeed float64
}

// NewSegment creates a segment centered at x with its top edge at y.
func NewSegment(x, y float64, width, height int, ySpeed float64) Segment {
	return Segment{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		YSpeed: ySpeed,
	}
}

// Move advances the segment by one tick.
func (s *Segment) Move() {
	s.X += s.XSpeed
	s.Y += s.YSpeed
}

// Bounds returns the segment's rectangle.
func (s Segment) Bounds() geom.Rect {
	return geom.NewCentered(s.X, s.Y, float64(s.Width), float64(s.Height))
}

// Drivable returns the span the car must stay inside. Anything beyond it is
// kerb or grass.
func (s Segment) Drivable() geom.Rect {
	return s.Bounds()
}

// Bottom returns the y-coordinate of the segment's bottom edge.
func (s Segment) Bottom() float64 {
	return s.Y + float64(s.Height)
}

// Offscreen reports whether the top edge has scrolled past the bottom of a
// screen of the given height.
func (s Segment) Offscreen(screenHeight int) bool {
	return s.Y > float64(screenHeight)
}
