package vehicle

import (
	"github.com/golangdaddy/racer/pkg/geom"
	"github.com/golangdaddy/racer/pkg/road"
)

// Car footprint in pixels.
const (
	CarWidth  = 24
	CarHeight = 40
)

// Car is the player's car. X and Y are the center of its footprint.
type Car struct {
	X, Y      float64
	VelocityX float64
	VelocityY float64

	spawnX, spawnY float64
}

// NewCar creates a stationary car at the given spawn point.
func NewCar(x, y float64) *Car {
	return &Car{X: x, Y: y, spawnX: x, spawnY: y}
}

// Steer sets the velocity from the controls. Each pressed direction adds
// speed on its own axis, so diagonals are faster than straight lines.
func (c *Car) Steer(in Controls, speed float64) {
	var vx, vy float64
	if in.Left {
		vx -= speed
	}
	if in.Right {
		vx += speed
	}
	if in.Up {
		vy -= speed
	}
	if in.Down {
		vy += speed
	}
	c.VelocityX = vx
	c.VelocityY = vy
}

// Move applies the current velocity.
func (c *Car) Move() {
	c.X += c.VelocityX
	c.Y += c.VelocityY
}

// Clamp keeps the car's footprint between minY and maxY.
func (c *Car) Clamp(minY, maxY float64) {
	half := float64(CarHeight) / 2
	if c.Y-half < minY {
		c.Y = minY + half
	}
	if c.Y+half > maxY {
		c.Y = maxY - half
	}
}

// Reset puts the car back on its spawn point with no velocity.
func (c *Car) Reset() {
	c.X, c.Y = c.spawnX, c.spawnY
	c.VelocityX, c.VelocityY = 0, 0
}

// Bounds returns the car's footprint.
func (c *Car) Bounds() geom.Rect {
	return geom.NewCentered(c.X, c.Y-float64(CarHeight)/2, CarWidth, CarHeight)
}

// Strayed reports whether the car has left the drivable width of seg while
// level with it. A segment above or below the car never counts.
func (c *Car) Strayed(seg road.Segment) bool {
	b := c.Bounds()
	d := seg.Drivable()
	if !b.OverlapsVertically(d) {
		return false
	}
	return !b.WithinHorizontally(d)
}
