package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/racer/pkg/vehicle"
)

// maxTilt is the sprite rotation in radians at full sideways speed.
const maxTilt = 0.15

// NewCarSprite renders a top-down car the size of the collision box.
func NewCarSprite(body color.Color) *ebiten.Image {
	w, h := float32(vehicle.CarWidth), float32(vehicle.CarHeight)
	img := ebiten.NewImage(vehicle.CarWidth, vehicle.CarHeight)

	vector.DrawFilledRect(img, 0, 0, w, h, body, false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, color.RGBA{20, 20, 20, 255}, false)

	// Windshield at the front.
	vector.DrawFilledRect(img, w*0.2, h*0.15, w*0.6, h*0.2, color.RGBA{150, 200, 255, 220}, false)
	// Roof.
	vector.DrawFilledRect(img, w*0.2, h*0.4, w*0.6, h*0.3, color.RGBA{0, 0, 0, 60}, false)

	wheel := color.RGBA{30, 30, 30, 255}
	const wheelW, wheelH = 4, 8
	for _, p := range [][2]float32{{0, 4}, {w - wheelW, 4}, {0, h - wheelH - 4}, {w - wheelW, h - wheelH - 4}} {
		vector.DrawFilledRect(img, p[0], p[1], wheelW, wheelH, wheel, false)
	}

	lamp := color.RGBA{255, 255, 100, 255}
	vector.DrawFilledRect(img, 3, 0, 4, 2, lamp, false)
	vector.DrawFilledRect(img, w-7, 0, 4, 2, lamp, false)
	return img
}

// DrawCar draws sprite at the car's position, tilted toward its sideways
// motion.
func DrawCar(screen, sprite *ebiten.Image, car *vehicle.Car, speed float64) {
	tilt := 0.0
	if speed > 0 {
		tilt = maxTilt * car.VelocityX / speed
	}
	b := car.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-b.W/2, -b.H/2)
	op.GeoM.Rotate(tilt)
	op.GeoM.Translate(b.CenterX(), b.Top()+b.H/2)
	screen.DrawImage(sprite, op)
}
