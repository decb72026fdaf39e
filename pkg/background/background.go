// Package background paints the roadside scenery behind the track.
package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Generator creates roadside textures
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateVerge paints grass with scattered bushes and trees. The same seed
// always gives the same picture.
func (g *Generator) GenerateVerge(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(seed))

	img.Fill(color.RGBA{30, 100, 30, 255})

	// Speckle the grass.
	for i := 0; i < g.Width*g.Height/40; i++ {
		x := float32(rng.Intn(g.Width))
		y := float32(rng.Intn(g.Height))
		shade := uint8(80 + rng.Intn(60))
		vector.DrawFilledRect(img, x, y, 2, 2, color.RGBA{30, shade, 30, 255}, false)
	}

	for y := 0; y < g.Height; y += 12 {
		density := 0.35 + 0.2*math.Sin(float64(y)*0.01)
		for x := 0; x < g.Width; x += 8 + rng.Intn(20) {
			if rng.Float64() > density {
				continue
			}
			drawX := float32(x + rng.Intn(10) - 5)
			drawY := float32(y + rng.Intn(10) - 5)
			if rng.Float64() < 0.3 {
				g.drawTree(img, drawX, drawY, rng)
			} else {
				g.drawBush(img, drawX, drawY, rng)
			}
		}
	}
	return img
}

// drawTree draws a pine seen from above as stacked shrinking squares.
func (g *Generator) drawTree(img *ebiten.Image, x, y float32, rng *rand.Rand) {
	size := float32(14 + rng.Intn(10))
	base := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		s := size * (1 - float32(l)*0.28)
		c := base
		c.G += uint8(l * 15)
		vector.DrawFilledRect(img, x-s/2, y-s/2, s, s, c, false)
	}
	vector.DrawFilledRect(img, x-1, y-1, 2, 2, color.RGBA{60, 40, 20, 255}, false)
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *ebiten.Image, x, y float32, rng *rand.Rand) {
	radius := float32(4 + rng.Intn(8))
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	vector.DrawFilledCircle(img, x, y, radius, c, true)
}

// DrawScrolling tiles img down the screen, shifted by offset pixels.
func DrawScrolling(screen, img *ebiten.Image, offset float64) {
	h := float64(img.Bounds().Dy())
	if h <= 0 {
		return
	}
	shift := math.Mod(offset, h)
	for y := shift - h; y < float64(screen.Bounds().Dy()); y += h {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(img, op)
	}
}
