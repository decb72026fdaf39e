package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/racer/pkg/geom"
)

// glyphHeight is the natural height of the bitmap font.
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

var (
	buttonColor    = color.RGBA{40, 40, 60, 255}
	buttonHotColor = color.RGBA{60, 100, 140, 255}
	buttonOffColor = color.RGBA{30, 30, 36, 200}
	borderColor    = color.RGBA{80, 80, 100, 255}
	labelColor     = color.RGBA{255, 255, 255, 255}
	labelHotColor  = color.RGBA{200, 240, 255, 255}
	labelOffColor  = color.RGBA{110, 110, 120, 255}
	hintColor      = color.RGBA{150, 150, 150, 255}
	highlightColor = color.RGBA{255, 200, 50, 255}
	panelColor     = color.RGBA{20, 20, 30, 210}
	panelEdgeColor = color.RGBA{100, 100, 120, 255}
)

// Button is a labelled rectangle that reacts to the mouse.
type Button struct {
	Label string
	Rect  geom.Rect
}

// NewButton creates a button with its top-left corner at x, y.
func NewButton(label string, x, y, width, height float64) *Button {
	return &Button{Label: label, Rect: geom.Rect{X: x, Y: y, W: width, H: height}}
}

// Hovered reports whether the cursor is over the button.
func (b *Button) Hovered() bool {
	x, y := ebiten.CursorPosition()
	return b.Rect.Contains(float64(x), float64(y))
}

// Clicked reports a left click on the button during this frame.
func (b *Button) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Hovered()
}

// Draw renders the button. Disabled buttons are greyed out.
func (b *Button) Draw(screen *ebiten.Image, enabled bool) {
	bg, fg := buttonColor, labelColor
	switch {
	case !enabled:
		bg, fg = buttonOffColor, labelOffColor
	case b.Hovered():
		bg, fg = buttonHotColor, labelHotColor
	}
	drawButton(screen, b.Label, b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, bg, fg)
}

// drawButton draws a bordered box with its label centered.
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, borderColor, false)

	textX := x + width/2 - text.Advance(label, face)/2
	textY := y + height/2 - glyphHeight/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, face, op)
}

// DrawText draws str centered on (centerX, centerY) at the given pixel size.
func DrawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	scale := size / glyphHeight
	textX := centerX - text.Advance(str, face)*scale/2
	textY := centerY - glyphHeight*scale/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawTextAt draws str with its top-left corner at (x, y).
func DrawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawPanel draws a translucent box behind overlay text.
func DrawPanel(screen *ebiten.Image, x, y, width, height float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, panelEdgeColor, false)
}
