package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/racer/pkg/scores"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	board          *scores.Board
	onStartPressed func()
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(board *scores.Board, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		board:          board,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulse between 1.0 and 1.1 of the base size.
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := min(1.0+0.2*math.Sin(elapsed*1.5), 1.0)
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawText(screen, "RACER", centerX, centerY, 96*pulse, titleColor)
	DrawText(screen, "Stay on the road", centerX, centerY+80, 28, color.RGBA{180, 180, 200, 255})

	if ts.board != nil {
		if best := ts.board.RankedDescending(); len(best) > 0 {
			line := fmt.Sprintf("BEST  %d  %s", best[0].Score, best[0].Name)
			DrawText(screen, line, centerX, centerY+130, 20, highlightColor)
		}
	}

	// Blink every half second.
	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "Press ENTER or click to start", centerX, float64(height)-110, 24, color.RGBA{150, 200, 255, 255})
	}
	DrawText(screen, "Arrows / WASD: drive   Enter: play   Esc: stop", centerX, float64(height)-60, 16, hintColor)

	drawRoadLines(screen, width, height, elapsed)
}

// drawRoadLines draws two scrolling dashed lane markers framing the title.
func drawRoadLines(screen *ebiten.Image, width, height int, elapsed float64) {
	const (
		dash = 24.0
		gap  = 16.0
	)
	lineColor := color.RGBA{50, 60, 80, 160}
	offset := math.Mod(elapsed*120, dash+gap)
	for _, x := range []float64{float64(width) / 8, float64(width) * 7 / 8} {
		for y := -dash + offset; y < float64(height); y += dash + gap {
			vector.DrawFilledRect(screen, float32(x-2), float32(y), 4, dash, lineColor, false)
		}
	}
}
