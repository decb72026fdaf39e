package ui

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/racer/pkg/scores"
)

// Key repeat timing for backspace, in ticks.
const (
	repeatDelay    = 24
	repeatInterval = 4
)

// HighScoreScreen asks for a name after a qualifying run and shows the table.
type HighScoreScreen struct {
	flow      *scores.EntryFlow
	table     *ScoreTable
	field     scores.NameField
	startTime time.Time
	ok        *Button
	onDone    func()
}

// NewHighScoreScreen creates the name prompt for the flow's pending score.
// onDone runs once the name is committed or the prompt is dismissed.
func NewHighScoreScreen(flow *scores.EntryFlow, table *ScoreTable, onDone func()) *HighScoreScreen {
	return &HighScoreScreen{
		flow:      flow,
		table:     table,
		startTime: time.Now(),
		ok:        NewButton("OK", 0, 0, 120, 40),
		onDone:    onDone,
	}
}

// Update handles typing and the commit and cancel keys.
func (hs *HighScoreScreen) Update() error {
	if !hs.flow.Awaiting() {
		hs.done()
		return nil
	}

	hs.field.Append(ebiten.AppendInputChars(nil))
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		hs.field.Backspace()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		hs.flow.Cancel()
		log.Printf("High score entry skipped")
		hs.done()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) ||
		hs.ok.Clicked() {
		if e, ok := hs.flow.Submit(hs.field.String()); ok {
			log.Printf("High score recorded: %s %d", e.Name, e.Score)
			hs.done()
		}
	}
	return nil
}

func (hs *HighScoreScreen) done() {
	if hs.onDone != nil {
		hs.onDone()
	}
}

// Draw renders the prompt and the current table.
func (hs *HighScoreScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})
	centerX := float64(width) / 2

	DrawText(screen, "NEW HIGH SCORE", centerX, 60, 40, highlightColor)
	DrawText(screen, fmt.Sprintf("%d", hs.flow.Score()), centerX, 110, 32, labelColor)
	DrawText(screen, "Enter your name:", centerX, 160, 20, hintColor)

	// Name box with a blinking caret.
	const boxWidth, boxHeight = 300.0, 40.0
	boxX, boxY := centerX-boxWidth/2, 185.0
	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), boxWidth, boxHeight, color.RGBA{40, 40, 60, 255}, false)
	vector.StrokeRect(screen, float32(boxX), float32(boxY), boxWidth, boxHeight, 2, borderColor, false)
	name := hs.field.String()
	DrawTextAt(screen, name, boxX+12, boxY+boxHeight/2-glyphHeight/2, 16, labelColor)
	if int(time.Since(hs.startTime).Seconds()*2)%2 == 0 {
		caretX := boxX + 12 + text.Advance(name, face)
		vector.DrawFilledRect(screen, float32(caretX+1), float32(boxY+10), 2, boxHeight-20, labelColor, false)
	}

	hs.ok.Rect.X = boxX + boxWidth + 12
	hs.ok.Rect.Y = boxY
	hs.ok.Draw(screen, hs.field.Len() > 0)

	hs.table.Draw(screen, centerX-160, 250, -1)
	DrawText(screen, "Enter: save   Backspace: edit   Esc: skip", centerX, float64(height)-30, 16, hintColor)
}

// repeatingKeyPressed reports a press on the first tick and then at a fixed
// interval while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
