package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/racer/pkg/background"
	"github.com/golangdaddy/racer/pkg/racer"
	"github.com/golangdaddy/racer/pkg/road"
	"github.com/golangdaddy/racer/pkg/ui"
)

var (
	asphaltColor = color.RGBA{64, 64, 64, 255}
	kerbRed      = color.RGBA{200, 30, 30, 255}
	kerbWhite    = color.RGBA{235, 235, 235, 255}
	carColor     = color.RGBA{220, 20, 20, 255}
	hudColor     = color.RGBA{255, 255, 255, 255}
	hudDimColor  = color.RGBA{200, 200, 200, 255}
)

// kerbWidth is the painted strip inside each road edge.
const kerbWidth = 4

// GameplayScreen draws a running session and handles the PLAY and STOP
// controls.
type GameplayScreen struct {
	session     *racer.Session
	table       *ui.ScoreTable
	background  *ebiten.Image
	carSprite   *ebiten.Image
	play, stop  *ui.Button
	scroll      float64
	lastScore   int
	onHighScore func() // Callback when a finished run earns a place
}

// NewGameplayScreen creates the gameplay screen for session.
func NewGameplayScreen(session *racer.Session, table *ui.ScoreTable, backgroundSeed int64, onHighScore func()) *GameplayScreen {
	cfg := session.Config()
	w := float64(cfg.ScreenWidth)
	return &GameplayScreen{
		session:     session,
		table:       table,
		background:  background.NewGenerator(cfg.ScreenWidth, cfg.ScreenHeight).GenerateVerge(backgroundSeed),
		carSprite:   ui.NewCarSprite(carColor),
		play:        ui.NewButton("PLAY", w-230, 12, 100, 36),
		stop:        ui.NewButton("STOP", w-120, 12, 100, 36),
		lastScore:   -1,
		onHighScore: onHighScore,
	}
}

// Update handles the buttons and advances the session one tick.
func (gs *GameplayScreen) Update() error {
	playing := gs.session.Playing()
	if !playing && (gs.play.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		gs.session.Start()
		log.Printf("Run started")
	}
	if playing && (gs.stop.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		gs.session.Stop()
		log.Printf("Run stopped at %d", gs.session.Score())
	}

	wasPlaying := gs.session.Playing()
	gs.session.Update()
	if gs.session.Playing() {
		gs.scroll += gs.session.Config().ScrollSpeed
	} else if wasPlaying {
		log.Printf("Crashed at %d", gs.session.Score())
	}
	if playing && !gs.session.Playing() {
		gs.lastScore = gs.session.Score()
	}
	if !gs.session.Playing() && gs.session.Flow().Awaiting() && gs.onHighScore != nil {
		gs.onHighScore()
	}
	return nil
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	background.DrawScrolling(screen, gs.background, gs.scroll)

	if gs.session.Playing() {
		gs.drawRoad(screen)
		ui.DrawCar(screen, gs.carSprite, gs.session.Player(), gs.session.Config().PlayerSpeed)
	} else {
		gs.drawIdle(screen)
	}
	gs.drawHUD(screen)
}

// drawRoad renders every live segment with alternating kerbs.
func (gs *GameplayScreen) drawRoad(screen *ebiten.Image) {
	for _, seg := range gs.session.Segments() {
		gs.drawSegment(screen, seg)
	}
}

func (gs *GameplayScreen) drawSegment(screen *ebiten.Image, seg road.Segment) {
	b := seg.Bounds()
	x, y := float32(b.Left()), float32(b.Top())
	w, h := float32(b.W), float32(b.H)
	vector.DrawFilledRect(screen, x, y, w, h, asphaltColor, false)

	// Kerb colour follows world distance so the stripes scroll with the road.
	kerb := kerbWhite
	if int((seg.Y-gs.scroll)/float64(seg.Height))%2 == 0 {
		kerb = kerbRed
	}
	vector.DrawFilledRect(screen, x, y, kerbWidth, h, kerb, false)
	vector.DrawFilledRect(screen, x+w-kerbWidth, y, kerbWidth, h, kerb, false)
}

// drawIdle shows the last result and the table between runs.
func (gs *GameplayScreen) drawIdle(screen *ebiten.Image) {
	cfg := gs.session.Config()
	centerX := float64(cfg.ScreenWidth) / 2

	headline := "Press ENTER or PLAY to race"
	if gs.lastScore > 0 {
		headline = fmt.Sprintf("Run over: %d", gs.lastScore)
	}
	ui.DrawPanel(screen, centerX-220, 70, 440, 60)
	ui.DrawText(screen, headline, centerX, 100, 24, hudColor)

	gs.table.Draw(screen, centerX-160, 150, gs.lastScore)
}

// drawHUD draws the score label and the buttons.
func (gs *GameplayScreen) drawHUD(screen *ebiten.Image) {
	ui.DrawPanel(screen, 12, 12, 220, 56)
	ui.DrawTextAt(screen, fmt.Sprintf("SCORE %d", gs.session.Score()), 24, 18, 24, hudColor)
	ui.DrawTextAt(screen, fmt.Sprintf("CRASHES %d", gs.session.Crashes()), 24, 46, 16, hudDimColor)

	playing := gs.session.Playing()
	gs.play.Draw(screen, !playing)
	gs.stop.Draw(screen, playing)
}
