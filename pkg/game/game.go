// Package game is the ebiten host for a racer session.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/racer/pkg/racer"
	"github.com/golangdaddy/racer/pkg/ui"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	session       *racer.Session
	table         *ui.ScoreTable
	gameplay      *GameplayScreen
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a game around session. table is refreshed with the board
// and shown after each run.
func NewGame(session *racer.Session, table *ui.ScoreTable, backgroundSeed int64) *Game {
	g := &Game{
		session: session,
		table:   table,
	}
	table.Refresh(session.Board())
	g.gameplay = NewGameplayScreen(session, table, backgroundSeed, g.showHighScores)

	g.currentScreen = ui.NewTitleScreen(session.Board(), func() {
		g.currentScreen = g.gameplay
		log.Printf("Game started (board holds %d scores)", session.Board().Len())
	})
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := g.session.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}

// showHighScores switches to the name prompt for a qualifying run.
func (g *Game) showHighScores() {
	g.currentScreen = ui.NewHighScoreScreen(g.session.Flow(), g.table, func() {
		g.currentScreen = g.gameplay
	})
}
