package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/racer/pkg/scores"
)

type scoreRow struct {
	name  string
	score int
}

// ScoreTable is the on-screen high score list. It is fed by the board one
// row at a time; rank 0 starts a fresh table.
type ScoreTable struct {
	rows []scoreRow
}

// NewScoreTable creates an empty table.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{}
}

// Render implements scores.Renderer.
func (t *ScoreTable) Render(rank int, name string, score int) {
	if rank == 0 {
		t.rows = t.rows[:0]
	}
	t.rows = append(t.rows, scoreRow{name: name, score: score})
}

// Refresh rebuilds the table from board.
func (t *ScoreTable) Refresh(board *scores.Board) {
	t.rows = t.rows[:0]
	board.Render(t)
}

// Len returns the number of rows shown.
func (t *ScoreTable) Len() int {
	return len(t.rows)
}

// Draw renders the table inside a panel whose top-left corner is x, y.
// The first row scoring highlight is drawn in gold; pass -1 for none.
func (t *ScoreTable) Draw(screen *ebiten.Image, x, y float64, highlight int) {
	const (
		width      = 320.0
		rowHeight  = 22.0
		headHeight = 34.0
	)
	height := headHeight + rowHeight*float64(max(len(t.rows), 1)) + 10
	DrawPanel(screen, x, y, width, height)
	DrawText(screen, "HIGH SCORES", x+width/2, y+18, 16, highlightColor)

	if len(t.rows) == 0 {
		DrawText(screen, "no scores yet", x+width/2, y+headHeight+rowHeight/2, 16, hintColor)
		return
	}

	marked := false
	for i, row := range t.rows {
		rowY := y + headHeight + float64(i)*rowHeight
		var clr color.Color = labelColor
		if !marked && row.score == highlight {
			clr = highlightColor
			marked = true
		}
		DrawTextAt(screen, fmt.Sprintf("%2d.", i+1), x+16, rowY, 16, clr)
		DrawTextAt(screen, row.name, x+56, rowY, 16, clr)
		score := fmt.Sprintf("%d", row.score)
		DrawTextAt(screen, score, x+width-16-text.Advance(score, face), rowY, 16, clr)
	}
}

var _ scores.Renderer = (*ScoreTable)(nil)
