// Package scores keeps the top-ten high score table and the flow that
// collects a name after a qualifying run.
package scores

import (
	"cmp"
	"time"
)

// Entry is one row of the high score table.
type Entry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	At    time.Time `json:"at"`
}

// Compare orders entries by score only.
func Compare(a, b Entry) int {
	return cmp.Compare(a.Score, b.Score)
}

// Renderer receives the ranked table one row at a time. Rank is 0-based.
type Renderer interface {
	Render(rank int, name string, score int)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(rank int, name string, score int)

// Render calls f.
func (f RendererFunc) Render(rank int, name string, score int) {
	f(rank, name, score)
}
