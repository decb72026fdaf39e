package road

import "math/rand"

// Generator produces new segments whose centers follow a random walk. The
// walk carries on for the whole session; each segment drifts from the last.
type Generator struct {
	centerX    float64
	curveSpeed float64
	width      int
	height     int
	ySpeed     float64
	rng        *rand.Rand

	limited    bool
	minX, maxX float64
}

// NewGenerator creates a generator starting its walk at startX.
func NewGenerator(startX, curveSpeed float64, width, height int, ySpeed float64, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{
		centerX:    startX,
		curveSpeed: curveSpeed,
		width:      width,
		height:     height,
		ySpeed:     ySpeed,
		rng:        rng,
	}
}

// Next drifts the road center by a uniform amount in [-curve, +curve] and
// returns a segment just above the top of the screen. Callers reposition it.
func (g *Generator) Next() Segment {
	if g.curveSpeed != 0 {
		g.centerX += g.rng.Float64()*2*g.curveSpeed - g.curveSpeed
	}
	if g.limited {
		g.centerX = min(max(g.centerX, g.minX), g.maxX)
	}
	return NewSegment(g.centerX, -float64(g.height), g.width, g.height, g.ySpeed)
}

// Limit keeps the walk between minX and maxX so the road cannot wander off
// the screen.
func (g *Generator) Limit(minX, maxX float64) {
	if minX > maxX {
		return
	}
	g.limited = true
	g.minX, g.maxX = minX, maxX
}

// CenterX returns the center of the most recently generated segment.
func (g *Generator) CenterX() float64 {
	return g.centerX
}
