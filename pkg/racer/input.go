package racer

import (
	"time"

	"github.com/golangdaddy/racer/pkg/vehicle"
)

// Input is sampled once per tick.
type Input interface {
	Left() bool
	Right() bool
	Up() bool
	Down() bool
}

// Pacer is called once per tick to hold the frame rate steady.
type Pacer interface {
	Pause()
}

func sample(in Input) vehicle.Controls {
	if in == nil {
		return vehicle.Controls{}
	}
	return vehicle.Controls{
		Left:  in.Left(),
		Right: in.Right(),
		Up:    in.Up(),
		Down:  in.Down(),
	}
}

// NoInput never presses anything.
type NoInput struct{}

func (NoInput) Left() bool  { return false }
func (NoInput) Right() bool { return false }
func (NoInput) Up() bool    { return false }
func (NoInput) Down() bool  { return false }

// Keys is a settable Input, handy for scripted hosts and tests.
type Keys struct {
	L, R, U, D bool
}

func (k *Keys) Left() bool  { return k.L }
func (k *Keys) Right() bool { return k.R }
func (k *Keys) Up() bool    { return k.U }
func (k *Keys) Down() bool  { return k.D }

// NopPacer returns immediately. Hosts with their own frame pacing use it.
type NopPacer struct{}

func (NopPacer) Pause() {}

// TickerPacer blocks until the next tick of a fixed-rate ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer running at tps ticks per second.
func NewTickerPacer(tps int) *TickerPacer {
	if tps <= 0 {
		tps = 60
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(tps))}
}

// Pause waits for the next tick.
func (p *TickerPacer) Pause() {
	<-p.ticker.C
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}
