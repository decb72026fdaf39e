// Package racer runs the per-tick simulation: the scrolling road, the
// player's car, the score and crash detection.
package racer

import (
	"math/rand"
	"slices"
	"time"

	"github.com/golangdaddy/racer/pkg/road"
	"github.com/golangdaddy/racer/pkg/scores"
	"github.com/golangdaddy/racer/pkg/vehicle"
)

// Session owns the road and the car. The high score board is shared across
// sessions and handed in by whoever builds them.
type Session struct {
	cfg   Config
	board *scores.Board
	flow  *scores.EntryFlow
	input Input
	pacer Pacer
	rng   *rand.Rand

	gen    *road.Generator
	road   []road.Segment // circular, top indexes the highest segment
	top    int
	player *vehicle.Car

	score   int
	playing bool
	crashes int
}

// Option configures a Session.
type Option func(*Session)

// WithInput sets the control source.
func WithInput(in Input) Option {
	return func(s *Session) { s.input = in }
}

// WithPacer sets the frame pacing primitive.
func WithPacer(p Pacer) Option {
	return func(s *Session) { s.pacer = p }
}

// WithFlowOptions configures the high score entry flow.
func WithFlowOptions(opts ...scores.FlowOption) Option {
	return func(s *Session) { s.flow = scores.NewEntryFlow(s.board, opts...) }
}

// New creates a stopped session. A nil board gets a private one.
func New(cfg Config, board *scores.Board, opts ...Option) *Session {
	if board == nil {
		board = scores.NewBoard(scores.DefaultCapacity)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	spawnX, spawnY := cfg.SpawnPoint()
	s := &Session{
		cfg:    cfg,
		board:  board,
		input:  NoInput{},
		pacer:  NopPacer{},
		rng:    rand.New(rand.NewSource(seed)),
		road:   make([]road.Segment, cfg.SegmentCount()),
		player: vehicle.NewCar(spawnX, spawnY),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.flow == nil {
		s.flow = scores.NewEntryFlow(board)
	}
	return s
}

// Start begins a new run. It does nothing while a run is in progress.
func (s *Session) Start() {
	if s.playing {
		return
	}
	s.player.Reset()

	s.gen = road.NewGenerator(float64(s.cfg.ScreenWidth)/2, s.cfg.CurveSpeed,
		s.cfg.SegmentWidth, s.cfg.SegmentHeight, s.cfg.ScrollSpeed, s.rng)
	half := float64(s.cfg.SegmentWidth) / 2
	s.gen.Limit(half, float64(s.cfg.ScreenWidth)-half)
	// Lay the road from the bottom up so the walk runs away from the car.
	for i := len(s.road) - 1; i >= 0; i-- {
		seg := s.gen.Next()
		seg.Y = float64(i * s.cfg.SegmentHeight)
		s.road[i] = seg
	}
	s.top = 0

	s.score = 0
	s.playing = true
}

// Stop ends the current run. It does nothing when no run is in progress.
// A qualifying score arms the high score entry flow.
func (s *Session) Stop() {
	if !s.playing {
		return
	}
	s.playing = false
	clear(s.road)
	s.player.Reset()
	if s.board.Qualifies(s.score) {
		s.flow.Open(s.score)
	}
}

// Update advances the simulation by one tick and then paces the frame.
func (s *Session) Update() {
	defer s.pacer.Pause()
	if !s.playing {
		return
	}
	s.score++

	s.player.Steer(sample(s.input), s.cfg.PlayerSpeed)
	s.player.Move()
	s.player.Clamp(0, float64(s.cfg.ScreenHeight))

	for i := range s.road {
		s.road[i].Move()
	}
	s.recycle()

	if s.HasCrashed() {
		s.crashes++
		s.Stop()
	}
}

// recycle moves every segment that fell off the bottom to sit directly on
// top of the highest one.
func (s *Session) recycle() {
	for i := range s.road {
		if !s.road[i].Offscreen(s.cfg.ScreenHeight) {
			continue
		}
		seg := s.gen.Next()
		seg.Y = s.road[s.top].Y - float64(seg.Height)
		s.road[i] = seg
		s.top = i
	}
}

// HasCrashed reports whether the car has left the road on any segment level
// with it.
func (s *Session) HasCrashed() bool {
	if !s.playing {
		return false
	}
	for _, seg := range s.road {
		if s.player.Strayed(seg) {
			return true
		}
	}
	return false
}

// Playing reports whether a run is in progress.
func (s *Session) Playing() bool { return s.playing }

// Score returns the current score, or the final score of the last run.
func (s *Session) Score() int { return s.score }

// Crashes returns how many runs ended by leaving the road.
func (s *Session) Crashes() int { return s.crashes }

// Player returns the car.
func (s *Session) Player() *vehicle.Car { return s.player }

// Board returns the shared high score board.
func (s *Session) Board() *scores.Board { return s.board }

// Flow returns the high score entry flow.
func (s *Session) Flow() *scores.EntryFlow { return s.flow }

// Config returns the session tuning.
func (s *Session) Config() Config { return s.cfg }

// Segments returns a copy of the road, or nil when no run is in progress.
func (s *Session) Segments() []road.Segment {
	if !s.playing {
		return nil
	}
	return slices.Clone(s.road)
}

// RoadCenter returns the center of the most recently generated segment.
func (s *Session) RoadCenter() float64 {
	if s.gen == nil {
		return float64(s.cfg.ScreenWidth) / 2
	}
	return s.gen.CenterX()
}
