package racer

// Autopilot steers the car toward the center of the road just ahead of it.
// It drives the headless simulator.
type Autopilot struct {
	session  *Session
	deadband float64
}

// NewAutopilot creates an autopilot for s and installs it as s's input.
func NewAutopilot(s *Session) *Autopilot {
	ap := &Autopilot{session: s, deadband: 3}
	s.input = ap
	return ap
}

// target returns the road center level with the car's nose.
func (a *Autopilot) target() (float64, bool) {
	nose := a.session.player.Bounds().Top()
	for _, seg := range a.session.road {
		if seg.Height == 0 {
			continue
		}
		if nose >= seg.Y && nose < seg.Bottom() {
			return seg.X, true
		}
	}
	return 0, false
}

func (a *Autopilot) Left() bool {
	x, ok := a.target()
	return ok && a.session.player.X > x+a.deadband
}

func (a *Autopilot) Right() bool {
	x, ok := a.target()
	return ok && a.session.player.X < x-a.deadband
}

func (a *Autopilot) Up() bool   { return false }
func (a *Autopilot) Down() bool { return false }
