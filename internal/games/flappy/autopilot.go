package flappy

// DefaultHorizon is how many ticks ahead the autopilot looks.
const DefaultHorizon = 45

// Autopilot decides when to flap by simulating the player a few ticks ahead.
// It prefers not flapping and only flaps when that survives longer.
type Autopilot struct {
	Horizon int
}

// NewAutopilot creates an autopilot with the default look-ahead.
func NewAutopilot() Autopilot {
	return Autopilot{Horizon: DefaultHorizon}
}

// ShouldFlap reports whether the player should flap before the next tick.
func (a Autopilot) ShouldFlap(g *Game) bool {
	if g.Phase() != PhasePlaying || g.Paused() {
		return false
	}
	horizon := a.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	coast := a.survival(g, false, horizon)
	if coast >= horizon {
		return false
	}
	return a.survival(g, true, horizon) > coast
}

// survival returns how many ticks a copy of the player lasts against the
// current pipes, which keep moving at their speed.
func (a Autopilot) survival(g *Game, flap bool, horizon int) int {
	p := *g.player
	if flap {
		p.Flap()
	}

	dt := g.acc.Step()
	pipes := make([]PipeRect, 0, len(g.pipes))
	for _, pipe := range g.pipes {
		pipes = append(pipes, pipe.Rect())
	}

	for i := 0; i < horizon; i++ {
		p.Update(dt)
		if !p.IsAlive() {
			return i
		}
		body := p.Rect()
		for j := range pipes {
			shift := g.cfg.Pipes.Speed * dt
			pipes[j].Left -= shift
			pipes[j].Right -= shift
			if Collides(body, pipes[j]) {
				return i
			}
		}
	}
	return horizon
}
