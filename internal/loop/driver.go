// Package loop hosts a game on a frame callback.
// A host calls Driver.Frame once per rendered frame; the driver applies the
// queued input, feeds elapsed real time to the fixed-step simulation and runs
// the pipe spawn timer on the same call, so the game is only ever touched
// from one goroutine.
package loop

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// FrameStats describes what one frame did.
type FrameStats struct {
	Elapsed float64 // Seconds of real time fed to the simulation
	Ticks   int     // Fixed steps run
	Spawned bool    // Whether the spawn timer fired
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for timer diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithAutopilot lets the driver flap on the player's behalf.
func WithAutopilot(ap flappy.Autopilot) Option {
	return func(d *Driver) {
		d.autopilot = &ap
	}
}

// Driver runs a game from a host's frame callback.
type Driver struct {
	game      *flappy.Game
	clock     *clock.Clock
	logger    *log.Logger
	autopilot *flappy.Autopilot

	// Spawn timer. Armed while a round is running; while paused the
	// remaining delay is held and re-applied on resume.
	armed     bool
	deadline  time.Time
	held      bool
	remaining time.Duration

	frames uint64
}

// NewDriver creates a driver for g, reading time from c.
func NewDriver(g *flappy.Game, c *clock.Clock, opts ...Option) *Driver {
	d := &Driver{
		game:   g,
		clock:  c,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Game returns the hosted game.
func (d *Driver) Game() *flappy.Game {
	return d.game
}

// Frames returns the number of frames driven so far.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Apply forwards a game command. Host-level actions are ignored and reported
// as unhandled.
func (d *Driver) Apply(a core.Action) bool {
	switch a {
	case core.ActionTrigger:
		d.game.Trigger()
	case core.ActionFlap:
		d.game.Flap()
	case core.ActionPause:
		d.game.TogglePause()
	default:
		return false
	}
	return true
}

// Frame applies the queued actions in arrival order, advances the simulation
// by the real time elapsed since the previous frame and fires the spawn timer
// at most once.
func (d *Driver) Frame(in core.InputFrame) FrameStats {
	d.frames++

	for _, a := range in.Actions() {
		d.Apply(a)
	}

	if d.autopilot != nil && d.autopilot.ShouldFlap(d.game) {
		d.game.Flap()
	}

	now, elapsed := d.clock.Tick()
	stats := FrameStats{Elapsed: elapsed}
	stats.Ticks = d.game.Frame(elapsed)
	stats.Spawned = d.runSpawnTimer(now)
	return stats
}

func (d *Driver) runSpawnTimer(now time.Time) bool {
	switch {
	case d.game.Phase() != flappy.PhasePlaying:
		if d.armed {
			d.logger.Debug("spawn timer stopped", "phase", d.game.Phase())
		}
		d.armed = false
		d.held = false
		return false

	case d.game.Paused():
		if d.armed && !d.held {
			d.remaining = max(d.deadline.Sub(now), 0)
			d.held = true
		}
		return false

	case !d.armed:
		d.arm(now)
		return false
	}

	if d.held {
		d.deadline = now.Add(d.remaining)
		d.held = false
	}

	if now.Before(d.deadline) {
		return false
	}

	spawned := d.game.SpawnPipe()
	d.arm(now)
	return spawned
}

func (d *Driver) arm(now time.Time) {
	delay := d.game.NextSpawnDelay()
	d.armed = true
	d.deadline = now.Add(delay)
	d.logger.Debug("spawn timer armed", "in", delay)
}
