package loop

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const frameDur = time.Second / 60

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	t   *testing.T
	src *clock.ManualTime
	d   *Driver
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	src := clock.NewManualTime(epoch)
	g := flappy.New(config.DefaultFlappyConfig(), flappy.WithSeed(3))
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return &harness{
		t:   t,
		src: src,
		d:   NewDriver(g, clock.New(src, clock.DefaultMaxFrameDelta), opts...),
	}
}

// press runs one frame carrying the given actions.
func (h *harness) press(actions ...core.Action) FrameStats {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Push(a)
	}
	h.src.Advance(frameDur)
	return h.d.Frame(in)
}

// run drives empty frames for roughly d of real time and counts spawns.
func (h *harness) run(d time.Duration) int {
	spawns := 0
	for i := 0; i < int(d/frameDur); i++ {
		if h.press().Spawned {
			spawns++
		}
	}
	return spawns
}

func (h *harness) game() *flappy.Game {
	return h.d.Game()
}

func TestDriverIdleNeverSpawns(t *testing.T) {
	h := newHarness(t)
	if n := h.run(10 * time.Second); n != 0 {
		t.Errorf("spawned %d pipes while idle", n)
	}
	if h.d.Frames() != 600 {
		t.Errorf("frames = %d, expected 600", h.d.Frames())
	}
}

func TestDriverApply(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		action  core.Action
		handled bool
	}{
		{core.ActionTrigger, true},
		{core.ActionFlap, true},
		{core.ActionPause, true},
		{core.ActionQuit, false},
		{core.ActionScreenshot, false},
		{core.ActionScoreboard, false},
	}
	for _, tt := range tests {
		if got := h.d.Apply(tt.action); got != tt.handled {
			t.Errorf("Apply(%v) = %v, expected %v", tt.action, got, tt.handled)
		}
	}
}

func TestDriverSpawnsOnInterval(t *testing.T) {
	h := newHarness(t, WithAutopilot(flappy.NewAutopilot()))
	h.press(core.ActionTrigger)

	if n := h.run(1900 * time.Millisecond); n != 0 {
		t.Fatalf("spawned %d pipes before the first interval", n)
	}
	if n := h.run(200 * time.Millisecond); n != 1 {
		t.Fatalf("spawned %d pipes around 2s, expected 1", n)
	}
	if n := h.run(1800 * time.Millisecond); n != 0 {
		t.Fatalf("spawned %d pipes before the second interval", n)
	}
	if n := h.run(200 * time.Millisecond); n != 1 {
		t.Fatalf("spawned %d pipes around 4s, expected 1", n)
	}

	if h.game().Phase() != flappy.PhasePlaying {
		t.Fatalf("autopilot lost the round early, phase = %v", h.game().Phase())
	}
	if len(h.game().Pipes()) != 2 {
		t.Errorf("pipes = %d, expected 2", len(h.game().Pipes()))
	}
}

func TestDriverPauseHoldsSpawnTimer(t *testing.T) {
	h := newHarness(t, WithAutopilot(flappy.NewAutopilot()))
	h.press(core.ActionTrigger)
	h.run(time.Second)

	h.press(core.ActionPause)
	y := h.game().Player().Y
	if n := h.run(3 * time.Second); n != 0 {
		t.Fatalf("spawned %d pipes while paused", n)
	}
	if h.game().Player().Y != y {
		t.Error("player moved while paused")
	}

	h.press(core.ActionPause)
	if n := h.run(900 * time.Millisecond); n != 0 {
		t.Fatalf("spawned %d pipes before the held delay ran out", n)
	}
	if n := h.run(200 * time.Millisecond); n != 1 {
		t.Fatalf("spawned %d pipes after resume, expected 1", n)
	}
}

func TestDriverGameOverStopsTimer(t *testing.T) {
	h := newHarness(t, WithAutopilot(flappy.NewAutopilot()))
	h.press(core.ActionTrigger)
	h.run(500 * time.Millisecond)

	h.game().Player().Kill()
	h.press()
	if h.game().Phase() != flappy.PhaseGameOver {
		t.Fatalf("phase = %v, expected game over", h.game().Phase())
	}
	if h.d.armed {
		t.Error("spawn timer should be stopped on game over")
	}
	if n := h.run(5 * time.Second); n != 0 {
		t.Fatalf("spawned %d pipes after game over", n)
	}

	// Back to idle, then a new round gets a fresh full interval.
	h.press(core.ActionTrigger)
	h.press(core.ActionTrigger)
	if h.game().Phase() != flappy.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", h.game().Phase())
	}
	if n := h.run(1900 * time.Millisecond); n != 0 {
		t.Fatalf("spawned %d pipes early in the new round", n)
	}
	if n := h.run(200 * time.Millisecond); n != 1 {
		t.Fatalf("spawned %d pipes in the new round, expected 1", n)
	}
}

func TestDriverActionsInOrder(t *testing.T) {
	h := newHarness(t)

	// Start then flap in the same frame: the flap must reach the player.
	h.press(core.ActionTrigger, core.ActionFlap)
	if h.game().Phase() != flappy.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", h.game().Phase())
	}
	h.run(100 * time.Millisecond)
	if h.game().Player().Y >= 275 {
		t.Errorf("player y = %f, expected above the start after a flap", h.game().Player().Y)
	}
}
