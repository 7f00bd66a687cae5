package loop

import (
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newSimGame(seed int64) *flappy.Game {
	return flappy.New(config.DefaultFlappyConfig(), flappy.WithSeed(seed))
}

func TestSimulateFallingRounds(t *testing.T) {
	g := newSimGame(1)

	report := Simulate(g, SimOptions{Rounds: 3, Logger: log.New(io.Discard)})

	if len(report.Rounds) != 3 {
		t.Fatalf("rounds = %d, expected 3", len(report.Rounds))
	}
	for i, r := range report.Rounds {
		if r.Score != 0 {
			t.Errorf("round %d score = %d, a falling player cannot score", i, r.Score)
		}
		if r.Ticks != report.Rounds[0].Ticks {
			t.Errorf("round %d lasted %d ticks, expected %d like the first", i, r.Ticks, report.Rounds[0].Ticks)
		}
	}
	if report.Rounds[0].Ticks == 0 {
		t.Error("a round should last at least one tick")
	}
	if g.Phase() != flappy.PhaseGameOver {
		t.Errorf("phase = %v, expected the last round to stay over", g.Phase())
	}
}

func TestSimulateDurationLimit(t *testing.T) {
	g := newSimGame(1)

	report := Simulate(g, SimOptions{Duration: 10 * time.Second, Logger: log.New(io.Discard)})

	if report.Elapsed < 10*time.Second || report.Elapsed > 10*time.Second+time.Second/60 {
		t.Errorf("elapsed = %v, expected just over 10s", report.Elapsed)
	}
	if report.Frames != 601 {
		t.Errorf("frames = %d, expected 601", report.Frames)
	}
	if len(report.Rounds) == 0 {
		t.Error("a falling player should finish several rounds in 10s")
	}
}

func TestSimulateAutopilotDefaultLimit(t *testing.T) {
	g := newSimGame(3)

	// More rounds than ten minutes of play can finish, so only the limit stops the run.
	report := Simulate(g, SimOptions{Rounds: 1000, Autopilot: true, Logger: log.New(io.Discard)})

	frame := time.Second / 60
	if report.Elapsed < DefaultAutopilotLimit || report.Elapsed >= DefaultAutopilotLimit+frame {
		t.Errorf("elapsed = %v, expected the run to stop at %v", report.Elapsed, DefaultAutopilotLimit)
	}
	if len(report.Rounds) >= 1000 {
		t.Errorf("rounds = %d, the time limit should have stopped the run first", len(report.Rounds))
	}
}

func TestSimulateDeterministic(t *testing.T) {
	opts := SimOptions{Duration: 30 * time.Second, Autopilot: true, Logger: log.New(io.Discard)}

	a := Simulate(newSimGame(5), opts)
	b := Simulate(newSimGame(5), opts)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", a, b)
	}
	if a.Spawned == 0 {
		t.Error("autopilot run should spawn pipes")
	}
}

func TestSimReportBest(t *testing.T) {
	r := SimReport{Rounds: []flappy.Result{{Score: 2}, {Score: 7}, {Score: 4}}}
	if r.Best() != 7 {
		t.Errorf("Best() = %d, expected 7", r.Best())
	}
	if (SimReport{}).Best() != 0 {
		t.Error("Best() without rounds should be 0")
	}
}
