package loop

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// DefaultAutopilotLimit bounds autopilot runs that set no Duration, since a
// good autopilot may never die.
const DefaultAutopilotLimit = 10 * time.Minute

// SimOptions configures a headless run.
type SimOptions struct {
	Rounds    int           // Stop after this many finished rounds, 0 for no limit
	Duration  time.Duration // Stop after this much simulated time, 0 for no limit (DefaultAutopilotLimit with Autopilot)
	FrameRate int           // Host frames per simulated second, defaults to 60
	Autopilot bool          // Flap automatically; otherwise the player only falls
	Logger    *log.Logger
}

// SimReport summarizes a headless run.
type SimReport struct {
	Rounds   []flappy.Result
	Frames   uint64
	Elapsed  time.Duration
	Spawned  int
	MaxScore int
}

// Best returns the highest round score, or 0 without rounds.
func (r SimReport) Best() int {
	best := 0
	for _, res := range r.Rounds {
		best = max(best, res.Score)
	}
	return best
}

// Simulate drives g on a manual clock as fast as possible. Each round is
// started with a trigger and, once over, replayed from idle. A round still
// running when time runs out is not reported.
func Simulate(g *flappy.Game, opts SimOptions) SimReport {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.Rounds <= 0 && opts.Duration <= 0 {
		opts.Rounds = 1
	}
	if opts.Autopilot && opts.Duration <= 0 {
		opts.Duration = DefaultAutopilotLimit
	}

	src := clock.NewManualTime(time.Unix(0, 0))
	driverOpts := []Option{WithLogger(opts.Logger)}
	if opts.Autopilot {
		driverOpts = append(driverOpts, WithAutopilot(flappy.NewAutopilot()))
	}
	d := NewDriver(g, clock.New(src, clock.DefaultMaxFrameDelta), driverOpts...)

	frame := time.Second / time.Duration(opts.FrameRate)
	var report SimReport

	for {
		if opts.Duration > 0 && report.Elapsed >= opts.Duration {
			break
		}

		in := core.NewInputFrame()
		if g.Phase() != flappy.PhasePlaying {
			// From game over the first trigger resets, the next one starts.
			in.Push(core.ActionTrigger)
		}

		src.Advance(frame)
		report.Elapsed += frame
		stats := d.Frame(in)
		if stats.Spawned {
			report.Spawned++
		}

		if st := g.State(); st.GameOver {
			report.Rounds = append(report.Rounds, flappy.Result{
				Score:     st.Score,
				MaxScore:  st.MaxScore,
				NewRecord: g.NewRecord(),
				Ticks:     g.Ticks(),
			})
			if opts.Rounds > 0 && len(report.Rounds) >= opts.Rounds {
				break
			}
		}
	}

	report.Frames = d.Frames()
	report.MaxScore = g.MaxScore()
	return report
}
