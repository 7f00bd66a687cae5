package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

var (
	flagSimRounds    int
	flagSimDuration  time.Duration
	flagSimAutopilot bool
	flagSimFPS       int
)


var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless rounds",
	Long: `Run the game without a terminal on a simulated clock and print the
result of every round. Runs are reproducible with --seed. Nothing is saved.
Autopilot runs stop after 10 simulated minutes unless --duration is given.

Examples:
  flappy sim --seed 42
  flappy sim --rounds 20 --autopilot
  flappy sim --duration 5m --autopilot --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRounds, "rounds", 1, "Rounds to play (with only --duration set, play until time runs out)")
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 0, "Simulated time limit (0 = none)")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Flap automatically")
	simCmd.Flags().IntVar(&flagSimFPS, "fps", 60, "Simulated host frame rate")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "flappy-sim")
	if err != nil {
		return err
	}
	duration := flagSimDuration
	rounds := flagSimRounds
	if flagSimDuration > 0 && !cmd.Flags().Changed("rounds") {
		rounds = 0
	}
	if rounds <= 0 && duration <= 0 {
		return fmt.Errorf("sim needs --rounds or --duration")
	}

	s := seed()
	game := flappy.New(cfg,
		flappy.WithSeed(s),
		flappy.WithEvents(loop.NewLogEvents(logger)),
	)

	report := loop.Simulate(game, loop.SimOptions{
		Rounds:    rounds,
		Duration:  duration,
		FrameRate: flagSimFPS,
		Autopilot: flagSimAutopilot,
		Logger:    logger,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %d\n\n", s)
	fmt.Fprintf(out, "  %-5s  %-6s  %-8s  %s\n", "Round", "Score", "Ticks", "Record")
	for i, r := range report.Rounds {
		record := ""
		if r.NewRecord {
			record = "yes"
		}
		fmt.Fprintf(out, "  %-5d  %-6d  %-8d  %s\n", i+1, r.Score, r.Ticks, record)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Max score: %d  Pipes: %d  Frames: %d  Simulated: %s\n",
		report.Best(), report.MaxScore, report.Spawned, report.Frames, report.Elapsed.Round(time.Millisecond))
	return nil
}
