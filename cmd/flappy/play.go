package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/spectate"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagMute      bool
	flagVolume    float64
	flagSpectate  string
	flagAutopilot bool
	flagLogFile   string
	flagPlayer    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Click/Enter      - Start, or leave the game over screen
  Space/Up/W       - Flap
  P                - Pause
  M                - Mute
  Tab              - High scores
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Pipes come slowly at first, speeding up with the score
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, pipes keep the base interval

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --mute --log-file flappy.log --log-level debug
  flappy play --spectate :8080
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator stream on this address (e.g. :8080)")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the computer flap")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with your scores")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "flappy")
	if err != nil {
		return err
	}

	events := []flappy.Events{loop.NewLogEvents(logger)}

	maxScore := 0
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
		maxScore = store.MaxScore(cfg.Storage.MaxScoreKey)
		events = append(events, storage.NewRecorder(store, cfg.Storage.MaxScoreKey, flappy.GameID, flagPlayer, logger))
	}

	var sound *audio.SoundManager
	if !flagMute {
		sound = audio.NewSoundManager(flagVolume)
		if err := sound.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
			sound = nil
		} else {
			defer sound.Close()
			events = append(events, audio.NewEvents(sound))
		}
	}

	var hub *spectate.Hub
	if flagSpectate != "" {
		hub = spectate.NewHub(spectate.Hello{
			V:      spectate.ProtocolVersion,
			Game:   flappy.GameID,
			TickHz: cfg.Timing.FPS,
		}, logger)
		events = append(events, spectate.NewEvents(hub))

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			if err := hub.Serve(ctx, flagSpectate); err != nil {
				logger.Error("spectator endpoint stopped", "error", err)
			}
		}()
	}

	s := seed()
	game := flappy.New(cfg,
		flappy.WithSeed(s),
		flappy.WithMaxScore(maxScore),
		flappy.WithEvents(flappy.Fanout(events...)),
	)

	driverOpts := []loop.Option{loop.WithLogger(logger)}
	if flagAutopilot {
		driverOpts = append(driverOpts, loop.WithAutopilot(flappy.NewAutopilot()))
	}
	driver := loop.NewDriver(game, clock.New(clock.SystemTime{}, cfg.Timing.MaxFrameDelta), driverOpts...)

	width, height := tui.DefaultScreenW, tui.DefaultScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Info("starting", "seed", s, "difficulty", flagDifficulty, "max_score", maxScore)
	return tui.Run(driver, tui.ModelOptions{
		Store:  store,
		Hub:    hub,
		Sound:  sound,
		Width:  width,
		Height: height,
		Logger: logger,
	})
}
