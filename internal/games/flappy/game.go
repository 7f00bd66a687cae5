// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// The simulation runs on a fixed step fed by a time accumulator, so its
// outcome only depends on the seed and the sequence of commands, not on the
// host's frame rate.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the game's top-level state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Colors used when rendering.
const (
	PlayerColor = core.ColorBrightYellow
	PipeColor   = core.ColorGreen
	TextColor   = core.ColorBrightWhite
	RecordColor = core.ColorOrange
)

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the pipe generator. The same seed and command sequence
// reproduce the same game.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxScore sets the best score carried over from a previous session.
// Negative values are treated as zero.
func WithMaxScore(n int) Option {
	return func(g *Game) {
		g.maxScore = max(n, 0)
	}
}

// WithEvents registers a listener for game notifications.
func WithEvents(e Events) Option {
	return func(g *Game) {
		if e != nil {
			g.events = e
		}
	}
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg        config.FlappyConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	acc        *clock.Accumulator
	events     Events

	phase     Phase
	paused    bool
	player    *Player
	pipes     []*Pipe // Ordered by spawn time, head is the oldest
	score     int
	maxScore  int
	newRecord bool
	tickCount int // Ticks spent in PhasePlaying this round
}

// New creates a game in PhaseIdle. cfg must already be validated.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		acc:        clock.NewAccumulator(cfg.Timing.UpdateInterval()),
		events:     NopEvents{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.Reset()
	return g
}

// GameID identifies this game in the score store.
const GameID = "flappy"

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset puts a fresh player in the middle of the playfield, removes every
// pipe and clears the score. The max score survives.
func (g *Game) Reset() {
	g.phase = PhaseIdle
	g.paused = false
	g.player = NewPlayer(g.cfg)
	g.pipes = nil
	g.score = 0
	g.newRecord = false
	g.tickCount = 0
	g.acc.Reset()
}

// Trigger advances the phase: Idle starts the round, GameOver goes back to
// Idle. It does nothing while playing.
func (g *Game) Trigger() {
	switch g.phase {
	case PhaseIdle:
		g.phase = PhasePlaying
		g.player.EnableGravity()
		g.events.OnStart()
	case PhaseGameOver:
		g.Reset()
	}
}

// Flap pushes the player up on the next tick. Outside of PhasePlaying it
// acts as Trigger.
func (g *Game) Flap() {
	if g.phase != PhasePlaying {
		g.Trigger()
		return
	}
	if g.paused {
		return
	}
	g.player.Flap()
	g.events.OnFlap()
}

// TogglePause freezes or resumes a running round.
func (g *Game) TogglePause() {
	if g.phase != PhasePlaying {
		return
	}
	g.paused = !g.paused
}

// Frame banks elapsed seconds of real time and runs as many fixed ticks as
// fit. It returns the number of ticks run. Time passed while paused is
// dropped.
func (g *Game) Frame(elapsed float64) int {
	if g.paused {
		return 0
	}
	if maxDelta := g.cfg.Timing.MaxFrameDelta; maxDelta > 0 && elapsed > maxDelta {
		elapsed = maxDelta
	}
	g.acc.Add(elapsed)
	return g.acc.Drain(g.tick)
}

// Tick runs exactly one fixed step, bypassing the accumulator.
func (g *Game) Tick() {
	if g.paused {
		return
	}
	g.tick(g.acc.Step())
}

func (g *Game) tick(dt float64) {
	if g.phase != PhasePlaying {
		return
	}
	g.tickCount++

	// Only the oldest pipe can be under the player: pipes share one speed and
	// spawn far enough apart that they never overlap.
	if len(g.pipes) > 0 && Collides(g.player.Rect(), g.pipes[0].Rect()) {
		g.player.Kill()
	}
	if !g.player.IsAlive() {
		g.gameOver()
		return
	}

	g.player.Update(dt)
	if !g.player.IsAlive() {
		g.gameOver()
		return
	}

	if passed := g.advancePipes(dt); passed > 0 {
		g.score += passed
		g.events.OnScore(g.score)
		if g.score > g.maxScore {
			g.maxScore = g.score
			g.newRecord = true
			g.events.OnNewRecord(g.maxScore)
		}
	}
}

// advancePipes moves every pipe and evicts the ones that left the playfield,
// keeping spawn order. It returns how many were evicted.
func (g *Game) advancePipes(dt float64) int {
	kept := g.pipes[:0]
	evicted := 0
	for _, p := range g.pipes {
		p.Update(dt)
		if !p.Visible() {
			p.deactivate()
			evicted++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(g.pipes); i++ {
		g.pipes[i] = nil
	}
	g.pipes = kept
	return evicted
}

func (g *Game) gameOver() {
	g.phase = PhaseGameOver
	g.paused = false
	g.acc.Reset()
	for _, p := range g.pipes {
		p.deactivate()
	}
	g.pipes = nil
	g.events.OnGameOver(Result{
		Score:     g.score,
		MaxScore:  g.maxScore,
		NewRecord: g.newRecord,
		Ticks:     g.tickCount,
	})
}

// SpawnPipe adds a pipe at the right edge. It only has an effect while a
// round is running and not paused, and reports whether a pipe was added.
func (g *Game) SpawnPipe() bool {
	if g.phase != PhasePlaying || g.paused {
		return false
	}
	g.pipes = append(g.pipes, NewPipe(g.cfg, g.rng))
	return true
}

// NextSpawnDelay returns how long to wait before the next SpawnPipe, taking
// difficulty and jitter into account.
func (g *Game) NextSpawnDelay() time.Duration {
	d := g.difficulty.SpawnInterval(g.cfg.Pipes.SpawnInterval(), g.score, g.tickCount)
	if j := g.cfg.Pipes.SpawnJitterMS; j > 0 {
		d += time.Duration(g.rng.Intn(j+1)) * time.Millisecond
	}
	return d
}

// State is a compact summary of the game for hosts.
type State struct {
	Phase    Phase
	Score    int
	MaxScore int
	GameOver bool
	Paused   bool
}

// State returns the current summary.
func (g *Game) State() State {
	return State{
		Phase:    g.phase,
		Score:    g.score,
		MaxScore: g.maxScore,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Paused reports whether the round is paused.
func (g *Game) Paused() bool { return g.paused }

// Score returns the number of pipes passed this round.
func (g *Game) Score() int { return g.score }

// MaxScore returns the best score seen, including previous sessions.
func (g *Game) MaxScore() int { return g.maxScore }

// NewRecord reports whether this round has beaten the previous best.
func (g *Game) NewRecord() bool { return g.newRecord }

// Ticks returns the number of ticks played this round.
func (g *Game) Ticks() int { return g.tickCount }

// Player returns the player. Callers must not modify it.
func (g *Game) Player() *Player { return g.player }

// Pipes returns the live pipes, oldest first. Callers must not modify them.
func (g *Game) Pipes() []*Pipe { return g.pipes }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig { return g.cfg }

// Render draws the current state onto dst.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	w := g.cfg.Playfield.Width
	h := g.cfg.Playfield.Height

	for _, p := range g.pipes {
		if !p.Active() {
			continue
		}
		r := p.Rect()
		dst.FillRect(core.Rect{Top: r.Top.Top, Left: r.Left, Bottom: r.Top.Bottom, Right: r.Right}, PipeColor)
		dst.FillRect(core.Rect{Top: r.Bottom.Top, Left: r.Left, Bottom: r.Bottom.Bottom, Right: r.Right}, PipeColor)
	}

	if g.player.IsAlive() {
		dst.FillRect(g.player.Rect(), PlayerColor)
	}

	switch g.phase {
	case PhaseIdle:
		dst.DrawText(w/2-140, h/2+80, "Click or press Space to start", TextColor)
	case PhasePlaying:
		if g.newRecord {
			dst.DrawText(20, 12, "NEW RECORD!!", RecordColor)
		}
		dst.DrawText(w-140, 12, fmt.Sprintf("Score: %d", g.score), TextColor)
		if g.paused {
			dst.DrawText(w/2-30, h/2-60, "PAUSED", TextColor)
		}
	case PhaseGameOver:
		dst.DrawText(w/2-45, h/2-40, "GAME OVER", TextColor)
		dst.DrawText(w/2-65, h/2, fmt.Sprintf("MAX SCORE: %d", g.maxScore), TextColor)
		if g.newRecord {
			dst.DrawText(w/2-60, h/2+40, "NEW RECORD!!", RecordColor)
		}
	}
}
