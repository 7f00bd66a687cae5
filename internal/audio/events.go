package audio

import "github.com/vovakirdan/tui-flappy/internal/games/flappy"

// Player is anything that can play a sound.
type Player interface {
	Play(s Sound)
}

// Events plays a sound for each game notification. The record fanfare plays
// once per round.
type Events struct {
	flappy.NopEvents
	player   Player
	recorded bool
}

var _ flappy.Events = (*Events)(nil)

// NewEvents creates a listener playing through p.
func NewEvents(p Player) *Events {
	return &Events{player: p}
}

func (e *Events) OnStart() { e.recorded = false }

func (e *Events) OnFlap() { e.player.Play(SoundFlap) }

func (e *Events) OnScore(int) { e.player.Play(SoundScore) }

func (e *Events) OnNewRecord(int) {
	if e.recorded {
		return
	}
	e.recorded = true
	e.player.Play(SoundRecord)
}

func (e *Events) OnGameOver(flappy.Result) { e.player.Play(SoundGameOver) }
