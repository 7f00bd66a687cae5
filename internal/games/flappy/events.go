package flappy

// Result summarizes a finished round.
type Result struct {
	Score     int
	MaxScore  int
	NewRecord bool
	Ticks     int // Simulation ticks spent playing
}

// Events receives one-shot notifications from the game.
// Callbacks run synchronously on the game's goroutine and must not call back
// into the game.
type Events interface {
	OnStart()
	OnFlap()
	OnScore(score int)
	OnNewRecord(maxScore int)
	OnGameOver(result Result)
}

// NopEvents ignores every notification. Embed it to implement a subset.
type NopEvents struct{}

func (NopEvents) OnStart()          {}
func (NopEvents) OnFlap()           {}
func (NopEvents) OnScore(int)       {}
func (NopEvents) OnNewRecord(int)   {}
func (NopEvents) OnGameOver(Result) {}

// fanout forwards every notification to each listener in order.
type fanout []Events

// Fanout combines listeners into one. Nil listeners are skipped.
func Fanout(listeners ...Events) Events {
	out := make(fanout, 0, len(listeners))
	for _, l := range listeners {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (f fanout) OnStart() {
	for _, l := range f {
		l.OnStart()
	}
}

func (f fanout) OnFlap() {
	for _, l := range f {
		l.OnFlap()
	}
}

func (f fanout) OnScore(score int) {
	for _, l := range f {
		l.OnScore(score)
	}
}

func (f fanout) OnNewRecord(maxScore int) {
	for _, l := range f {
		l.OnNewRecord(maxScore)
	}
}

func (f fanout) OnGameOver(result Result) {
	for _, l := range f {
		l.OnGameOver(result)
	}
}
