package loop

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// LogEvents writes game notifications to a structured logger.
type LogEvents struct {
	logger *log.Logger
}

// NewLogEvents creates a listener logging to l, or to the default logger if l is nil.
func NewLogEvents(l *log.Logger) *LogEvents {
	if l == nil {
		l = log.Default()
	}
	return &LogEvents{logger: l}
}

func (e *LogEvents) OnStart() {
	e.logger.Info("round started")
}

func (e *LogEvents) OnFlap() {
	e.logger.Debug("flap")
}

func (e *LogEvents) OnScore(score int) {
	e.logger.Debug("pipe passed", "score", score)
}

func (e *LogEvents) OnNewRecord(maxScore int) {
	e.logger.Info("new record", "max_score", maxScore)
}

func (e *LogEvents) OnGameOver(r flappy.Result) {
	e.logger.Info("game over",
		"score", r.Score,
		"max_score", r.MaxScore,
		"new_record", r.NewRecord,
		"ticks", r.Ticks,
	)
}
