package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Recorder persists game results as they happen: the max score on every new
// record and a score row for every finished round that scored.
// Write failures are logged and never reach the game.
type Recorder struct {
	flappy.NopEvents

	store  *Store
	key    string
	gameID string
	player string
	logger *log.Logger
}

var _ flappy.Events = (*Recorder)(nil)

// NewRecorder creates a recorder writing to store. key is the max score key.
func NewRecorder(store *Store, key, gameID, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{
		store:  store,
		key:    key,
		gameID: gameID,
		player: player,
		logger: logger,
	}
}

func (r *Recorder) OnNewRecord(maxScore int) {
	if err := r.store.SetMaxScore(r.key, maxScore); err != nil {
		r.logger.Warn("could not persist max score", "error", err)
	}
}

func (r *Recorder) OnGameOver(res flappy.Result) {
	if res.Score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(r.gameID, r.player, res.Score); err != nil {
		r.logger.Warn("could not save score", "error", err)
	}
}
