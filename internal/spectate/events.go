package spectate

import "github.com/vovakirdan/tui-flappy/internal/games/flappy"

// Events forwards game notifications to spectators. Flaps are not sent.
type Events struct {
	flappy.NopEvents
	hub *Hub
}

var _ flappy.Events = (*Events)(nil)

// NewEvents creates a listener publishing to hub.
func NewEvents(hub *Hub) *Events {
	return &Events{hub: hub}
}

func (e *Events) OnStart() {
	e.publish(Event{Kind: "start"})
}

func (e *Events) OnScore(score int) {
	e.publish(Event{Kind: "score", Score: score})
}

func (e *Events) OnNewRecord(maxScore int) {
	e.publish(Event{Kind: "record", MaxScore: maxScore})
}

func (e *Events) OnGameOver(r flappy.Result) {
	e.publish(Event{Kind: "game_over", Score: r.Score, MaxScore: r.MaxScore, NewRecord: r.NewRecord})
}

func (e *Events) publish(ev Event) {
	if err := e.hub.Publish(MsgEvent, ev); err != nil {
		e.hub.logger.Debug("could not publish event", "kind", ev.Kind, "error", err)
	}
}
