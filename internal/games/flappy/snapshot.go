package flappy

// PlayerSnapshot is the serializable view of the player.
type PlayerSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
	Speed  float64 `json:"speed"`
	Alive  bool    `json:"alive"`
}

// PipeSnapshot is the serializable view of one pipe.
type PipeSnapshot struct {
	X         float64 `json:"x"`
	Width     float64 `json:"w"`
	GapTop    float64 `json:"gapTop"`
	GapBottom float64 `json:"gapBottom"`
}

// Snapshot is a read-only copy of the game state for rendering and spectators.
type Snapshot struct {
	Phase     string         `json:"phase"`
	Paused    bool           `json:"paused"`
	Tick      int            `json:"tick"`
	Score     int            `json:"score"`
	MaxScore  int            `json:"maxScore"`
	NewRecord bool           `json:"newRecord"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Player    PlayerSnapshot `json:"player"`
	Pipes     []PipeSnapshot `json:"pipes"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]PipeSnapshot, 0, len(g.pipes))
	for _, p := range g.pipes {
		pipes = append(pipes, PipeSnapshot{
			X:         p.X,
			Width:     p.Width,
			GapTop:    p.GapTop(),
			GapBottom: p.GapBottom(),
		})
	}

	return Snapshot{
		Phase:     g.phase.String(),
		Paused:    g.paused,
		Tick:      g.tickCount,
		Score:     g.score,
		MaxScore:  g.maxScore,
		NewRecord: g.newRecord,
		Width:     g.cfg.Playfield.Width,
		Height:    g.cfg.Playfield.Height,
		Player: PlayerSnapshot{
			X:      g.player.X,
			Y:      g.player.Y,
			Width:  g.player.Width,
			Height: g.player.Height,
			Speed:  g.player.Speed,
			Alive:  g.player.IsAlive(),
		},
		Pipes: pipes,
	}
}
