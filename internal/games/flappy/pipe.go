package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Span is a vertical range [Top, Bottom] in playfield units.
type Span struct {
	Top, Bottom float64
}

// PipeRect is the collision shape of a pipe: two solid sections sharing
// the same horizontal range, with the gap window between them.
type PipeRect struct {
	Left, Right float64
	Top         Span // From the playfield top down to the gap
	Bottom      Span // From the gap down to the playfield bottom
}

// Pipe is a vertical obstacle scrolling from right to left.
type Pipe struct {
	X             float64 // Left edge
	TopSection    float64 // Height of the upper solid section
	BottomSection float64 // Height of the lower solid section
	Width         float64

	speed       float64
	fieldHeight float64
	active      bool
}

// NewPipe spawns a pipe at the right edge of the playfield with a random gap.
// The playfield is divided into cfg.Pipes.Count units; two of them form the gap
// and the upper section takes between 2 and Count-2 units.
func NewPipe(cfg config.FlappyConfig, rng *rand.Rand) *Pipe {
	count := cfg.Pipes.Count
	top := 2 + rng.Intn(count-3)

	return &Pipe{
		X:             cfg.Playfield.Width,
		TopSection:    float64(top) * cfg.Pipes.UnitHeight,
		BottomSection: float64(count-top-2) * cfg.Pipes.UnitHeight,
		Width:         cfg.Pipes.Width,
		speed:         cfg.Pipes.Speed,
		fieldHeight:   cfg.Playfield.Height,
		active:        true,
	}
}

// Update moves the pipe left by one fixed step.
func (p *Pipe) Update(dt float64) {
	p.X -= p.speed * dt
}

// Visible reports whether any part of the pipe is still on or right of the left edge.
func (p *Pipe) Visible() bool {
	return p.X+p.Width >= 0
}

// Active reports whether the pipe is still part of the course.
func (p *Pipe) Active() bool {
	return p.active
}

// deactivate retires the pipe once it has been evicted.
func (p *Pipe) deactivate() {
	p.active = false
}

// GapTop returns the y coordinate where the gap window starts.
func (p *Pipe) GapTop() float64 {
	return p.TopSection
}

// GapBottom returns the y coordinate where the gap window ends.
func (p *Pipe) GapBottom() float64 {
	return p.fieldHeight - p.BottomSection
}

// Rect returns the pipe's collision shape.
func (p *Pipe) Rect() PipeRect {
	return PipeRect{
		Left:   p.X,
		Right:  p.X + p.Width,
		Top:    Span{Top: 0, Bottom: p.TopSection},
		Bottom: Span{Top: p.fieldHeight - p.BottomSection, Bottom: p.fieldHeight},
	}
}
