package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player is the bird: a rectangle falling under gravity and pushed up by flaps.
type Player struct {
	X, Y         float64 // Top-left corner in playfield units
	Width        float64
	Height       float64
	Speed        float64 // Vertical speed, positive = down
	Acceleration float64 // Acceleration applied on the last update

	physics     config.Physics
	fieldHeight float64

	jumping bool
	gravity bool
	alive   bool
}

// NewPlayer creates a player vertically centered in the playfield.
func NewPlayer(cfg config.FlappyConfig) *Player {
	p := &Player{
		X:           cfg.Player.X,
		Y:           cfg.Playfield.Height/2 - cfg.Player.Height/2,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		physics:     cfg.Physics,
		fieldHeight: cfg.Playfield.Height,
		alive:       true,
	}
	p.latchBounds()
	return p
}

// Flap requests an upward impulse on the next update.
func (p *Player) Flap() {
	p.jumping = true
}

// Jumping reports whether a flap is waiting to be applied.
func (p *Player) Jumping() bool {
	return p.jumping
}

// EnableGravity turns gravity on for the rest of the player's life.
func (p *Player) EnableGravity() {
	p.gravity = true
}

// GravityEnabled reports whether gravity has been switched on.
func (p *Player) GravityEnabled() bool {
	return p.gravity
}

// Update integrates one fixed step of dt seconds.
// The acceleration is added to the speed both raw and scaled by dt; trajectories
// and tuning values depend on this, so it is kept as is.
func (p *Player) Update(dt float64) {
	if !p.gravity {
		return
	}
	p.latchBounds()

	p.Acceleration = p.physics.Gravity
	if p.jumping {
		p.Acceleration -= p.physics.Impulse
		p.jumping = false
	}

	speed := p.Speed + p.Acceleration + p.Acceleration*dt
	p.Speed = core.ClampF(speed, -p.physics.MaxSpeed, p.physics.MaxSpeed)
	p.Y += p.Speed * dt

	p.latchBounds()
}

// IsAlive reports whether the player is inside the playfield and has not been killed.
// Once false it stays false.
func (p *Player) IsAlive() bool {
	return p.alive && p.inBounds()
}

// Kill marks the player dead. There is no way back.
func (p *Player) Kill() {
	p.alive = false
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

func (p *Player) inBounds() bool {
	// out of top boundary
	if p.Y+p.Height <= 0 {
		return false
	}
	// out of bottom boundary
	return p.Y <= p.fieldHeight
}

func (p *Player) latchBounds() {
	if !p.inBounds() {
		p.alive = false
	}
}
