package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestPipeGapInvariant(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rng := rand.New(rand.NewSource(7))
	unit := cfg.Pipes.UnitHeight

	seen := make(map[float64]bool)
	for i := 0; i < 1000; i++ {
		p := NewPipe(cfg, rng)

		if got := p.TopSection + p.BottomSection + 2*unit; got != cfg.Playfield.Height {
			t.Fatalf("top %f + bottom %f + gap = %f, expected %f", p.TopSection, p.BottomSection, got, cfg.Playfield.Height)
		}
		if p.TopSection < 2*unit || p.TopSection > float64(cfg.Pipes.Count-2)*unit {
			t.Fatalf("top section %f outside [%f, %f]", p.TopSection, 2*unit, float64(cfg.Pipes.Count-2)*unit)
		}
		if p.GapBottom()-p.GapTop() != 2*unit {
			t.Fatalf("gap height = %f, expected %f", p.GapBottom()-p.GapTop(), 2*unit)
		}
		seen[p.TopSection] = true
	}

	// Count 10 gives top sections of 2..8 units.
	if len(seen) != 7 {
		t.Errorf("saw %d distinct gap positions, expected 7", len(seen))
	}
}

func TestPipeSpawnsAtRightEdge(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipe(cfg, rand.New(rand.NewSource(1)))

	if p.X != cfg.Playfield.Width {
		t.Errorf("X = %f, expected %f", p.X, cfg.Playfield.Width)
	}
	if p.Width != cfg.Pipes.Width {
		t.Errorf("Width = %f, expected %f", p.Width, cfg.Pipes.Width)
	}
	if !p.Active() || !p.Visible() {
		t.Error("new pipe should be active and visible")
	}
}

func TestPipeMovesOneSecond(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipe(cfg, rand.New(rand.NewSource(1)))

	for i := 0; i < 60; i++ {
		p.Update(1.0 / 60)
	}

	want := cfg.Playfield.Width - cfg.Pipes.Speed
	if math.Abs(p.X-want) > 1e-9 {
		t.Errorf("X after 1s = %f, expected %f", p.X, want)
	}
}

func TestPipeVisibility(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipe(cfg, rand.New(rand.NewSource(1)))

	p.X = -p.Width
	if !p.Visible() {
		t.Error("pipe with right edge at 0 should still be visible")
	}
	p.X = -p.Width - 0.01
	if p.Visible() {
		t.Error("pipe past the left edge should not be visible")
	}
}

func TestPipeRect(t *testing.T) {
	p := &Pipe{X: 100, Width: 100, TopSection: 180, BottomSection: 300, fieldHeight: 600}
	r := p.Rect()

	want := PipeRect{
		Left:   100,
		Right:  200,
		Top:    Span{Top: 0, Bottom: 180},
		Bottom: Span{Top: 300, Bottom: 600},
	}
	if r != want {
		t.Errorf("Rect() = %+v, expected %+v", r, want)
	}
}

func TestCollides(t *testing.T) {
	// Gap window is y in (200, 320), x in [100, 200].
	pipe := PipeRect{
		Left:   100,
		Right:  200,
		Top:    Span{Top: 0, Bottom: 200},
		Bottom: Span{Top: 320, Bottom: 600},
	}

	tests := []struct {
		name   string
		player core.Rect
		hit    bool
	}{
		{"left of pipe at top section height", core.NewRect(0, 50, 50, 50), false},
		{"right of pipe at bottom section height", core.NewRect(201, 400, 50, 50), false},
		{"inside gap window", core.NewRect(120, 230, 50, 50), false},
		{"inside gap straddling left edge", core.NewRect(80, 230, 50, 50), false},
		{"touching left edge at top section", core.NewRect(50, 100, 50, 50), true},
		{"touching right edge at bottom section", core.NewRect(200, 400, 50, 50), true},
		{"beyond gap bottom", core.NewRect(120, 300, 50, 50), true},
		{"bottom touching gap bottom", core.NewRect(120, 270, 50, 50), true},
		{"top touching gap top", core.NewRect(120, 200, 50, 50), true},
		{"inside top section", core.NewRect(120, 50, 50, 50), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.player, pipe); got != tt.hit {
				t.Errorf("Collides(%+v) = %v, expected %v", tt.player, got, tt.hit)
			}
		})
	}
}

func TestCollidesNeedsHorizontalOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 1000; i++ {
		left := rng.Float64() * 800
		width := 1 + rng.Float64()*100
		pipe := PipeRect{
			Left:   left,
			Right:  left + width,
			Top:    Span{Top: 0, Bottom: rng.Float64() * 300},
			Bottom: Span{Top: 300 + rng.Float64()*300, Bottom: 600},
		}

		y := rng.Float64()*700 - 50
		h := 1 + rng.Float64()*100
		w := 1 + rng.Float64()*100
		var player core.Rect
		if rng.Intn(2) == 0 {
			player = core.NewRect(pipe.Left-w-0.001-rng.Float64()*100, y, w, h)
		} else {
			player = core.NewRect(pipe.Right+0.001+rng.Float64()*100, y, w, h)
		}

		if Collides(player, pipe) {
			t.Fatalf("Collides(%+v, %+v) = true without horizontal overlap", player, pipe)
		}
	}
}
