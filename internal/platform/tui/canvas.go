package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// FillRune is drawn for every cell covered by a filled rectangle.
const FillRune = '█'

// ScreenCanvas draws playfield-unit primitives onto a terminal cell buffer,
// scaling the playfield to fill the screen.
type ScreenCanvas struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
}

var _ core.Canvas = (*ScreenCanvas)(nil)

// NewScreenCanvas maps a fieldW x fieldH playfield onto screen.
func NewScreenCanvas(screen *core.Screen, fieldW, fieldH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

func (c *ScreenCanvas) cellX(v float64) float64 {
	return v * float64(c.screen.Width()) / c.fieldW
}

func (c *ScreenCanvas) cellY(v float64) float64 {
	return v * float64(c.screen.Height()) / c.fieldH
}

// Clear erases the whole screen.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// FillRect paints every cell the rectangle touches. A non-empty rectangle
// always covers at least one cell.
func (c *ScreenCanvas) FillRect(r core.Rect, col core.Color) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	x0, x1 := cellSpan(c.cellX(r.Left), c.cellX(r.Right))
	y0, y1 := cellSpan(c.cellY(r.Top), c.cellY(r.Bottom))

	x0 = core.Clamp(x0, 0, c.screen.Width())
	x1 = core.Clamp(x1, 0, c.screen.Width())
	y0 = core.Clamp(y0, 0, c.screen.Height())
	y1 = core.Clamp(y1, 0, c.screen.Height())

	c.screen.DrawBox(core.NewBox(x0, y0, x1-x0, y1-y0), FillRune, col)
}

// cellSpan returns the half-open cell range covering [from, to).
func cellSpan(from, to float64) (int, int) {
	start := int(math.Floor(from))
	end := int(math.Ceil(to))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// DrawText writes text at the cell nearest to (x, y), shifted left if it
// would run off the right edge.
func (c *ScreenCanvas) DrawText(x, y float64, text string, col core.Color) {
	n := len([]rune(text))

	cx := int(math.Round(c.cellX(x)))
	if cx+n > c.screen.Width() {
		cx = c.screen.Width() - n
	}
	cx = max(cx, 0)
	cy := core.Clamp(int(math.Round(c.cellY(y))), 0, max(c.screen.Height()-1, 0))

	c.screen.DrawText(cx, cy, text, col)
}
