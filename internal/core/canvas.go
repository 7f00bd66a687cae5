package core

// Canvas is a 2D drawing surface addressed in playfield units.
// Games render into it once per frame; the platform decides how playfield
// units map to pixels or terminal cells.
type Canvas interface {
	// Clear erases the whole surface.
	Clear()

	// FillRect paints the given rectangle.
	FillRect(r Rect, c Color)

	// DrawText writes text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
}
