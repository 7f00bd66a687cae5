package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collides reports whether the player rectangle hits the pipe.
// Without horizontal overlap there is never a hit. With it, the player must
// be strictly inside the gap window; touching either section counts as a hit.
func Collides(player core.Rect, pipe PipeRect) bool {
	if !player.OverlapsX(core.Rect{Left: pipe.Left, Right: pipe.Right}) {
		return false
	}
	return player.Bottom >= pipe.Bottom.Top || player.Top <= pipe.Top.Bottom
}
