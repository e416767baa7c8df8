package theme

import "github.com/vovakirdan/tui-2048/internal/core"

// Rematch button size and its gap to the bottom edge, in pixels.
const (
	RematchWidth  = 150
	RematchHeight = 50
	rematchMargin = 50
)

// RematchButton returns the game-over rematch button for a window of the
// given size: centered horizontally, just above the bottom edge.
func RematchButton(width, height int) core.Rect {
	return core.NewRect((width-RematchWidth)/2, height-RematchHeight-rematchMargin, RematchWidth, RematchHeight)
}
