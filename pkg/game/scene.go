package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen driven by the frame loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one frame.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
