// Package render defines the drawing and game loop contracts that
// abstract the underlying display backend. This allows swapping
// backends (window, terminal) without changing game logic.
package render

import (
	"errors"
	"image/color"
)

// ErrStop is returned from Game.Update to end the run loop without a
// failure.
var ErrStop = errors.New("stop requested")

// Surface is the drawing target for one frame. Coordinates are pixels
// in the game's logical resolution; a backend that displays at another
// resolution scales the rectangles itself.
type Surface interface {
	// Clear erases the previous frame.
	Clear()

	// FillRect paints the axis-aligned rectangle spanning x0..x1
	// horizontally and y0..y1 vertically with the given color.
	FillRect(x0, y0, x1, y1 float64, clr color.Color)
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update advances the game logic one tick. Returning ErrStop ends
	// the run loop cleanly; any other error aborts it.
	Update() error

	// Draw draws the current frame onto the surface. It must not
	// change game state.
	Draw(dst Surface)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// DebugStringer is implemented by games that expose a one-line
// diagnostic for backends to overlay on the frame.
type DebugStringer interface {
	DebugString() string
}

// Engine represents the game engine that manages the window and the
// game loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
