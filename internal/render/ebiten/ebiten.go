// Package ebiten implements the render interfaces on Ebitengine. This
// is the default backend: a fixed-size window updated at 60 ticks per
// second.
package ebiten

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/corridor9/internal/input"
	"chosenoffset.com/corridor9/internal/render"
)

// EbitenSurface wraps an ebiten.Image to implement the render.Surface
// interface.
type EbitenSurface struct {
	img *ebiten.Image
}

// WrapImage wraps an existing ebiten.Image as a render.Surface.
func WrapImage(img *ebiten.Image) render.Surface {
	return &EbitenSurface{img: img}
}

// Clear erases the image to transparent black.
func (s *EbitenSurface) Clear() {
	s.img.Clear()
}

// FillRect paints an axis-aligned rectangle on the image.
func (s *EbitenSurface) FillRect(x0, y0, x1, y1 float64, clr color.Color) {
	vector.DrawFilledRect(s.img, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), clr, false)
}

// EbitenInput implements input.Source by polling the keyboard state.
type EbitenInput struct {
	bindings map[input.Intent][]ebiten.Key
}

// NewInput returns an input source with the default key map: WASD to
// move and strafe, arrow keys to turn, escape to quit.
func NewInput() *EbitenInput {
	return &EbitenInput{
		bindings: map[input.Intent][]ebiten.Key{
			input.IntentForward:     {ebiten.KeyW},
			input.IntentBackward:    {ebiten.KeyS},
			input.IntentStrafeLeft:  {ebiten.KeyA},
			input.IntentStrafeRight: {ebiten.KeyD},
			input.IntentTurnLeft:    {ebiten.KeyArrowLeft},
			input.IntentTurnRight:   {ebiten.KeyArrowRight},
			input.IntentQuit:        {ebiten.KeyEscape},
		},
	}
}

// Bind replaces the keys attached to an intent.
func (m *EbitenInput) Bind(in input.Intent, keys ...ebiten.Key) {
	m.bindings[in] = keys
}

// IsActive reports whether any key bound to the intent is held down.
func (m *EbitenInput) IsActive(in input.Intent) bool {
	for _, key := range m.bindings[in] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct {
	debug bool
}

// NewEngine creates a new Ebiten-based game engine. With debug set,
// frames carry a diagnostic overlay in the top-left corner.
func NewEngine(debug bool) render.Engine {
	return &EbitenEngine{debug: debug}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game, debug: e.debug})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game  render.Game
	debug bool
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrStop) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenSurface{img: screen})

	if a.debug {
		line := fmt.Sprintf("%.0f fps", ebiten.ActualFPS())
		if ds, ok := a.game.(render.DebugStringer); ok {
			line += "  " + ds.DebugString()
		}
		ebitenutil.DebugPrintAt(screen, line, 4, 4)
	}
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
