// Package term implements the render interfaces on a tcell terminal
// screen. Logical pixel coordinates are scaled onto character cells,
// with colors approximated by a shade ramp and a 24-bit foreground.
package term

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/corridor9/internal/input"
	"chosenoffset.com/corridor9/internal/render"
)

const tickInterval = 16 * time.Millisecond

// shadeRamp orders fill runes from dimmest to brightest.
var shadeRamp = [...]rune{'░', '▒', '▓', '█'}

// TermSurface maps logical pixel rectangles onto terminal cells.
type TermSurface struct {
	screen   tcell.Screen
	logicalW float64
	logicalH float64
	cols     int
	rows     int
}

// Clear erases the previous frame.
func (s *TermSurface) Clear() {
	s.screen.Clear()
}

// FillRect paints every cell covered by the logical rectangle. Left
// and top edges round down, right and bottom edges round up, so a
// one-pixel slice still lands on a cell.
func (s *TermSurface) FillRect(x0, y0, x1, y1 float64, clr color.Color) {
	c0, c1 := span(x0, x1, s.logicalW, s.cols)
	r0, r1 := span(y0, y1, s.logicalH, s.rows)

	ch, style := cellFor(clr)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			s.screen.SetContent(c, r, ch, nil, style)
		}
	}
}

// span scales one logical axis interval to a half-open cell range,
// clamped to the terminal.
func span(lo, hi, logical float64, cells int) (int, int) {
	a := int(math.Floor(lo * float64(cells) / logical))
	b := int(math.Ceil(hi * float64(cells) / logical))
	if a < 0 {
		a = 0
	}
	if b > cells {
		b = cells
	}
	return a, b
}

// cellFor picks the fill rune and style approximating a pixel color.
// The rune carries the luminance, the foreground color the hue.
func cellFor(clr color.Color) (rune, tcell.Style) {
	r, g, b, _ := clr.RGBA()
	lum := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff

	idx := int(lum * float64(len(shadeRamp)))
	if idx >= len(shadeRamp) {
		idx = len(shadeRamp) - 1
	}

	fg := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	return shadeRamp[idx], tcell.StyleDefault.Foreground(fg)
}

// TermInput implements input.Source from terminal key events. A
// terminal reports key repeats rather than key state, so each event
// latches its intent for a short window; a held key arrives as a pulse
// train that keeps the latch fresh.
type TermInput struct {
	mu     sync.Mutex
	window time.Duration
	last   map[input.Intent]time.Time
	now    func() time.Time
}

// NewInput returns an input source with a 150ms repeat window.
func NewInput() *TermInput {
	return &TermInput{
		window: 150 * time.Millisecond,
		last:   make(map[input.Intent]time.Time),
		now:    time.Now,
	}
}

// Press latches the intent as of now.
func (m *TermInput) Press(in input.Intent) {
	if in == input.IntentNone {
		return
	}
	m.mu.Lock()
	m.last[in] = m.now()
	m.mu.Unlock()
}

// IsActive reports whether the intent was pressed within the window.
func (m *TermInput) IsActive(in input.Intent) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.last[in]
	return ok && m.now().Sub(t) <= m.window
}

// IntentFor maps a key event to its bound intent: WASD or vertical
// arrows to move, horizontal arrows to turn, escape or ctrl-c to quit.
func IntentFor(ev *tcell.EventKey) input.Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.IntentQuit
	case tcell.KeyLeft:
		return input.IntentTurnLeft
	case tcell.KeyRight:
		return input.IntentTurnRight
	case tcell.KeyUp:
		return input.IntentForward
	case tcell.KeyDown:
		return input.IntentBackward
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.IntentForward
		case 's', 'S':
			return input.IntentBackward
		case 'a', 'A':
			return input.IntentStrafeLeft
		case 'd', 'D':
			return input.IntentStrafeRight
		}
	}
	return input.IntentNone
}

// TermEngine implements the Engine interface on a tcell screen.
type TermEngine struct {
	in    *TermInput
	title string
	debug bool
}

// NewEngine creates a terminal game engine that feeds key events into
// the given input source.
func NewEngine(in *TermInput, debug bool) *TermEngine {
	return &TermEngine{in: in, debug: debug}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *TermEngine) SetWindowSize(width, height int) {}

// SetWindowTitle stores the title to apply once the screen exists.
func (e *TermEngine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op; terminals resize themselves.
func (e *TermEngine) SetWindowResizable(resizable bool) {}

// RunGame initializes the terminal and drives the game at a fixed
// 16ms tick until it stops or fails. The terminal state is restored
// before returning, including on error.
func (e *TermEngine) RunGame(game render.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.SetTitle(e.title)
	screen.HideCursor()
	screen.Clear()

	quit := make(chan struct{})
	defer close(quit)
	events := make(chan tcell.Event, 64)
	go screen.ChannelEvents(events, quit)

	logicalW, logicalH := game.Layout(0, 0)
	cols, rows := screen.Size()
	surface := &TermSurface{
		screen:   screen,
		logicalW: float64(logicalW),
		logicalH: float64(logicalH),
		cols:     cols,
		rows:     rows,
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					break drain
				}
				switch tev := ev.(type) {
				case *tcell.EventKey:
					e.in.Press(IntentFor(tev))
				case *tcell.EventResize:
					surface.cols, surface.rows = tev.Size()
					screen.Sync()
				}
			default:
				break drain
			}
		}

		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrStop) {
				return nil
			}
			return err
		}

		game.Draw(surface)
		if e.debug {
			if ds, ok := game.(render.DebugStringer); ok {
				drawText(screen, 0, 0, ds.DebugString())
			}
		}
		screen.Show()

		<-ticker.C
	}
}

// drawText paints one line of text over the frame.
func drawText(screen tcell.Screen, x, y int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
