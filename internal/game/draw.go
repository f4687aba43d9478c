package game

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/corridor9/internal/render"
)

// Draw paints the frame from the cached slices: sky over the top half,
// floor over the bottom, then one wall strip per column.
func (s *Session) Draw(dst render.Surface) {
	dst.Clear()

	w := float64(s.cfg.ScreenWidth)
	h := float64(s.cfg.ScreenHeight)
	dst.FillRect(0, 0, w, h/2, s.sky)
	dst.FillRect(0, h/2, w, h, s.floor)

	for _, sl := range s.slices {
		dst.FillRect(float64(sl.X), sl.Top, float64(sl.X+sl.W), sl.Bottom, sl.Color)
	}
}

// Layout returns the game's logical screen size.
func (s *Session) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.ScreenWidth, s.cfg.ScreenHeight
}

// DebugString summarizes the pose and sweep counters for the overlay.
func (s *Session) DebugString() string {
	return fmt.Sprintf("pos (%.2f, %.2f) heading %.2f swept %d skipped %d",
		s.pose.X, s.pose.Y, s.pose.Heading, s.swept, s.skipped)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
