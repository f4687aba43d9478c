package raycast

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/corridor9/internal/config"
)

// Slice is one vertical wall strip, ready to draw.
type Slice struct {
	X      int     // left edge of the column in pixels
	W      int     // column width in pixels
	Top    float64 // top of the strip in pixels
	Bottom float64 // bottom of the strip in pixels
	Shade  float64 // brightness applied to the wall color, 1 nearest
	Color  color.RGBA
}

// Projector sweeps the field of view and projects each ray into a
// screen column: perspective height from the corrected distance, and
// a linear distance fade on the wall color.
type Projector struct {
	screenH   float64
	numRays   int
	sliceW    int
	halfFOV   float64
	angleStep float64
	scale     float64
	maxRange  float64
	minBright float64
	wallBase  colorful.Color
}

// NewProjector derives the sweep geometry and palette from cfg.
func NewProjector(cfg config.Config) (*Projector, error) {
	_, _, wall, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	return &Projector{
		screenH:   float64(cfg.ScreenHeight),
		numRays:   cfg.NumRays,
		sliceW:    cfg.SliceWidth(),
		halfFOV:   cfg.FOV / 2,
		angleStep: cfg.AngleStep(),
		scale:     cfg.WallHeightScale,
		maxRange:  cfg.RenderDistance,
		minBright: cfg.MinBrightness,
		wallBase:  wall,
	}, nil
}

// NumRays returns the number of slices a sweep produces.
func (p *Projector) NumRays() int {
	return p.numRays
}

// Sweep casts one ray per column across [heading - FOV/2,
// heading + FOV/2) and appends the resulting slices to out.
func (p *Projector) Sweep(c *Caster, x, y, heading float64, out []Slice) []Slice {
	out = out[:0]
	for i := 0; i < p.numRays; i++ {
		ray := c.Cast(x, y, p.rayAngle(heading, i))
		out = append(out, p.slice(i, ray, heading))
	}
	return out
}

// rayAngle returns the absolute cast angle for column i. The sweep is
// half open: the right edge of the view is never cast.
func (p *Projector) rayAngle(heading float64, i int) float64 {
	return heading - p.halfFOV + float64(i)*p.angleStep
}

// slice projects one ray into its screen column. The perpendicular
// correction cancels the fish-eye bowing a raw euclidean distance
// would produce; a non-positive corrected distance degenerates to the
// fixed maximum wall height at full brightness.
func (p *Projector) slice(i int, ray Ray, heading float64) Slice {
	corrected := ray.Distance * math.Cos(ray.Angle-heading)

	height := math.Min(p.scale, p.screenH)
	bright := 1.0
	if corrected > 0 {
		height = math.Min(p.scale/corrected, p.screenH)
		bright = p.brightness(corrected)
	}

	top := (p.screenH - height) / 2
	return Slice{
		X:      i * p.sliceW,
		W:      p.sliceW,
		Top:    top,
		Bottom: top + height,
		Shade:  bright,
		Color:  p.shade(bright),
	}
}

// brightness fades linearly with distance, floored so far walls stay
// visible.
func (p *Projector) brightness(corrected float64) float64 {
	b := 1 - corrected/p.maxRange
	if b < p.minBright {
		b = p.minBright
	}
	return b
}

// shade blends the base wall color toward black by the brightness
// factor, keeping the hue uniform across all three channels.
func (p *Projector) shade(bright float64) color.RGBA {
	c := p.wallBase.BlendRgb(colorful.Color{}, 1-bright).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
