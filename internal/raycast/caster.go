// Package raycast turns a pose and a wall grid into drawable vertical
// wall slices, one per screen column.
package raycast

import (
	"math"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/world"
)

// Ray pairs a cast angle with the distance at which the march stopped.
// Distance is always in (0, render distance].
type Ray struct {
	Angle    float64
	Distance float64
}

// Caster marches rays through the grid in fixed increments until they
// enter a wall cell or run out of range. The march can skip a wall
// corner thinner than one step, which reads as a rounded edge at the
// default 1/20 cell increment.
type Caster struct {
	grid     *world.Grid
	step     float64
	maxRange float64
}

// NewCaster builds a caster over the given grid.
func NewCaster(grid *world.Grid, cfg config.Config) *Caster {
	return &Caster{
		grid:     grid,
		step:     cfg.StepSize,
		maxRange: cfg.RenderDistance,
	}
}

// Cast marches one ray from (x, y) at the given angle. The returned
// distance is capped at the render distance whether or not a wall was
// reached.
func (c *Caster) Cast(x, y, angle float64) Ray {
	sin, cos := math.Sincos(angle)
	dx := cos * c.step
	dy := sin * c.step

	dist := 0.0
	for dist < c.maxRange {
		x += dx
		y += dy
		dist += c.step
		if c.grid.IsWall(x, y) {
			return Ray{Angle: angle, Distance: math.Min(dist, c.maxRange)}
		}
	}
	return Ray{Angle: angle, Distance: c.maxRange}
}
