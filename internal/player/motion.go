package player

import (
	"math"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/input"
	"chosenoffset.com/corridor9/internal/world"
)

// Result summarizes one tick of intent handling.
type Result struct {
	Active  bool // at least one motion intent was requested
	Moved   bool // at least one translation was committed
	Blocked bool // at least one translation was rejected by a wall
	Turned  bool // the heading changed
}

// Motion resolves movement intents against the grid, one fixed
// increment per intent per tick. A translation that would end inside
// a wall is dropped outright; there is no sliding along the wall.
// Rotation never touches the grid, so it always applies.
type Motion struct {
	pose        *Pose
	grid        *world.Grid
	moveSpeed   float64
	rotateSpeed float64
}

// NewMotion wires a motion controller to the pose it mutates.
func NewMotion(pose *Pose, grid *world.Grid, cfg config.Config) *Motion {
	return &Motion{
		pose:        pose,
		grid:        grid,
		moveSpeed:   cfg.MoveSpeed,
		rotateSpeed: cfg.RotateSpeed,
	}
}

// Apply polls every motion intent once and resolves each independently,
// in MotionIntents order: translations first, then rotation.
// Simultaneous opposing intents are not filtered; they simply cancel
// numerically.
func (m *Motion) Apply(src input.Source) Result {
	var res Result

	// Translations use the heading as it was at the start of the tick.
	sin, cos := math.Sincos(m.pose.Heading)

	for _, in := range input.MotionIntents {
		if !src.IsActive(in) {
			continue
		}
		res.Active = true

		switch in {
		case input.IntentForward:
			m.tryMove(cos*m.moveSpeed, sin*m.moveSpeed, &res)
		case input.IntentBackward:
			m.tryMove(-cos*m.moveSpeed, -sin*m.moveSpeed, &res)
		case input.IntentStrafeLeft:
			m.tryMove(sin*m.moveSpeed, -cos*m.moveSpeed, &res)
		case input.IntentStrafeRight:
			m.tryMove(-sin*m.moveSpeed, cos*m.moveSpeed, &res)
		case input.IntentTurnLeft:
			res.Turned = true
			m.pose.Rotate(-m.rotateSpeed)
		case input.IntentTurnRight:
			res.Turned = true
			m.pose.Rotate(m.rotateSpeed)
		}
	}

	return res
}

// tryMove commits the translation only if the destination is open.
func (m *Motion) tryMove(dx, dy float64, res *Result) {
	newX := m.pose.X + dx
	newY := m.pose.Y + dy
	if m.grid.IsOpen(newX, newY) {
		m.pose.X = newX
		m.pose.Y = newY
		res.Moved = true
	} else {
		res.Blocked = true
	}
}
