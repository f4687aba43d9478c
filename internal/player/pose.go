// Package player tracks the viewer's pose and applies movement intents
// to it, checking translations against the wall grid.
package player

import "math"

const tau = 2 * math.Pi

// Pose is the viewer's position and facing inside the grid. X runs
// along grid rows, Y along columns; Heading is in radians and stays
// in [0, 2*pi).
type Pose struct {
	X       float64
	Y       float64
	Heading float64
}

// NewPose returns a pose with the heading normalized.
func NewPose(x, y, heading float64) Pose {
	return Pose{X: x, Y: y, Heading: normalizeAngle(heading)}
}

// Rotate turns the pose by delta radians and renormalizes the heading.
func (p *Pose) Rotate(delta float64) {
	p.Heading = normalizeAngle(p.Heading + delta)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	return a
}
