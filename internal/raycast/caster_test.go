package raycast

import (
	"math"
	"testing"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/world"
)

func arena(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(world.ArenaLayout)
	if err != nil {
		t.Fatalf("Failed to build arena: %v", err)
	}
	return g
}

// openGrid builds a size x size box whose border is the only wall.
func openGrid(t *testing.T, size int) *world.Grid {
	t.Helper()
	layout := make([][]int, size)
	for r := range layout {
		layout[r] = make([]int, size)
		for c := range layout[r] {
			if r == 0 || c == 0 || r == size-1 || c == size-1 {
				layout[r][c] = 1
			}
		}
	}
	g, err := world.NewGrid(layout)
	if err != nil {
		t.Fatalf("Failed to build open grid: %v", err)
	}
	return g
}

func TestCastOpenSpaceReturnsFullRange(t *testing.T) {
	cfg := config.Default()
	c := NewCaster(openGrid(t, 45), cfg)

	// From the center of a 45x45 box no wall is within reach, so every
	// ray must run out at exactly the render distance.
	for _, angle := range []float64{0, math.Pi / 4, 1.0, math.Pi, 3.9, 5.5} {
		ray := c.Cast(22.5, 22.5, angle)
		if ray.Distance != cfg.RenderDistance {
			t.Errorf("Cast at %g = %g, want exactly %g", angle, ray.Distance, cfg.RenderDistance)
		}
		if ray.Angle != angle {
			t.Errorf("Cast at %g reported angle %g", angle, ray.Angle)
		}
	}
}

func TestCastHitsDiagonalBlock(t *testing.T) {
	c := NewCaster(arena(t), config.Default())

	// From (2, 2) at 45 degrees the march enters the wall block at
	// (3, 3) just past the geometric crossing at sqrt(2).
	ray := c.Cast(2.0, 2.0, math.Pi/4)

	if ray.Distance < 1.44 || ray.Distance > 1.46 {
		t.Errorf("Expected hit near 1.45, got %g", ray.Distance)
	}
}

func TestCastStraightToBorder(t *testing.T) {
	c := NewCaster(arena(t), config.Default())

	// Heading 0 from (2.5, 2.5) runs down the open column until the
	// bottom border at row 9, a 6.5 cell run.
	ray := c.Cast(2.5, 2.5, 0)

	if ray.Distance < 6.49 || ray.Distance > 6.56 {
		t.Errorf("Expected hit near 6.5, got %g", ray.Distance)
	}
}

func TestCastDistanceStaysInRange(t *testing.T) {
	cfg := config.Default()
	c := NewCaster(arena(t), cfg)

	for i := 0; i < 64; i++ {
		angle := float64(i) * (2 * math.Pi / 64)
		ray := c.Cast(2.0, 2.0, angle)
		if ray.Distance <= 0 || ray.Distance > cfg.RenderDistance {
			t.Errorf("Cast at %g = %g, outside (0, %g]", angle, ray.Distance, cfg.RenderDistance)
		}
	}
}

func TestCastClampsOvershootingStep(t *testing.T) {
	g, err := world.NewGrid([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("Failed to build grid: %v", err)
	}

	// With a 0.2 step against a 0.45 range, the wall at row 2 is found
	// on the step that overshoots the range. The reported distance must
	// be the cap, not the overshoot.
	cfg := config.Default()
	cfg.StepSize = 0.2
	cfg.RenderDistance = 0.45

	ray := NewCaster(g, cfg).Cast(1.5, 1.5, 0)

	if ray.Distance != 0.45 {
		t.Errorf("Expected clamped distance 0.45, got %g", ray.Distance)
	}
}
