package raycast

import (
	"math"
	"testing"

	"chosenoffset.com/corridor9/internal/config"
)

func newTestProjector(t *testing.T, cfg config.Config) *Projector {
	t.Helper()
	p, err := NewProjector(cfg)
	if err != nil {
		t.Fatalf("Failed to build projector: %v", err)
	}
	return p
}

func TestSweepAngleCoverage(t *testing.T) {
	cfg := config.Default()
	p := newTestProjector(t, cfg)
	heading := 1.0

	first := p.rayAngle(heading, 0)
	if math.Abs(first-(heading-cfg.FOV/2)) > 1e-12 {
		t.Errorf("Expected first ray at %g, got %g", heading-cfg.FOV/2, first)
	}

	last := p.rayAngle(heading, cfg.NumRays-1)
	wantLast := heading + cfg.FOV/2 - cfg.AngleStep()
	if math.Abs(last-wantLast) > 1e-12 {
		t.Errorf("Expected last ray at %g, got %g", wantLast, last)
	}
	// Half open: the right edge of the view is never cast.
	if last >= heading+cfg.FOV/2 {
		t.Errorf("Last ray %g reached the right view edge", last)
	}
}

func TestSweepProducesOrderedColumns(t *testing.T) {
	cfg := config.Default()
	p := newTestProjector(t, cfg)
	c := NewCaster(arena(t), cfg)

	slices := p.Sweep(c, 2.0, 2.0, math.Pi/4, nil)

	if len(slices) != cfg.NumRays {
		t.Fatalf("Expected %d slices, got %d", cfg.NumRays, len(slices))
	}
	for i, s := range slices {
		if s.X != i*cfg.SliceWidth() || s.W != cfg.SliceWidth() {
			t.Fatalf("Slice %d at x=%d w=%d, want x=%d w=%d", i, s.X, s.W, i*cfg.SliceWidth(), cfg.SliceWidth())
		}
		if s.Top < 0 || s.Bottom > float64(cfg.ScreenHeight) || s.Top > s.Bottom {
			t.Fatalf("Slice %d spans [%g, %g], outside the screen", i, s.Top, s.Bottom)
		}
		if s.Shade < cfg.MinBrightness || s.Shade > 1 {
			t.Fatalf("Slice %d shade %g outside [%g, 1]", i, s.Shade, cfg.MinBrightness)
		}
	}
}

func TestSweepReusesBuffer(t *testing.T) {
	cfg := config.Default()
	p := newTestProjector(t, cfg)
	c := NewCaster(arena(t), cfg)

	buf := make([]Slice, 0, cfg.NumRays)
	first := p.Sweep(c, 2.0, 2.0, 0, buf)
	second := p.Sweep(c, 2.0, 2.0, 0, first)

	if len(second) != cfg.NumRays {
		t.Fatalf("Expected %d slices, got %d", cfg.NumRays, len(second))
	}
	if cap(second) != cap(first) {
		t.Errorf("Sweep grew the buffer: cap %d -> %d", cap(first), cap(second))
	}
}

func TestStraightAheadProjection(t *testing.T) {
	p := newTestProjector(t, config.Default())

	// A wall 3 cells dead ahead: no fisheye correction, height 600/3.
	s := p.slice(0, Ray{Angle: 1.0, Distance: 3}, 1.0)

	if math.Abs(s.Top-300) > 1e-9 || math.Abs(s.Bottom-500) > 1e-9 {
		t.Errorf("Expected strip [300, 500], got [%g, %g]", s.Top, s.Bottom)
	}
	if math.Abs(s.Shade-0.85) > 1e-12 {
		t.Errorf("Expected shade 0.85, got %g", s.Shade)
	}
	if s.Color.R != s.Color.G || s.Color.G != s.Color.B {
		t.Errorf("Expected uniform gray, got %+v", s.Color)
	}
	if s.Color.A != 0xFF {
		t.Errorf("Expected opaque slice, got alpha %d", s.Color.A)
	}
}

func TestFisheyeCorrection(t *testing.T) {
	p := newTestProjector(t, config.Default())

	// The same euclidean distance at the view edge projects taller
	// than dead ahead, because only the perpendicular component
	// shrinks the wall.
	offset := math.Pi / 6
	edge := p.slice(0, Ray{Angle: offset, Distance: 5}, 0)

	wantHeight := 600 / (5 * math.Cos(offset))
	if math.Abs((edge.Bottom-edge.Top)-wantHeight) > 1e-9 {
		t.Errorf("Expected corrected height %g, got %g", wantHeight, edge.Bottom-edge.Top)
	}

	ahead := p.slice(0, Ray{Angle: 0, Distance: 5}, 0)
	if edge.Bottom-edge.Top <= ahead.Bottom-ahead.Top {
		t.Errorf("Edge slice (%g) should be taller than center slice (%g)",
			edge.Bottom-edge.Top, ahead.Bottom-ahead.Top)
	}
}

func TestNearWallClampsToScreen(t *testing.T) {
	p := newTestProjector(t, config.Default())

	s := p.slice(0, Ray{Angle: 0, Distance: 0.5}, 0)

	if s.Top != 0 || s.Bottom != 800 {
		t.Errorf("Expected full-height strip [0, 800], got [%g, %g]", s.Top, s.Bottom)
	}
}

func TestBrightnessFloor(t *testing.T) {
	p := newTestProjector(t, config.Default())

	// 19 cells out the raw fade would be 0.05; the floor keeps it at 0.2.
	s := p.slice(0, Ray{Angle: 0, Distance: 19}, 0)

	if s.Shade != 0.2 {
		t.Errorf("Expected floored shade 0.2, got %g", s.Shade)
	}
}

func TestDegenerateCorrectedDistance(t *testing.T) {
	p := newTestProjector(t, config.Default())

	tests := []struct {
		name     string
		offset   float64
		distance float64
	}{
		{"zero distance", 0, 0},
		{"behind the view plane", math.Pi, 2},
	}

	// A non-positive corrected distance falls back to the fixed wall
	// height scale, 600px centered on the 800px screen, never the full
	// screen strip.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := p.slice(0, Ray{Angle: 1.0 + tt.offset, Distance: tt.distance}, 1.0)
			if s.Top != 100 || s.Bottom != 700 {
				t.Errorf("Expected the fixed 600px strip [100, 700], got [%g, %g]", s.Top, s.Bottom)
			}
			if s.Shade != 1.0 {
				t.Errorf("Expected brightness exactly 1.0, got %g", s.Shade)
			}
		})
	}
}

func TestGrazingRayClampsToScreen(t *testing.T) {
	p := newTestProjector(t, config.Default())

	// cos(pi/2) lands a hair above zero in floats, so a grazing ray
	// still projects on the positive branch and hits the screen clamp.
	s := p.slice(0, Ray{Angle: 1.0 + math.Pi/2, Distance: 2}, 1.0)
	if s.Top != 0 || s.Bottom != 800 {
		t.Errorf("Expected full-height strip, got [%g, %g]", s.Top, s.Bottom)
	}
	if s.Shade < 0.999 {
		t.Errorf("Expected full brightness, got %g", s.Shade)
	}
}

func TestBrightnessMonotonicWithDistance(t *testing.T) {
	p := newTestProjector(t, config.Default())

	prev := math.Inf(1)
	for d := 0.5; d <= 20; d += 0.5 {
		s := p.slice(0, Ray{Angle: 0, Distance: d}, 0)
		if s.Shade > prev+1e-12 {
			t.Fatalf("Shade rose from %g to %g at distance %g", prev, s.Shade, d)
		}
		prev = s.Shade
	}
}

func TestWiderSlicesTileTheScreen(t *testing.T) {
	cfg := config.Default()
	cfg.NumRays = 400

	p := newTestProjector(t, cfg)
	c := NewCaster(arena(t), cfg)

	slices := p.Sweep(c, 2.0, 2.0, 0, nil)

	if len(slices) != 400 {
		t.Fatalf("Expected 400 slices, got %d", len(slices))
	}
	for i, s := range slices {
		if s.X != i*2 || s.W != 2 {
			t.Fatalf("Slice %d at x=%d w=%d, want x=%d w=2", i, s.X, s.W, i*2)
		}
	}
}
