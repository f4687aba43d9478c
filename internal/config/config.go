// Package config provides the tunable parameters for the renderer and
// the motion model. Parameters are loaded from a JSON file so a build
// can reshape the view without recompiling; every constructor takes the
// struct explicitly rather than reading globals.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds all render and motion parameters for one session.
type Config struct {
	// Screen
	ScreenWidth  int `json:"screen_width"`  // window width in pixels
	ScreenHeight int `json:"screen_height"` // window height in pixels
	TargetFPS    int `json:"target_fps"`    // idle re-render rate

	// Raycasting
	NumRays        int     `json:"num_rays"`        // rays per sweep, one column each
	FOV            float64 `json:"fov"`             // horizontal field of view in radians
	RenderDistance float64 `json:"render_distance"` // max march range in cells
	StepSize       float64 `json:"step_size"`       // march increment in cells

	// Projection
	WallHeightScale float64 `json:"wall_height_scale"` // perspective divide numerator
	MinBrightness   float64 `json:"min_brightness"`    // shading floor, 0..1

	// Motion
	MoveSpeed   float64 `json:"move_speed"`   // cells per tick
	RotateSpeed float64 `json:"rotate_speed"` // radians per tick

	// Palette, hex encoded "#RRGGBB"
	SkyColor   string `json:"sky_color"`
	FloorColor string `json:"floor_color"`
	WallColor  string `json:"wall_color"`
}

// Default returns the standard 800x800 view: 800 rays across a 60 degree
// field of view, 20 cell range, fine 1/20 cell march.
func Default() Config {
	return Config{
		ScreenWidth:     800,
		ScreenHeight:    800,
		TargetFPS:       60,
		NumRays:         800,
		FOV:             math.Pi / 3,
		RenderDistance:  20,
		StepSize:        0.05,
		WallHeightScale: 600,
		MinBrightness:   0.2,
		MoveSpeed:       0.15,
		RotateSpeed:     0.08,
		SkyColor:        "#87CEEB",
		FloorColor:      "#D2B48C",
		WallColor:       "#696969",
	}
}

// Load reads a JSON config from path, applying it over Default values.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects parameter combinations the renderer cannot run with.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.TargetFPS <= 0:
		return fmt.Errorf("target FPS must be positive, got %d", c.TargetFPS)
	case c.NumRays <= 0:
		return fmt.Errorf("ray count must be positive, got %d", c.NumRays)
	case c.NumRays > c.ScreenWidth:
		return fmt.Errorf("ray count %d exceeds screen width %d", c.NumRays, c.ScreenWidth)
	case c.FOV <= 0 || c.FOV >= math.Pi:
		return fmt.Errorf("FOV must be in (0, pi), got %g", c.FOV)
	case c.RenderDistance <= 0:
		return fmt.Errorf("render distance must be positive, got %g", c.RenderDistance)
	case c.StepSize <= 0 || c.StepSize > c.RenderDistance:
		return fmt.Errorf("step size must be in (0, render distance], got %g", c.StepSize)
	case c.WallHeightScale <= 0:
		return fmt.Errorf("wall height scale must be positive, got %g", c.WallHeightScale)
	case c.MinBrightness < 0 || c.MinBrightness > 1:
		return fmt.Errorf("min brightness must be in [0, 1], got %g", c.MinBrightness)
	case c.MoveSpeed <= 0:
		return fmt.Errorf("move speed must be positive, got %g", c.MoveSpeed)
	case c.RotateSpeed <= 0:
		return fmt.Errorf("rotate speed must be positive, got %g", c.RotateSpeed)
	}

	if _, _, _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the three hex colors. Call Validate first if the
// config came from disk.
func (c Config) Palette() (sky, floor, wall colorful.Color, err error) {
	if sky, err = colorful.Hex(c.SkyColor); err != nil {
		return sky, floor, wall, fmt.Errorf("bad sky color %q: %w", c.SkyColor, err)
	}
	if floor, err = colorful.Hex(c.FloorColor); err != nil {
		return sky, floor, wall, fmt.Errorf("bad floor color %q: %w", c.FloorColor, err)
	}
	if wall, err = colorful.Hex(c.WallColor); err != nil {
		return sky, floor, wall, fmt.Errorf("bad wall color %q: %w", c.WallColor, err)
	}
	return sky, floor, wall, nil
}

// FrameInterval returns the minimum idle time between forced re-renders.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TargetFPS)
}

// AngleStep returns the sweep increment between adjacent rays.
func (c Config) AngleStep() float64 {
	return c.FOV / float64(c.NumRays)
}

// SliceWidth returns the column width each ray paints, in pixels.
func (c Config) SliceWidth() int {
	return c.ScreenWidth / c.NumRays
}
