// Package game drives one play session: it owns the pose, resolves
// input every tick, and recomputes the view only when something could
// have changed it.
package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/input"
	"chosenoffset.com/corridor9/internal/player"
	"chosenoffset.com/corridor9/internal/raycast"
	"chosenoffset.com/corridor9/internal/render"
	"chosenoffset.com/corridor9/internal/world"
)

// Start pose inside the arena.
const (
	startX       = 2.0
	startY       = 2.0
	startHeading = math.Pi / 4
)

// Cues receives movement feedback for side channels such as audio.
// Implementations are called on the tick path and must return quickly.
type Cues interface {
	// Step fires when a translation commits.
	Step()
	// Bump fires when a wall rejects a translation.
	Bump()
}

// Session holds all game state and logic.
type Session struct {
	cfg    config.Config
	grid   *world.Grid
	pose   player.Pose
	motion *player.Motion
	caster *raycast.Caster
	proj   *raycast.Projector
	in     input.Source
	cues   Cues

	sky    color.RGBA
	floor  color.RGBA
	slices []raycast.Slice

	now       func() time.Time
	lastSweep time.Time
	swept     uint64
	skipped   uint64
}

// NewSession builds a session at the start pose. cues may be nil.
func NewSession(cfg config.Config, grid *world.Grid, src input.Source, cues Cues) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}
	if !grid.IsOpen(startX, startY) {
		return nil, fmt.Errorf("start position (%g, %g) is inside a wall", startX, startY)
	}

	sky, floor, _, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	proj, err := raycast.NewProjector(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		grid:   grid,
		pose:   player.NewPose(startX, startY, startHeading),
		caster: raycast.NewCaster(grid, cfg),
		proj:   proj,
		in:     src,
		cues:   cues,
		sky:    toRGBA(sky),
		floor:  toRGBA(floor),
		slices: make([]raycast.Slice, 0, cfg.NumRays),
		now:    time.Now,
	}
	s.motion = player.NewMotion(&s.pose, grid, cfg)

	// The first frame is computed before any input arrives.
	s.sweep(s.now())
	return s, nil
}

// Update advances the game one tick: quit check, motion, then a sweep
// if the view is dirty or the idle interval has elapsed. A tick with
// no input and a fresh view reuses the cached slices.
func (s *Session) Update() error {
	if s.in.IsActive(input.IntentQuit) {
		return render.ErrStop
	}

	res := s.motion.Apply(s.in)

	if s.cues != nil {
		if res.Moved {
			s.cues.Step()
		}
		if res.Blocked {
			s.cues.Bump()
		}
	}

	now := s.now()
	if res.Active || now.Sub(s.lastSweep) >= s.cfg.FrameInterval() {
		s.sweep(now)
	} else {
		s.skipped++
	}
	return nil
}

// sweep recomputes the wall slices for the current pose.
func (s *Session) sweep(now time.Time) {
	s.slices = s.proj.Sweep(s.caster, s.pose.X, s.pose.Y, s.pose.Heading, s.slices)
	s.lastSweep = now
	s.swept++
}

// Pose returns a copy of the current pose.
func (s *Session) Pose() player.Pose {
	return s.pose
}

// Stats reports how many ticks recomputed the view and how many
// reused the cached one.
func (s *Session) Stats() (swept, skipped uint64) {
	return s.swept, s.skipped
}
