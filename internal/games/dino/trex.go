package dino

import (
	"github.com/ImplFerris/pico-rex/internal/config"
	"github.com/ImplFerris/pico-rex/internal/core"
)

// TrexState is the runner's vertical motion phase.
type TrexState int

const (
	Running TrexState = iota // On the ground, jump allowed
	Jumping                  // Rising at jump velocity
	Falling                  // Dropping at gravity
)

// String returns a human-readable name for the state.
func (s TrexState) String() string {
	switch s {
	case Running:
		return "Running"
	case Jumping:
		return "Jumping"
	case Falling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Trex is the player character. Its column is fixed; only y changes, and it
// stays within [MinY, GroundY].
//
// The arc is deliberately asymmetric: it rises at JumpVelocity and falls at
// Gravity, both constant, so the jump is snappier than a parabola.
type Trex struct {
	position core.Point
	state    TrexState
	cfg      config.TrexConfig
}

// NewTrex places a running trex on the ground.
func NewTrex(cfg config.TrexConfig) *Trex {
	return &Trex{
		position: core.Pt(cfg.X, cfg.GroundY),
		state:    Running,
		cfg:      cfg,
	}
}

// Position returns the top-left corner of the trex sprite.
func (t *Trex) Position() core.Point {
	return t.position
}

// State returns the current motion phase.
func (t *Trex) State() TrexState {
	return t.state
}

// Airborne reports whether the trex is off the ground.
func (t *Trex) Airborne() bool {
	return t.state != Running
}

// RequestJump starts a jump if the trex is running and applies the first
// rising step immediately. Returns false, changing nothing, while airborne.
func (t *Trex) RequestJump() bool {
	if t.state != Running {
		return false
	}
	t.state = Jumping
	t.Advance()
	return true
}

// Advance applies one frame of vertical motion.
func (t *Trex) Advance() {
	switch t.state {
	case Jumping:
		// Velocity is negative, so y decreases and the trex moves up.
		t.position.Y += t.cfg.JumpVelocity
		if t.position.Y <= t.cfg.MinY {
			t.position.Y = t.cfg.MinY
			t.state = Falling
		}
	case Falling:
		t.position.Y += t.cfg.Gravity
		if t.position.Y >= t.cfg.GroundY {
			t.position.Y = t.cfg.GroundY
			t.state = Running
		}
	}
}

// BoundingBox returns the collision box, which is the sprite's extent.
func (t *Trex) BoundingBox() core.Rectangle {
	return trexSprite.Bounds(t.position)
}

// Draw blits the trex sprite.
func (t *Trex) Draw(dst core.Surface) error {
	return dst.Blit(trexSprite, t.position)
}
