package dino

import (
	"github.com/ImplFerris/pico-rex/internal/config"
	"github.com/ImplFerris/pico-rex/internal/core"
)

// Ground scrolls a finite strip and snaps back to the start before its right
// end would come into view, which reads as endless terrain.
type Ground struct {
	offset  int // Strip x relative to the screen, always in (screenW - length, 0]
	y       int
	screenW int
	strip   *core.Sprite
}

// NewGround creates a ground at offset 0 drawing the given strip.
func NewGround(cfg config.RunnerConfig, strip *core.Sprite) *Ground {
	return &Ground{
		y:       cfg.Ground.Y,
		screenW: cfg.Screen.Width,
		strip:   strip,
	}
}

// Offset returns the current scroll phase.
func (g *Ground) Offset() int {
	return g.offset
}

// Advance scrolls by velocity (negative moves left) and wraps to 0 once the
// strip end would pass the right screen edge.
func (g *Ground) Advance(velocity int) {
	g.offset += velocity
	if g.offset < g.screenW-g.strip.Width() {
		g.offset = 0
	}
}

// Draw blits the visible part of the strip.
func (g *Ground) Draw(dst core.Surface) error {
	return dst.Blit(g.strip, core.Pt(g.offset, g.y))
}
