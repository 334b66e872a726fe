package dino

import (
	"iter"

	"github.com/ImplFerris/pico-rex/internal/core"
)

// Collides reports whether subject's box overlaps any of the others.
// It stops at the first hit. Boxes that only touch along an edge do not
// collide.
func Collides[B core.Bounded](subject core.Bounded, others iter.Seq[B]) bool {
	box := subject.BoundingBox()
	for other := range others {
		if box.Overlaps(other.BoundingBox()) {
			return true
		}
	}
	return false
}
