package core

// Surface is the render target the engine draws onto. Draw calls go to a
// back buffer; Flush presents it. Implementations may fail at any call, and
// the engine treats such failures as fatal to the frame.
type Surface interface {
	// Fill paints every pixel of r lit (on) or unlit.
	Fill(r Rectangle, on bool) error

	// Blit copies a sprite with its top-left corner at p.
	Blit(s *Sprite, p Point) error

	// Text draws a string with its top-left corner at p.
	Text(p Point, text string) error

	// Flush presents the frame drawn since the previous Flush.
	Flush() error
}

// Bounded is anything with a collision box.
type Bounded interface {
	BoundingBox() Rectangle
}

// Drawable is anything that can render itself onto a surface.
type Drawable interface {
	Draw(dst Surface) error
}
