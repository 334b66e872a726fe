package core

// Sprite is a pre-rasterized 1-bit image.
type Sprite struct {
	w, h int
	bits []bool
}

// ParseSprite rasterizes ASCII art. '#' marks a lit pixel; any other
// character is unlit. The sprite width is the longest row; shorter rows are
// padded with unlit pixels.
func ParseSprite(rows ...string) *Sprite {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	s := NewSprite(w, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				s.Set(x, y, true)
			}
		}
	}
	return s
}

// NewSprite allocates a blank sprite of the given size.
func NewSprite(w, h int) *Sprite {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Sprite{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.w }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.h }

// At reports whether the pixel at (x, y) is lit. Out-of-bounds is unlit.
func (s *Sprite) At(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.bits[y*s.w+x]
}

// Set lights or clears a pixel. Out-of-bounds coordinates are ignored.
func (s *Sprite) Set(x, y int, on bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.bits[y*s.w+x] = on
}

// Bounds returns the rectangle the sprite covers when drawn at p.
func (s *Sprite) Bounds(p Point) Rectangle {
	return NewRect(0, 0, s.w, s.h).Translate(p)
}
